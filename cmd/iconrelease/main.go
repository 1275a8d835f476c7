// Package main publishes and checks icon table releases.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/louisbranch/apollo/internal/platform/cmd"
	"github.com/louisbranch/apollo/internal/platform/config"
	"github.com/louisbranch/apollo/internal/tools/iconrelease"
)

func main() {
	cfg, err := iconrelease.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconRelease, func(ctx context.Context) error {
		return iconrelease.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %s", iconrelease.Describe(err))
	}
}
