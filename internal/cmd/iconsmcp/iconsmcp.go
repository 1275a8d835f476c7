// Package iconsmcp parses icon MCP command flags and serves MCP on stdio.
package iconsmcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/apollo/internal/platform/cmd"
	"github.com/louisbranch/apollo/internal/platform/discovery"
	mcpservice "github.com/louisbranch/apollo/internal/services/icons/mcp/service"
)

// Config holds icon MCP command configuration.
type Config struct {
	// Addr is the icon service gRPC address. Empty serves the compiled table.
	Addr   string `env:"APOLLO_ICONS_MCP_REGISTRY_ADDR"`
	// Remote dials the icon service at its in-network address when Addr is empty.
	Remote bool   `env:"APOLLO_ICONS_MCP_REMOTE"`
	Locale string `env:"APOLLO_ICONS_MCP_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "icon service gRPC address; empty serves the compiled table")
	fs.BoolVar(&cfg.Remote, "remote", cfg.Remote, "use the icon service even without -addr")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages from the registry")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Remote {
		cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceIcons)
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter on stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconsMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{GRPCAddr: cfg.Addr, Locale: cfg.Locale})
	})
}
