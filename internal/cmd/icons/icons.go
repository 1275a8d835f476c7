// Package icons parses icon service flags and launches the service.
package icons

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/louisbranch/apollo/internal/platform/cmd"
	server "github.com/louisbranch/apollo/internal/services/icons/app"
)

// Config holds icon service command configuration.
type Config struct {
	HTTPAddr string        `env:"APOLLO_ICONS_HTTP_ADDR" envDefault:"localhost:8090"`
	GRPCAddr string        `env:"APOLLO_ICONS_GRPC_ADDR" envDefault:"localhost:8091"`
	DBPath   string        `env:"APOLLO_ICONS_DB_PATH"   envDefault:"data/icons.db"`
	FontURL  string        `env:"APOLLO_ICONS_FONT_URL"  envDefault:"/static/apollo.woff2"`
	CacheTTL time.Duration `env:"APOLLO_ICONS_SVG_CACHE_TTL" envDefault:"10m"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "release ledger path; empty disables release routes")
	fs.StringVar(&cfg.FontURL, "font-url", cfg.FontURL, "font file referenced by the stylesheet")
	fs.DurationVar(&cfg.CacheTTL, "svg-cache-ttl", cfg.CacheTTL, "how long rendered SVGs are reused")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon HTTP and gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIcons, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr: cfg.HTTPAddr,
			GRPCAddr: cfg.GRPCAddr,
			DBPath:   cfg.DBPath,
			FontURL:  cfg.FontURL,
			CacheTTL: cfg.CacheTTL,
		})
	})
}
