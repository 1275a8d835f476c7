package icons

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("icons", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != "localhost:8091" {
		t.Fatalf("expected default grpc addr, got %q", cfg.GRPCAddr)
	}
	if cfg.DBPath != "data/icons.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("expected default cache ttl, got %v", cfg.CacheTTL)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("APOLLO_ICONS_HTTP_ADDR", "env-http:1")
	t.Setenv("APOLLO_ICONS_SVG_CACHE_TTL", "1m")

	fs := flag.NewFlagSet("icons", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-grpc-addr", "flag-grpc:2", "-db", ""})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-http:1" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != "flag-grpc:2" {
		t.Fatalf("expected flag grpc addr, got %q", cfg.GRPCAddr)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected ledger disabled, got %q", cfg.DBPath)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("expected env cache ttl, got %v", cfg.CacheTTL)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("APOLLO_ICONS_SVG_CACHE_TTL", "soon")

	fs := flag.NewFlagSet("icons", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}
