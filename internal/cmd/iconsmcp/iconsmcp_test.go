package iconsmcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("icons-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "" {
		t.Fatalf("expected in-process registry by default, got %q", cfg.Addr)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("APOLLO_ICONS_MCP_REGISTRY_ADDR", "env-registry:8091")

	fs := flag.NewFlagSet("icons-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-locale", "pt-BR"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "env-registry:8091" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected flag locale, got %q", cfg.Locale)
	}
}

func TestParseConfigRemoteUsesServiceAddress(t *testing.T) {
	fs := flag.NewFlagSet("icons-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-remote"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "icons:8091" {
		t.Fatalf("expected discovered addr, got %q", cfg.Addr)
	}
}

func TestParseConfigRemoteKeepsExplicitAddr(t *testing.T) {
	fs := flag.NewFlagSet("icons-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-remote", "-addr", "localhost:9000"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:9000" {
		t.Fatalf("expected explicit addr, got %q", cfg.Addr)
	}
}
