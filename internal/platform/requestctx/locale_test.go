package requestctx

import (
	"context"
	"testing"
)

func TestLocaleFromContextRoundTrip(t *testing.T) {
	ctx := WithLocale(context.Background(), "pt-BR")
	if got := LocaleFromContext(ctx); got != "pt-BR" {
		t.Fatalf("LocaleFromContext = %q, want %q", got, "pt-BR")
	}
}

func TestLocaleFromContextEmpty(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestLocaleFromContextNil(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract.
	if got := LocaleFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithLocaleNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract.
	ctx := WithLocale(nil, "en-US")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if got := LocaleFromContext(ctx); got != "en-US" {
		t.Fatalf("LocaleFromContext = %q, want %q", got, "en-US")
	}
}
