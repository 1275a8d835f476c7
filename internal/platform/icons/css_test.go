package icons

import (
	"strings"
	"testing"
)

func TestFontCSSDefaults(t *testing.T) {
	css := FontCSS(CSSOptions{})
	if !strings.Contains(css, `font-family: "apollo";`) {
		t.Fatalf("expected default family in font-face:\n%s", css)
	}
	if !strings.Contains(css, `src: url("apollo.woff2") format("woff2");`) {
		t.Fatalf("expected default font url:\n%s", css)
	}
	if !strings.Contains(css, ".apollo-add::before {\n  content: \"\\f11c\";\n}") {
		t.Fatalf("expected add rule:\n%s", css)
	}
	if got := strings.Count(css, "::before"); got != Len() {
		t.Fatalf("rule count = %d, want %d", got, Len())
	}
}

func TestFontCSSCustomOptions(t *testing.T) {
	css := FontCSS(CSSOptions{Family: "apollo-icons", ClassPrefix: "ai", FontURL: "/static/apollo.woff2"})
	if !strings.Contains(css, `src: url("/static/apollo.woff2")`) {
		t.Fatalf("expected custom url:\n%s", css)
	}
	if !strings.Contains(css, ".ai-check::before") {
		t.Fatalf("expected custom prefix:\n%s", css)
	}
	if strings.Contains(css, ".apollo-check") {
		t.Fatalf("expected default prefix to be replaced:\n%s", css)
	}
}

func TestSymbolAndClassNames(t *testing.T) {
	if got := SymbolID(Add); got != "apollo-add" {
		t.Fatalf("SymbolID(Add) = %q", got)
	}
	if got := ClassName("", ExternalLink); got != "apollo-external-link" {
		t.Fatalf("ClassName(ExternalLink) = %q", got)
	}
	if got := ClassName("x", Check); got != "x-check" {
		t.Fatalf("ClassName(x, Check) = %q", got)
	}
}
