package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestEmbeddedLocalesAreComplete(t *testing.T) {
	bundle, err := Load(embedded)
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	locales := bundle.Locales()
	if len(locales) != 2 || locales[0] != "en-US" || locales[1] != "pt-BR" {
		t.Fatalf("locales = %v", locales)
	}
	if missing := bundle.Missing("pt-BR"); len(missing) != 0 {
		t.Fatalf("pt-BR is missing translations: %v", missing)
	}
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	base := &fstest.MapFile{Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.ok: ok\n")}
	tests := map[string]fstest.MapFS{
		"empty": {},
		"malformed yaml": {
			"locales/en-US/core.yaml": {Data: []byte("locale: [unterminated\n")},
		},
		"locale mismatch": {
			"locales/en-US/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.x: x\n")},
		},
		"namespace mismatch": {
			"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  web.x: x\n")},
		},
		"no messages": {
			"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\n")},
		},
		"dotted key in wrong namespace": {
			"locales/en-US/core.yaml":    base,
			"locales/en-US/catalog.yaml": {Data: []byte("locale: en-US\nnamespace: catalog\nmessages:\n  core.bad: nope\n")},
		},
		"duplicate undotted key": {
			"locales/en-US/core.yaml":   {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  SAME: a\n")},
			"locales/en-US/errors.yaml": {Data: []byte("locale: en-US\nnamespace: errors\nmessages:\n  SAME: b\n")},
		},
		"missing base locale": {
			"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.x: x\n")},
		},
	}
	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNamespaceFallsBackToBaseLocale(t *testing.T) {
	bundle := Default()
	resolved, messages := bundle.Namespace("fr-FR", "errors")
	if resolved != BaseLocale {
		t.Fatalf("resolved locale = %q, want %q", resolved, BaseLocale)
	}
	if !strings.Contains(messages["ICON_UNKNOWN"], "{{.Ref}}") {
		t.Fatalf("ICON_UNKNOWN = %q", messages["ICON_UNKNOWN"])
	}

	resolved, messages = bundle.Namespace("pt-BR", "errors")
	if resolved != "pt-BR" || !strings.HasPrefix(messages["ICON_UNKNOWN"], "O ícone") {
		t.Fatalf("pt-BR errors = %q %q", resolved, messages["ICON_UNKNOWN"])
	}

	messages["ICON_UNKNOWN"] = "changed"
	if _, again := bundle.Namespace("pt-BR", "errors"); again["ICON_UNKNOWN"] == "changed" {
		t.Fatal("Namespace must return a copy")
	}
}

func TestMissingReportsUntranslatedKeys(t *testing.T) {
	bundle, err := Load(fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.a: a\n  core.b: b\n")},
		"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.a: a\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.Missing("pt-BR"); len(got) != 1 || got[0] != "core.b" {
		t.Fatalf("missing = %v, want [core.b]", got)
	}
}

func TestRegisteredMessagesFormatThroughPrinter(t *testing.T) {
	_ = Default()
	printer := message.NewPrinter(language.MustParse("pt-BR"))
	if got := printer.Sprintf("catalog.summary", 3, "apollo"); got != "3 ícones na fonte apollo." {
		t.Fatalf("pt-BR summary = %q", got)
	}
	printer = message.NewPrinter(language.Portuguese)
	if got := printer.Sprintf("catalog.summary", 3, "apollo"); got != "3 ícones na fonte apollo." {
		t.Fatalf("pt summary = %q", got)
	}
	printer = message.NewPrinter(language.English)
	if got := printer.Sprintf("catalog.summary", 3, "apollo"); got != "3 icons in the apollo font." {
		t.Fatalf("en summary = %q", got)
	}
}
