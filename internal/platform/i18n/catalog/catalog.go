// Package catalog loads the embedded YAML message catalogs and registers
// them with golang.org/x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml. Dotted keys must start
// with their namespace ("catalog.title" lives in catalog.yaml); undotted
// keys, such as error codes, may appear in any namespace.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embedded embed.FS

type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds messages by locale, then namespace, then key.
type Bundle struct {
	locales map[string]map[string]map[string]string
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the embedded bundle, registering it with x/text/message
// on first use. It panics when the embedded files are invalid.
func Default() *Bundle {
	defaultOnce.Do(func() {
		bundle, err := Load(embedded)
		if err != nil {
			panic(err)
		}
		bundle.Register()
		defaultBundle = bundle
	})
	return defaultBundle
}

// Load reads every locales/*/*.yaml file in fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{locales: map[string]map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s has no catalogs", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(p string, f file) error {
	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if f.Locale != wantLocale {
		return fmt.Errorf("locale %q does not match directory %q", f.Locale, wantLocale)
	}
	if f.Namespace != wantNamespace {
		return fmt.Errorf("namespace %q does not match file name %q", f.Namespace, wantNamespace)
	}
	if len(f.Messages) == 0 {
		return fmt.Errorf("no messages")
	}

	namespaces := b.locales[f.Locale]
	if namespaces == nil {
		namespaces = map[string]map[string]string{}
		b.locales[f.Locale] = namespaces
	}
	messages := make(map[string]string, len(f.Messages))
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("blank message key")
		}
		if prefix, _, dotted := strings.Cut(key, "."); dotted && prefix != f.Namespace {
			return fmt.Errorf("key %q belongs in namespace %q", key, prefix)
		}
		for ns, existing := range namespaces {
			if _, dup := existing[key]; dup {
				return fmt.Errorf("key %q already defined in namespace %q", key, ns)
			}
		}
		messages[key] = value
	}
	namespaces[f.Namespace] = messages
	return nil
}

// Register installs every message with x/text/message under its locale and
// the locale's base language, so "pt" requests find "pt-BR" strings.
func (b *Bundle) Register() {
	for _, locale := range b.Locales() {
		tag := language.MustParse(locale)
		tags := []language.Tag{tag}
		if base, confidence := tag.Base(); confidence != language.No {
			if baseTag := language.Make(base.String()); baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for _, messages := range b.locales[locale] {
			for key, value := range messages {
				for _, t := range tags {
					_ = message.SetString(t, key, value)
				}
			}
		}
	}
}

// Locales returns the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// Namespace returns a copy of one namespace for locale, falling back to
// BaseLocale when locale lacks it. The first result is the locale served.
func (b *Bundle) Namespace(locale, namespace string) (string, map[string]string) {
	locale = strings.TrimSpace(locale)
	if messages, ok := b.locales[locale][namespace]; ok {
		return locale, maps(messages)
	}
	return BaseLocale, maps(b.locales[BaseLocale][namespace])
}

// Missing lists base-locale keys that locale does not translate.
func (b *Bundle) Missing(locale string) []string {
	var missing []string
	for ns, messages := range b.locales[BaseLocale] {
		for key := range messages {
			if _, ok := b.locales[locale][ns][key]; !ok {
				missing = append(missing, key)
			}
		}
	}
	slices.Sort(missing)
	return missing
}

func maps(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
