package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/louisbranch/apollo/internal/platform/icons/manifest"
	"golang.org/x/tools/imports"
)

var errStale = errors.New("generated file is out of date")

var sourceTemplate = template.Must(template.New("icons").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"hex":   func(v int) string { return fmt.Sprintf("%#x", v) },
}).Parse(`// Code generated by icongen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// FontFamily is the icon font the codepoints index into.
const FontFamily = {{quote .Manifest.Font.Family}}

// Published icons in codepoint order.
const (
{{- range $i, $icon := .Manifest.Icons}}
	{{$icon.Name}}{{if eq $i 0}} Icon = iota + 1{{end}}
{{- end}}
)

const iconCount = {{len .Manifest.Icons}}

var definitions = [iconCount + 1]Definition{
{{- range .Manifest.Icons}}
	{{.Name}}: {
		Icon: {{.Name}},
		Name: {{quote .Name}},
		Key: {{quote .Key}},
		Codepoint: "{{.Codepoint}}",
		Rune: {{hex .Codepoint}},
		Label: {{quote .Label}},
		Body: ` + "`{{.Body}}`" + `,
	},
{{- end}}
}
`))

type templateData struct {
	Source   string
	Package  string
	Manifest manifest.Manifest
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fatal(err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var manifestPath string
	var outPath string
	var pkg string
	var check bool
	flags := flag.NewFlagSet("icongen", flag.ContinueOnError)
	flags.StringVar(&manifestPath, "manifest", "manifest.yaml", "icon manifest to read")
	flags.StringVar(&outPath, "out", "icons_gen.go", "generated Go file")
	flags.StringVar(&pkg, "package", "icons", "package name of the generated file")
	flags.BoolVar(&check, "check", false, "fail when the generated file is out of date instead of writing it")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	m, err := manifest.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}
	if assigned, changed := m.AssignCodepoints(); changed {
		if check {
			return fmt.Errorf("%s: %d icons have no codepoint or font.next is behind: %w", manifestPath, assigned, errStale)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("invalid manifest %s:\n%w", manifestPath, err)
		}
		updated, err := m.Rewrite(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", manifestPath, err)
		}
		if err := os.WriteFile(manifestPath, updated, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", manifestPath, err)
		}
		fmt.Fprintf(stdout, "assigned %d codepoints in %s, next is %#x\n", assigned, manifestPath, m.Font.Next)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid manifest %s:\n%w", manifestPath, err)
	}

	src, err := generate(filepath.Base(manifestPath), pkg, m)
	if err != nil {
		return err
	}

	if check {
		current, err := os.ReadFile(outPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", outPath, err)
		}
		if !bytes.Equal(current, src) {
			return fmt.Errorf("%s: %w; run go generate", outPath, errStale)
		}
		fmt.Fprintf(stdout, "%s is up to date\n", outPath)
		return nil
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(stdout, "wrote %d icons to %s\n", len(m.Icons), outPath)
	return nil
}

// generate renders the icon table and formats it like gofmt would.
func generate(source, pkg string, m manifest.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, templateData{Source: source, Package: pkg, Manifest: m}); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	formatted, err := imports.Process("icons_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// fatal reports a generation error and exits immediately.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
