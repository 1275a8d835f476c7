// Command icondocgen writes the icon catalog page and, optionally, the font
// stylesheet and SVG sprite derived from the compiled icon table.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/apollo/internal/platform/config"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/icons/iconsvg"
)

const catalogFrontMatter = `---
title: "Icon Catalog"
parent: "Project"
nav_order: 30
---

`

// errStale is returned by -check when an artifact differs from the table.
var errStale = errors.New("generated icon artifacts are stale; rerun icondocgen")

type artifact struct {
	path   string
	render func() (string, error)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("icondocgen: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var (
		outPath, cssPath, spritePath string
		fontURL, rootFlag            string
		check                        bool
	)
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", "docs/project/icon-catalog.md", "output path for the icon catalog")
	flags.StringVar(&cssPath, "css", "", "optional output path for the icon font stylesheet")
	flags.StringVar(&spritePath, "sprite", "", "optional output path for the SVG sprite")
	flags.StringVar(&fontURL, "font-url", "", "font URL referenced by the stylesheet")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.BoolVar(&check, "check", false, "report stale files instead of writing them")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}

	artifacts := []artifact{{
		path:   outPath,
		render: func() (string, error) { return catalogFrontMatter + icons.CatalogMarkdown(), nil },
	}}
	if cssPath != "" {
		artifacts = append(artifacts, artifact{
			path:   cssPath,
			render: func() (string, error) { return icons.FontCSS(icons.CSSOptions{FontURL: fontURL}), nil },
		})
	}
	if spritePath != "" {
		artifacts = append(artifacts, artifact{path: spritePath, render: renderSprite})
	}

	stale := false
	for _, a := range artifacts {
		content, err := a.render()
		if err != nil {
			return fmt.Errorf("render %s: %w", a.path, err)
		}
		target := a.path
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}
		if check {
			current, err := os.ReadFile(target)
			if err != nil || !bytes.Equal(current, []byte(content)) {
				fmt.Fprintf(stdout, "stale %s\n", target)
				stale = true
			}
			continue
		}
		if err := writeOutput(target, content); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", target)
	}
	if stale {
		return errStale
	}
	return nil
}

func renderSprite() (string, error) {
	var b strings.Builder
	if err := iconsvg.Sprite().Render(context.Background(), &b); err != nil {
		return "", err
	}
	b.WriteString("\n")
	return b.String(), nil
}

func writeOutput(output, content string) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(output), err)
	}
	return nil
}

// resolveRoot prefers -root and otherwise walks up from the working
// directory to the nearest go.mod.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("go.mod not found above %s", wd)
		}
	}
}
