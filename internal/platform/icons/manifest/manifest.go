// Package manifest reads and validates the YAML manifest the icon table is
// generated from.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// PrivateUseStart is the first codepoint of the Basic Multilingual Plane
	// private use area.
	PrivateUseStart = 0xe000
	// PrivateUseEnd is the last codepoint of the private use area.
	PrivateUseEnd = 0xf8ff
)

var (
	namePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	keyPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// reservedNames are the exported identifiers the icons package declares
// next to the generated constants. An icon named after one would not compile.
var reservedNames = map[string]bool{
	"All": true, "ByCodepoint": true, "ByKey": true, "ByName": true,
	"CSSOptions": true, "Catalog": true, "CatalogMarkdown": true, "ClassName": true,
	"Definition": true, "ErrUnknownIcon": true, "Find": true, "FontCSS": true,
	"FontFamily": true, "Icon": true, "Len": true, "Lookup": true,
	"LookupCodepoint": true, "LookupKey": true, "MustLookup": true, "MustParse": true,
	"Parse": true, "SymbolID": true, "Unspecified": true,
}

// Reserved reports whether name is taken by the icons package API.
func Reserved(name string) bool {
	return reservedNames[name]
}

// Font names the icon font and where codepoint allocation starts. Next is the
// high-water mark: the lowest codepoint a new icon may take. It only grows,
// so a codepoint freed by a removed icon is never handed out again.
type Font struct {
	Family string `yaml:"family"`
	Start  int    `yaml:"start"`
	Next   int    `yaml:"next,omitempty"`
}

// Entry is one icon as written in the manifest. A zero Codepoint means the
// icon has not been allocated one yet.
type Entry struct {
	Name      string `yaml:"name"`
	Key       string `yaml:"key"`
	Label     string `yaml:"label"`
	Codepoint int    `yaml:"codepoint,omitempty"`
	Body      string `yaml:"body"`
}

// Manifest is the parsed manifest file.
type Manifest struct {
	Font  Font    `yaml:"font"`
	Icons []Entry `yaml:"icons"`
}

// Load reads and parses the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML. Unknown fields are rejected.
func Parse(data []byte) (Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// AssignCodepoints gives every unallocated entry a codepoint at or above
// Font.Next and past the highest one in use, in manifest order, then advances
// Font.Next. It returns how many entries were assigned and whether the
// manifest changed.
func (m *Manifest) AssignCodepoints() (assigned int, changed bool) {
	next := max(m.Font.Start, m.Font.Next)
	for _, entry := range m.Icons {
		next = max(next, entry.Codepoint+1)
	}
	for i := range m.Icons {
		if m.Icons[i].Codepoint != 0 {
			continue
		}
		m.Icons[i].Codepoint = next
		next++
		assigned++
	}
	changed = assigned > 0 || m.Font.Next != next
	m.Font.Next = next
	return assigned, changed
}

// Validate reports every problem found in the manifest.
func (m Manifest) Validate() error {
	var errs []error
	if strings.TrimSpace(m.Font.Family) == "" {
		errs = append(errs, errors.New("font family is required"))
	}
	if !inPrivateUse(m.Font.Start) {
		errs = append(errs, fmt.Errorf("font start %#x is outside the private use area", m.Font.Start))
	}
	if len(m.Icons) == 0 {
		errs = append(errs, errors.New("manifest has no icons"))
	}
	if m.Font.Next != 0 && (m.Font.Next < m.Font.Start || m.Font.Next > PrivateUseEnd+1) {
		errs = append(errs, fmt.Errorf("font next %#x is outside the font range", m.Font.Next))
	}

	names := make(map[string]int, len(m.Icons))
	keys := make(map[string]int, len(m.Icons))
	codepoints := make(map[int]int, len(m.Icons))
	previous := 0
	for i, entry := range m.Icons {
		where := fmt.Sprintf("icon %d (%s)", i+1, entry.Name)
		if !namePattern.MatchString(entry.Name) {
			errs = append(errs, fmt.Errorf("%s: name %q is not PascalCase", where, entry.Name))
		}
		if Reserved(entry.Name) {
			errs = append(errs, fmt.Errorf("%s: name %q is reserved by the icons package", where, entry.Name))
		}
		if !keyPattern.MatchString(entry.Key) {
			errs = append(errs, fmt.Errorf("%s: key %q is not kebab-case", where, entry.Key))
		}
		if strings.TrimSpace(entry.Label) == "" {
			errs = append(errs, fmt.Errorf("%s: label is required", where))
		}
		if strings.TrimSpace(entry.Body) == "" {
			errs = append(errs, fmt.Errorf("%s: body is required", where))
		}
		if strings.Contains(entry.Body, "`") {
			errs = append(errs, fmt.Errorf("%s: body must not contain a backquote", where))
		}
		if prev, ok := names[entry.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: name %q already used by icon %d", where, entry.Name, prev))
		}
		if prev, ok := keys[entry.Key]; ok {
			errs = append(errs, fmt.Errorf("%s: key %q already used by icon %d", where, entry.Key, prev))
		}
		names[entry.Name] = i + 1
		keys[entry.Key] = i + 1

		if entry.Codepoint == 0 {
			errs = append(errs, fmt.Errorf("%s: codepoint is not assigned", where))
			continue
		}
		if !inPrivateUse(entry.Codepoint) || entry.Codepoint < m.Font.Start {
			errs = append(errs, fmt.Errorf("%s: codepoint %#x is outside the font range", where, entry.Codepoint))
		}
		if prev, ok := codepoints[entry.Codepoint]; ok {
			errs = append(errs, fmt.Errorf("%s: codepoint %#x already used by icon %d", where, entry.Codepoint, prev))
		} else if entry.Codepoint <= previous {
			errs = append(errs, fmt.Errorf("%s: codepoint %#x is not after %#x", where, entry.Codepoint, previous))
		}
		if m.Font.Next != 0 && entry.Codepoint >= m.Font.Next {
			errs = append(errs, fmt.Errorf("%s: codepoint %#x is not below font next %#x", where, entry.Codepoint, m.Font.Next))
		}
		codepoints[entry.Codepoint] = i + 1
		if entry.Codepoint > previous {
			previous = entry.Codepoint
		}
	}
	return errors.Join(errs...)
}

// Rewrite applies the codepoints and font.next of m to the manifest document
// src, keeping its comments and layout. Only missing codepoints are written;
// m must have been parsed from src.
func (m Manifest) Rewrite(src []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("manifest is empty")
	}
	root := doc.Content[0]
	font := valueOf(root, "font")
	if font == nil || font.Kind != yaml.MappingNode {
		return nil, errors.New("manifest has no font section")
	}
	setInt(font, "next", fmt.Sprintf("%#x", m.Font.Next), "", true)

	list := valueOf(root, "icons")
	if list == nil || list.Kind != yaml.SequenceNode || len(list.Content) != len(m.Icons) {
		return nil, errors.New("manifest icons do not match the parsed manifest")
	}
	for i, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("icon %d is not a mapping", i+1)
		}
		setInt(item, "codepoint", strconv.Itoa(m.Icons[i].Codepoint), "body", false)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func valueOf(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// setInt writes key: value into mapping, before the key named before when the
// key is new. An existing value is replaced only when overwrite is set.
func setInt(mapping *yaml.Node, key, value, before string, overwrite bool) {
	if existing := valueOf(mapping, key); existing != nil {
		if overwrite {
			existing.Kind, existing.Tag, existing.Style, existing.Value = yaml.ScalarNode, "!!int", 0, value
		}
		return
	}
	at := len(mapping.Content)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == before {
			at = i
			break
		}
	}
	mapping.Content = slices.Insert(mapping.Content, at,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: value},
	)
}

func inPrivateUse(codepoint int) bool {
	return codepoint >= PrivateUseStart && codepoint <= PrivateUseEnd
}
