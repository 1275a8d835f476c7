package icons

import (
	"fmt"
	"strconv"
)

// Icon identifies one icon of the Apollo set. The zero value is Unspecified
// and never resolves.
type Icon uint16

// Unspecified is the zero Icon. It is not part of the published set.
const Unspecified Icon = 0

// Definition describes a published icon entry.
type Definition struct {
	Icon      Icon
	Name      string
	Key       string
	Codepoint string
	Rune      rune
	Label     string
	// Body is the inner SVG markup drawn on a 24x24 viewBox.
	Body string
}

// Hex returns the codepoint as a lowercase hex escape without prefix, e.g. "f11c".
func (d Definition) Hex() string {
	return strconv.FormatInt(int64(d.Rune), 16)
}

// Valid reports whether i is a member of the published set.
func (i Icon) Valid() bool {
	return i > Unspecified && int(i) <= iconCount
}

// String returns the PascalCase name, or Icon(n) for values outside the set.
func (i Icon) String() string {
	if !i.Valid() {
		return "Icon(" + strconv.Itoa(int(i)) + ")"
	}
	return definitions[i].Name
}

// Key returns the kebab-case key. It panics when i is not a published icon.
func (i Icon) Key() string {
	return i.mustDefinition().Key
}

// Codepoint returns the decimal codepoint string. It panics when i is not a
// published icon.
func (i Icon) Codepoint() string {
	return i.mustDefinition().Codepoint
}

// Rune returns the codepoint as a rune. It panics when i is not a published icon.
func (i Icon) Rune() rune {
	return i.mustDefinition().Rune
}

// Name returns the PascalCase symbolic name. It panics when i is not a
// published icon.
func (i Icon) Name() string {
	return i.mustDefinition().Name
}

// Label returns the human-readable label. It panics when i is not a
// published icon.
func (i Icon) Label() string {
	return i.mustDefinition().Label
}

// Glyph returns the icon as a one-rune string for text rendering with the
// Apollo font.
func (i Icon) Glyph() string {
	return string(i.Rune())
}

func (i Icon) mustDefinition() Definition {
	if !i.Valid() {
		panic(fmt.Sprintf("icons: %s is not a published icon", i))
	}
	return definitions[i]
}
