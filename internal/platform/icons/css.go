package icons

import (
	"fmt"
	"strings"
)

// CSSOptions controls FontCSS output.
type CSSOptions struct {
	// Family is the font-family name. Defaults to FontFamily.
	Family string
	// ClassPrefix prefixes every icon class. Defaults to FontFamily.
	ClassPrefix string
	// FontURL locates the woff2 font. Defaults to "apollo.woff2".
	FontURL string
}

func (o CSSOptions) withDefaults() CSSOptions {
	if strings.TrimSpace(o.Family) == "" {
		o.Family = FontFamily
	}
	if strings.TrimSpace(o.ClassPrefix) == "" {
		o.ClassPrefix = FontFamily
	}
	if strings.TrimSpace(o.FontURL) == "" {
		o.FontURL = FontFamily + ".woff2"
	}
	return o
}

// FontCSS renders the @font-face block and one ::before rule per icon so
// that <i class="apollo apollo-add"></i> draws the glyph.
func FontCSS(opts CSSOptions) string {
	opts = opts.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "@font-face {\n  font-family: %q;\n  src: url(%q) format(\"woff2\");\n  font-display: block;\n}\n\n", opts.Family, opts.FontURL)
	fmt.Fprintf(&b, ".%s {\n  font-family: %q !important;\n  font-style: normal;\n  font-weight: normal;\n  line-height: 1;\n  -webkit-font-smoothing: antialiased;\n}\n", opts.ClassPrefix, opts.Family)
	for _, def := range definitions[1:] {
		fmt.Fprintf(&b, "\n.%s-%s::before {\n  content: \"\\%s\";\n}\n", opts.ClassPrefix, def.Key, def.Hex())
	}
	return b.String()
}
