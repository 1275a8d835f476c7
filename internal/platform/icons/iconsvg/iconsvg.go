// Package iconsvg renders Apollo icons as inline SVG templ components.
package iconsvg

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/apollo/internal/platform/icons"
)

// DefaultSize is the width and height used when Props sets neither.
const DefaultSize = "24"

const (
	defaultColor       = "currentColor"
	defaultStrokeWidth = "2"
	baseClass          = "apollo-icon"
	svgNamespace       = "http://www.w3.org/2000/svg"
)

// Props are presentation attributes forwarded to the root <svg> element.
type Props struct {
	// Size sets width and height together and wins over both.
	Size        string
	Width       string
	Height      string
	Color       string
	StrokeWidth string
	Class       string
	// ID makes the root element referenceable.
	ID string
	// Title gives the icon an accessible name. Without it the icon is
	// hidden from assistive technology.
	Title string
	// Attrs are extra attributes. Keys already set by the wrapper are ignored.
	Attrs templ.Attributes
}

func (p Props) width() string {
	return firstNonEmpty(p.Size, p.Width, DefaultSize)
}

func (p Props) height() string {
	return firstNonEmpty(p.Size, p.Height, DefaultSize)
}

// Icon renders icon as a self-contained inline SVG.
func Icon(icon icons.Icon, props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		def, err := icons.Lookup(icon)
		if err != nil {
			return err
		}
		attrs := appendAttrs(rootAttributes(def, props),
			"fill", "none",
			"stroke", firstNonEmpty(props.Color, defaultColor),
			"stroke-width", firstNonEmpty(props.StrokeWidth, defaultStrokeWidth),
			"stroke-linecap", "round",
			"stroke-linejoin", "round",
		)
		return writeSVG(ctx, w, attrs, props, def.Body)
	})
}

// Use renders icon as a reference into the sprite produced by Sprite.
func Use(icon icons.Icon, props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		def, err := icons.Lookup(icon)
		if err != nil {
			return err
		}
		attrs := rootAttributes(def, props)
		if props.Color != "" {
			attrs = appendAttrs(attrs, "color", props.Color)
		}
		body := `<use href="#` + templ.EscapeString(icons.SymbolID(def.Icon)) + `"></use>`
		return writeSVG(ctx, w, attrs, props, body)
	})
}

// Sprite renders a hidden SVG holding one <symbol> per icon. With no
// arguments every published icon is included.
func Sprite(list ...icons.Icon) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		items := list
		if len(items) == 0 {
			items = icons.All()
		}
		var b strings.Builder
		b.WriteString(`<svg xmlns="` + svgNamespace + `" style="display:none" aria-hidden="true">`)
		for _, icon := range items {
			def, err := icons.Lookup(icon)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, `<symbol id="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</symbol>`,
				templ.EscapeString(icons.SymbolID(def.Icon)), def.Body)
		}
		b.WriteString(`</svg>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Markup renders icon to a string.
func Markup(icon icons.Icon, props Props) (string, error) {
	var b strings.Builder
	if err := Icon(icon, props).Render(context.Background(), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func rootAttributes(def icons.Definition, props Props) templ.OrderedAttributes {
	attrs := templ.OrderedAttributes{{Key: "xmlns", Value: svgNamespace}}
	if props.ID != "" {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: "id", Value: props.ID})
	}
	attrs = appendAttrs(attrs,
		"width", props.width(),
		"height", props.height(),
		"viewBox", "0 0 24 24",
		"class", strings.TrimSpace(baseClass+" "+baseClass+"-"+def.Key+" "+props.Class),
		"data-icon", def.Key,
	)
	if props.Title != "" {
		return appendAttrs(attrs, "role", "img")
	}
	return appendAttrs(attrs, "aria-hidden", "true")
}

// appendAttrs appends name, value pairs.
func appendAttrs(attrs templ.OrderedAttributes, pairs ...string) templ.OrderedAttributes {
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: pairs[i], Value: pairs[i+1]})
	}
	return attrs
}

// Spread returns the attributes of extra that own does not already set, in
// key order, after own. Blank keys are dropped.
func Spread(own templ.OrderedAttributes, extra templ.Attributes) templ.OrderedAttributes {
	taken := make(map[string]bool, len(own))
	for _, attr := range own {
		taken[attr.Key] = true
	}
	out := slices.Clone(own)
	for _, attr := range extra.Items() {
		if taken[attr.Key] || strings.TrimSpace(attr.Key) == "" {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func writeSVG(ctx context.Context, w io.Writer, attrs templ.OrderedAttributes, props Props, body string) error {
	var b strings.Builder
	b.WriteString("<svg")
	if err := templ.RenderAttributes(ctx, &b, Spread(attrs, props.Attrs)); err != nil {
		return err
	}
	b.WriteString(">")
	if props.Title != "" {
		b.WriteString("<title>" + templ.EscapeString(props.Title) + "</title>")
	}
	b.WriteString(body)
	b.WriteString("</svg>")
	_, err := io.WriteString(w, b.String())
	return err
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
