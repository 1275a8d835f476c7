// Package components holds small HTML building blocks shared by pages.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/icons/iconsvg"
)

// TextareaProps configures a native <textarea>.
type TextareaProps struct {
	ID          string
	Name        string
	Value       string
	Placeholder string
	Rows        int
	Class       string
	Disabled    bool
	Required    bool
	Attrs       templ.Attributes
}

// Textarea renders a native textarea. Attrs never override the keys the
// props set.
func Textarea(props TextareaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		own := templ.OrderedAttributes{}
		add := func(name string, value any) {
			own = append(own, templ.KeyValue[string, any]{Key: name, Value: value})
		}
		if props.ID != "" {
			add("id", props.ID)
		}
		if props.Name != "" {
			add("name", props.Name)
		}
		add("class", strings.TrimSpace("textarea textarea-bordered w-full "+props.Class))
		if props.Placeholder != "" {
			add("placeholder", props.Placeholder)
		}
		if props.Rows > 0 {
			add("rows", props.Rows)
		}
		if props.Disabled {
			add("disabled", true)
		}
		if props.Required {
			add("required", true)
		}

		var b strings.Builder
		b.WriteString("<textarea")
		if err := templ.RenderAttributes(ctx, &b, iconsvg.Spread(own, props.Attrs)); err != nil {
			return err
		}
		b.WriteString(">")
		b.WriteString(templ.EscapeString(props.Value))
		b.WriteString("</textarea>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Disclaimer is one note in a DisclaimerList. Icon is optional.
type Disclaimer struct {
	Icon icons.Icon
	Text string
}

// DisclaimerList renders disclaimers as a list. An empty list renders nothing.
func DisclaimerList(items []Disclaimer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<ul class="disclaimers text-sm opacity-80">`); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := io.WriteString(w, `<li class="flex items-center gap-2">`); err != nil {
				return err
			}
			if item.Icon != icons.Unspecified {
				if err := iconsvg.Icon(item.Icon, iconsvg.Props{Size: "16"}).Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "<span>"+templ.EscapeString(item.Text)+"</span></li>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
