package iconsvg

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

// parseRoot returns the first <svg> element in markup.
func parseRoot(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "svg" {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("no svg element in %q", markup)
	}
	return found
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestIconDefaults(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, render(t, Icon(icons.Add, Props{})))
	for key, want := range map[string]string{
		"width":       DefaultSize,
		"height":      DefaultSize,
		"viewBox":     "0 0 24 24",
		"stroke":      "currentColor",
		"data-icon":   "add",
		"aria-hidden": "true",
		"class":       "apollo-icon apollo-icon-add",
	} {
		if got, _ := attr(root, key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := attr(root, "role"); ok {
		t.Fatal("untitled icon should not have a role")
	}
	if root.FirstChild == nil || root.FirstChild.Data != "path" {
		t.Fatalf("expected icon body, got %+v", root.FirstChild)
	}
}

func TestSizeOverridesWidthAndHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		props      Props
		wantWidth  string
		wantHeight string
	}{
		{name: "size only", props: Props{Size: "32"}, wantWidth: "32", wantHeight: "32"},
		{name: "size wins", props: Props{Size: "16", Width: "40", Height: "48"}, wantWidth: "16", wantHeight: "16"},
		{name: "explicit dimensions", props: Props{Width: "40", Height: "48"}, wantWidth: "40", wantHeight: "48"},
		{name: "width only", props: Props{Width: "40"}, wantWidth: "40", wantHeight: DefaultSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := parseRoot(t, render(t, Icon(icons.Check, tc.props)))
			if got, _ := attr(root, "width"); got != tc.wantWidth {
				t.Fatalf("width = %q, want %q", got, tc.wantWidth)
			}
			if got, _ := attr(root, "height"); got != tc.wantHeight {
				t.Fatalf("height = %q, want %q", got, tc.wantHeight)
			}
		})
	}
}

func TestPassThroughAttributes(t *testing.T) {
	t.Parallel()

	markup := render(t, Icon(icons.Add, Props{
		ID:          "add-button-icon",
		Class:       "text-primary",
		Color:       "#ff0000",
		StrokeWidth: "1.5",
		Attrs: templ.Attributes{
			"data-testid": `x"y`,
			"focusable":   false,
			"hx-preserve": true,
			"width":       "999",
		},
	}))
	root := parseRoot(t, markup)

	checks := map[string]string{
		"id":           "add-button-icon",
		"class":        "apollo-icon apollo-icon-add text-primary",
		"stroke":       "#ff0000",
		"stroke-width": "1.5",
		"data-testid":  `x"y`,
		"width":        DefaultSize,
	}
	for key, want := range checks {
		if got, _ := attr(root, key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := attr(root, "hx-preserve"); !ok {
		t.Fatal("expected bare hx-preserve attribute")
	}
	if _, ok := attr(root, "focusable"); ok {
		t.Fatal("false attribute should be dropped")
	}
	if strings.Contains(markup, `x"y`) {
		t.Fatalf("attribute value was not escaped: %s", markup)
	}
}

func TestAttrsForwardNumbersAndNeverDuplicateOwnedKeys(t *testing.T) {
	t.Parallel()

	markup := render(t, Use(icons.Add, Props{
		ID: "a",
		Attrs: templ.Attributes{
			"id":       "b",
			"tabindex": -1,
			"opacity":  0.5,
			" ":        "blank",
		},
	}))
	if n := strings.Count(markup, ` id=`); n != 1 {
		t.Fatalf("id written %d times: %s", n, markup)
	}
	root := parseRoot(t, markup)
	checks := map[string]string{"id": "a", "tabindex": "-1", "opacity": "0.5"}
	for key, want := range checks {
		if got, _ := attr(root, key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
	if strings.Contains(markup, "blank") {
		t.Fatalf("blank key forwarded: %s", markup)
	}
}

func TestAttrsFillUnsetOptionalKeys(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, render(t, Icon(icons.Add, Props{Attrs: templ.Attributes{"id": "from-attrs"}})))
	if got, _ := attr(root, "id"); got != "from-attrs" {
		t.Fatalf("id = %q, want from-attrs", got)
	}
}

func TestSpreadKeepsOwnOrder(t *testing.T) {
	t.Parallel()

	own := templ.OrderedAttributes{{Key: "width", Value: "24"}, {Key: "class", Value: "x"}}
	got := Spread(own, templ.Attributes{"z": 1, "a": true, "class": "y"})
	var keys []string
	for _, item := range got {
		keys = append(keys, item.Key)
	}
	if strings.Join(keys, ",") != "width,class,a,z" {
		t.Fatalf("keys = %v", keys)
	}
	if len(own) != 2 {
		t.Fatalf("own modified: %v", own)
	}
}

func TestTitleMakesIconAccessible(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, render(t, Icon(icons.Warning, Props{Title: "Careful <now>"})))
	if got, _ := attr(root, "role"); got != "img" {
		t.Fatalf("role = %q, want img", got)
	}
	if _, ok := attr(root, "aria-hidden"); ok {
		t.Fatal("titled icon should not be aria-hidden")
	}
	title := root.FirstChild
	if title == nil || title.Data != "title" || title.FirstChild == nil || title.FirstChild.Data != "Careful <now>" {
		t.Fatalf("unexpected title node %+v", title)
	}
}

func TestUseReferencesSpriteSymbol(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, render(t, Use(icons.Check, Props{Size: "16"})))
	use := root.FirstChild
	if use == nil || use.Data != "use" {
		t.Fatalf("expected <use>, got %+v", use)
	}
	if got, _ := attr(use, "href"); got != "#apollo-check" {
		t.Fatalf("href = %q, want #apollo-check", got)
	}
}

func TestSpriteContainsSymbols(t *testing.T) {
	t.Parallel()

	all := render(t, Sprite())
	if got := strings.Count(all, "<symbol "); got != icons.Len() {
		t.Fatalf("symbols = %d, want %d", got, icons.Len())
	}

	some := render(t, Sprite(icons.Add, icons.Check))
	if strings.Count(some, "<symbol ") != 2 || !strings.Contains(some, `id="apollo-add"`) || !strings.Contains(some, `id="apollo-check"`) {
		t.Fatalf("unexpected sprite: %s", some)
	}
}

func TestUnknownIconFailsToRender(t *testing.T) {
	t.Parallel()

	if _, err := Markup(icons.Icon(9999), Props{}); !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("Markup error = %v, want ErrUnknownIcon", err)
	}
	var b strings.Builder
	if err := Use(icons.Unspecified, Props{}).Render(context.Background(), &b); !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("Use error = %v, want ErrUnknownIcon", err)
	}
	if err := Sprite(icons.Add, icons.Icon(0)).Render(context.Background(), &b); !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("Sprite error = %v, want ErrUnknownIcon", err)
	}
}

func TestMarkupMatchesRender(t *testing.T) {
	t.Parallel()

	got, err := Markup(icons.Add, Props{Size: "20"})
	if err != nil {
		t.Fatalf("Markup: %v", err)
	}
	if want := render(t, Icon(icons.Add, Props{Size: "20"})); got != want {
		t.Fatalf("Markup = %q, want %q", got, want)
	}
}
