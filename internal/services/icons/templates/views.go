// Package templates renders the HTML catalog pages of the icon service.
package templates

import (
	"strings"

	"github.com/louisbranch/apollo/internal/platform/icons"
)

// IconRow is one icon shown in the catalog table.
type IconRow struct {
	Icon      icons.Icon
	Name      string
	Key       string
	Codepoint string
	Hex       string
	Label     string
}

// ResolveRow is one line of a resolve request.
type ResolveRow struct {
	Ref   string
	Found bool
	Row   IconRow
}

// CatalogView is the data behind the catalog page.
type CatalogView struct {
	Lang       string
	Query      string
	Total      int
	FontFamily string
	Rows       []IconRow
	// Message replaces the table when set.
	Message string
}

// BuildIconRows converts definitions into table rows.
func BuildIconRows(definitions []icons.Definition) []IconRow {
	rows := make([]IconRow, 0, len(definitions))
	for _, def := range definitions {
		rows = append(rows, IconRow{
			Icon:      def.Icon,
			Name:      def.Name,
			Key:       def.Key,
			Codepoint: def.Codepoint,
			Hex:       "U+" + strings.ToUpper(def.Hex()),
			Label:     def.Label,
		})
	}
	return rows
}

// BuildResolveRows resolves one reference per non-blank line of input.
func BuildResolveRows(input string) []ResolveRow {
	var rows []ResolveRow
	for _, line := range strings.Split(input, "\n") {
		for _, ref := range strings.Split(line, ",") {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				continue
			}
			row := ResolveRow{Ref: ref}
			if icon, err := icons.Parse(ref); err == nil {
				row.Found = true
				row.Row = BuildIconRows([]icons.Definition{icons.MustLookup(icon)})[0]
			}
			rows = append(rows, row)
		}
	}
	return rows
}
