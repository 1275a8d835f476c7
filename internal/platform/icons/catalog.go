package icons

import (
	"strings"
)

// Catalog returns a copy of the icon definitions in codepoint order.
func Catalog() []Definition {
	result := make([]Definition, iconCount)
	copy(result, definitions[1:])
	return result
}

// Find returns the definitions whose key, name or label contains query,
// ignoring case. An empty query matches everything.
func Find(query string) []Definition {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Catalog()
	}
	var result []Definition
	for _, def := range definitions[1:] {
		if strings.Contains(def.Key, query) ||
			strings.Contains(strings.ToLower(def.Name), query) ||
			strings.Contains(strings.ToLower(def.Label), query) {
			result = append(result, def)
		}
	}
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go run ./internal/tools/icondocgen`.\n\n")
	builder.WriteString("| Icon | Key | Codepoint | Hex | Label |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, def := range definitions[1:] {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | `")
		builder.WriteString(def.Key)
		builder.WriteString("` | ")
		builder.WriteString(def.Codepoint)
		builder.WriteString(" | U+")
		builder.WriteString(strings.ToUpper(def.Hex()))
		builder.WriteString(" | ")
		builder.WriteString(def.Label)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
