package lookup

import (
	"strings"

	"github.com/louisbranch/apollo/internal/platform/icons"
)

// IconView is the wire shape of one icon shared by the JSON, gRPC and MCP
// surfaces.
type IconView struct {
	Name      string `json:"name" jsonschema:"enum identifier, PascalCase"`
	Key       string `json:"key" jsonschema:"stable kebab-case key"`
	Codepoint string `json:"codepoint" jsonschema:"decimal private-use codepoint"`
	Hex       string `json:"hex" jsonschema:"codepoint as U+XXXX"`
	Label     string `json:"label" jsonschema:"human readable label"`
}

// ViewOf converts a definition to its wire shape.
func ViewOf(def icons.Definition) IconView {
	return IconView{
		Name:      def.Name,
		Key:       def.Key,
		Codepoint: def.Codepoint,
		Hex:       "U+" + strings.ToUpper(def.Hex()),
		Label:     def.Label,
	}
}

// Views converts definitions in order.
func Views(defs []icons.Definition) []IconView {
	views := make([]IconView, 0, len(defs))
	for _, def := range defs {
		views = append(views, ViewOf(def))
	}
	return views
}
