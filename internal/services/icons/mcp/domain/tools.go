package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/apollo/internal/platform/i18n/catalog"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultSearchLimit caps icon_search results when the caller sets no limit.
const defaultSearchLimit = 25

// IconLookupInput represents the MCP tool input for resolving one icon.
type IconLookupInput struct {
	Ref string `json:"ref" jsonschema:"icon key, enum name, decimal codepoint or U+XXXX"`
}

// IconLookupResult represents the MCP tool output for one icon.
type IconLookupResult struct {
	Icon lookup.IconView `json:"icon" jsonschema:"the resolved icon"`
}

// IconSearchInput represents the MCP tool input for searching icons.
type IconSearchInput struct {
	Query string `json:"query,omitempty" jsonschema:"case-insensitive text matched against key, name and label"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum icons returned (default 25)"`
}

// IconSearchResult represents the MCP tool output for a search.
type IconSearchResult struct {
	Icons []lookup.IconView `json:"icons" jsonschema:"matching icons in codepoint order"`
	Total int               `json:"total" jsonschema:"number of matches before the limit"`
}

// IconSVGInput represents the MCP tool input for rendering an icon.
type IconSVGInput struct {
	Ref   string `json:"ref" jsonschema:"icon key, enum name, decimal codepoint or U+XXXX"`
	Size  string `json:"size,omitempty" jsonschema:"width and height, e.g. 24 or 1.5em"`
	Color string `json:"color,omitempty" jsonschema:"stroke color, defaults to currentColor"`
}

// IconSVGResult represents the MCP tool output for a rendered icon.
type IconSVGResult struct {
	Ref string `json:"ref" jsonschema:"the reference that was rendered"`
	SVG string `json:"svg" jsonschema:"standalone SVG document"`
}

// IconLookupTool defines the MCP tool schema for resolving an icon.
func IconLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_lookup",
		Description: "Resolves an Apollo icon reference to its key and private-use codepoint",
	}
}

// IconSearchTool defines the MCP tool schema for searching icons.
func IconSearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_search",
		Description: "Searches the Apollo icon set by key, name or label",
	}
}

// IconSVGTool defines the MCP tool schema for rendering icons.
func IconSVGTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_svg",
		Description: "Renders an Apollo icon as an SVG document",
	}
}

// IconLookupHandler resolves one icon.
func IconLookupHandler(registry Registry) mcp.ToolHandlerFor[IconLookupInput, IconLookupResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconLookupInput) (*mcp.CallToolResult, IconLookupResult, error) {
		if registry == nil {
			return nil, IconLookupResult{}, fmt.Errorf("icon registry is not configured")
		}
		view, err := registry.LookupIcon(ctx, input.Ref)
		if err != nil {
			return nil, IconLookupResult{}, toolError{op: "icon lookup failed", err: err}
		}
		return nil, IconLookupResult{Icon: view}, nil
	}
}

// IconSearchHandler searches the icon set.
func IconSearchHandler(registry Registry) mcp.ToolHandlerFor[IconSearchInput, IconSearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconSearchInput) (*mcp.CallToolResult, IconSearchResult, error) {
		if registry == nil {
			return nil, IconSearchResult{}, fmt.Errorf("icon registry is not configured")
		}
		if input.Limit < 0 {
			return nil, IconSearchResult{}, fmt.Errorf("limit must be positive")
		}
		views, err := registry.ListIcons(ctx, strings.TrimSpace(input.Query))
		if err != nil {
			return nil, IconSearchResult{}, toolError{op: "icon search failed", err: err}
		}
		limit := input.Limit
		if limit == 0 {
			limit = defaultSearchLimit
		}
		result := IconSearchResult{Icons: views, Total: len(views)}
		if len(result.Icons) > limit {
			result.Icons = result.Icons[:limit]
		}
		if result.Icons == nil {
			result.Icons = []lookup.IconView{}
		}
		return nil, result, nil
	}
}

// IconSVGHandler renders one icon.
func IconSVGHandler(registry Registry) mcp.ToolHandlerFor[IconSVGInput, IconSVGResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconSVGInput) (*mcp.CallToolResult, IconSVGResult, error) {
		if registry == nil {
			return nil, IconSVGResult{}, fmt.Errorf("icon registry is not configured")
		}
		svg, err := registry.RenderIcon(ctx, lookup.RenderRequest{Ref: input.Ref, Size: input.Size, Color: input.Color})
		if err != nil {
			return nil, IconSVGResult{}, toolError{op: "icon render failed", err: err}
		}
		return nil, IconSVGResult{Ref: strings.TrimSpace(input.Ref), SVG: svg}, nil
	}
}

// toolError reports a failed registry call. Domain errors read as their
// base-locale catalog message so the model sees user-facing text.
type toolError struct {
	op  string
	err error
}

func (e toolError) Error() string {
	var domainErr *apperrors.Error
	if errors.As(e.err, &domainErr) {
		return e.op + ": " + domainErr.Localize(i18ncatalog.BaseLocale)
	}
	return e.op + ": " + e.err.Error()
}

func (e toolError) Unwrap() error {
	return e.err
}
