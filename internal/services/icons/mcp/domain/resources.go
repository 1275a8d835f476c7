package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CatalogURI addresses the full icon table.
const CatalogURI = "icons://catalog"

// CatalogPayload is the JSON body of the catalog resource.
type CatalogPayload struct {
	FontFamily string            `json:"font_family"`
	Icons      []lookup.IconView `json:"icons"`
}

// CatalogResource defines the MCP resource for the icon table.
func CatalogResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "icon_catalog",
		Title:       "Apollo Icon Catalog",
		Description: "Every Apollo icon with its key, name and private-use codepoint",
		MIMEType:    "application/json",
		URI:         CatalogURI,
	}
}

// CatalogResourceHandler serves the icon table as JSON.
func CatalogResourceHandler(registry Registry) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if registry == nil {
			return nil, fmt.Errorf("icon registry is not configured")
		}
		uri := CatalogURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != CatalogURI {
			return nil, fmt.Errorf("resource %s not found", uri)
		}

		views, err := registry.ListIcons(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list icons: %w", err)
		}
		data, err := json.MarshalIndent(CatalogPayload{FontFamily: icons.FontFamily, Icons: views}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal icon catalog: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
