// Package domain defines the MCP tools and resources of the icon registry.
package domain
