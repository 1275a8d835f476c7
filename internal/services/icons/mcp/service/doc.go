// Package service hosts the icon registry MCP server. Tools and resources
// read the compiled table in process, or a remote registry over gRPC when an
// address is configured.
package service
