package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/apollo/internal/platform/branding"
	"github.com/louisbranch/apollo/internal/services/icons/api/grpc/registry"
	"github.com/louisbranch/apollo/internal/services/icons/mcp/domain"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// Config configures the MCP server.
type Config struct {
	// GRPCAddr points at a running icon service. Empty serves the compiled
	// table in process.
	GRPCAddr string
	// Locale is forwarded to the remote registry for localized errors.
	Locale string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New creates a server for cfg, dialing the remote registry when configured.
func New(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.GRPCAddr)
	if addr == "" {
		return newServer(domain.NewLocal(nil, metrics.New()), nil), nil
	}
	client, conn, err := registry.Dial(ctx, addr)
	if err != nil {
		return nil, err
	}
	client.Locale = cfg.Locale
	log.Printf("mcp using icon registry at %s", addr)
	return newServer(client, conn), nil
}

func newServer(reg domain.Registry, conn *grpc.ClientConn) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.IconLookupTool(), domain.IconLookupHandler(reg))
	mcp.AddTool(mcpServer, domain.IconSearchTool(), domain.IconSearchHandler(reg))
	mcp.AddTool(mcpServer, domain.IconSVGTool(), domain.IconSVGHandler(reg))
	mcpServer.AddResource(domain.CatalogResource(), domain.CatalogResourceHandler(reg))
	return &Server{mcpServer: mcpServer, conn: conn}
}

// Run creates a server and serves it on stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
