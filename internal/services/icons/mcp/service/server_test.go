package service

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/louisbranch/apollo/internal/services/icons/api/grpc/registry"
	"github.com/louisbranch/apollo/internal/services/icons/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func connect(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve returned error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("serve did not stop after cancel")
		}
	})
	return session
}

func structured[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	var v T
	data, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode structured content: %v", err)
	}
	return v
}

func TestServerListsToolsAndResources(t *testing.T) {
	server, err := New(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := connect(t, server)

	tools, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"icon_lookup", "icon_search", "icon_svg"} {
		if !names[want] {
			t.Fatalf("tools %v missing %s", names, want)
		}
	}

	resources, err := session.ListResources(context.Background(), &mcp.ListResourcesParams{})
	if err != nil {
		t.Fatalf("list resources: %v", err)
	}
	if len(resources.Resources) != 1 || resources.Resources[0].URI != domain.CatalogURI {
		t.Fatalf("resources = %+v", resources.Resources)
	}
}

func TestServerLookupOverSession(t *testing.T) {
	server, err := New(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := connect(t, server)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "icon_lookup",
		Arguments: map[string]any{"ref": "Add"},
	})
	if err != nil {
		t.Fatalf("call icon_lookup: %v", err)
	}
	if result.IsError {
		t.Fatalf("icon_lookup returned tool error: %+v", result.Content)
	}
	got := structured[domain.IconLookupResult](t, result)
	if got.Icon.Key != "add" || got.Icon.Codepoint != "61724" {
		t.Fatalf("icon = %+v", got.Icon)
	}

	result, err = session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "icon_lookup",
		Arguments: map[string]any{"ref": "nope"},
	})
	if err == nil && !result.IsError {
		t.Fatal("expected unknown icon to fail")
	}

	read, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: domain.CatalogURI})
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if len(read.Contents) != 1 || read.Contents[0].Text == "" {
		t.Fatalf("catalog contents = %+v", read.Contents)
	}
}

func TestServerUsesRemoteRegistry(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	registry.RegisterIconRegistryServiceServer(grpcServer, registry.NewService(nil, nil))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(registry.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	go func() {
		_ = grpcServer.Serve(listener)
	}()
	t.Cleanup(grpcServer.Stop)

	server, err := New(context.Background(), Config{GRPCAddr: listener.Addr().String()})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if server.conn == nil {
		t.Fatal("expected remote connection")
	}
	session := connect(t, server)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "icon_search",
		Arguments: map[string]any{"query": "check"},
	})
	if err != nil {
		t.Fatalf("call icon_search: %v", err)
	}
	got := structured[domain.IconSearchResult](t, result)
	if got.Total == 0 || got.Icons[0].Key != "check" {
		t.Fatalf("search = %+v", got)
	}
}

func TestServeWithoutServer(t *testing.T) {
	var nilServer *Server
	if err := nilServer.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for nil server")
	}
	if err := nilServer.Close(); err != nil {
		t.Fatalf("Close(nil) = %v", err)
	}
}
