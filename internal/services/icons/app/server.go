// Package server wires the icon service runtime: the HTTP surface, the gRPC
// registry and the release ledger.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/apollo/internal/platform/timeouts"
	"github.com/louisbranch/apollo/internal/services/icons/api/grpc/registry"
	"github.com/louisbranch/apollo/internal/services/icons/api/httpapi"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
	iconsqlite "github.com/louisbranch/apollo/internal/services/icons/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config configures the icon service runtime.
type Config struct {
	HTTPAddr string
	GRPCAddr string
	// DBPath locates the release ledger. Empty serves without release routes.
	DBPath   string
	FontURL  string
	CacheTTL time.Duration
}

// Server hosts the HTTP and gRPC listeners of the icon service.
type Server struct {
	httpListener net.Listener
	grpcListener net.Listener
	httpServer   *http.Server
	grpcServer   *grpc.Server
	health       *health.Server
	store        *iconsqlite.Store
}

// New opens the ledger and binds both listeners.
func New(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	grpcAddr := strings.TrimSpace(cfg.GRPCAddr)
	if grpcAddr == "" {
		return nil, errors.New("grpc address is required")
	}

	var store *iconsqlite.Store
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		opened, err := openReleaseStore(path)
		if err != nil {
			return nil, err
		}
		store = opened
	}

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("listen http on %s: %w", httpAddr, err)
	}
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		_ = httpListener.Close()
		closeStore(store)
		return nil, fmt.Errorf("listen grpc on %s: %w", grpcAddr, err)
	}

	m := metrics.New()
	renderer := lookup.NewRenderer(cfg.CacheTTL, m)

	var releases storage.ReleaseStore
	if store != nil {
		releases = store
	}
	handler := httpapi.New(httpapi.Config{
		Store:    releases,
		Metrics:  m,
		Renderer: renderer,
		FontURL:  cfg.FontURL,
	})
	httpServer := &http.Server{
		Handler:           handler.Routes(),
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.HTTPWrite,
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(registry.LocaleUnaryInterceptor()),
	)
	registry.RegisterIconRegistryServiceServer(grpcServer, registry.NewService(renderer, m))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(registry.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		httpListener: httpListener,
		grpcListener: grpcListener,
		httpServer:   httpServer,
		grpcServer:   grpcServer,
		health:       healthServer,
		store:        store,
	}, nil
}

// HTTPAddr returns the bound HTTP address.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// GRPCAddr returns the bound gRPC address.
func (s *Server) GRPCAddr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// Run creates and serves an icon server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs both listeners until ctx ends or one of them fails, then stops
// the other gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("icons http listening at %v", s.httpListener.Addr())
	log.Printf("icons grpc listening at %v", s.grpcListener.Addr())
	httpErr := make(chan error, 1)
	grpcErr := make(chan error, 1)
	go func() {
		httpErr <- s.httpServer.Serve(s.httpListener)
	}()
	go func() {
		grpcErr <- s.grpcServer.Serve(s.grpcListener)
	}()

	var serveErr error
	httpDone, grpcDone := false, false
	select {
	case <-ctx.Done():
	case err := <-httpErr:
		httpDone = true
		serveErr = httpServeError(err)
	case err := <-grpcErr:
		grpcDone = true
		serveErr = grpcServeError(err)
	}

	s.health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if !httpDone {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil && serveErr == nil {
			serveErr = fmt.Errorf("shutdown http server: %w", err)
		}
		if err := httpServeError(<-httpErr); err != nil && serveErr == nil {
			serveErr = err
		}
	}
	if !grpcDone {
		s.grpcServer.GracefulStop()
		if err := grpcServeError(<-grpcErr); err != nil && serveErr == nil {
			serveErr = err
		}
	}
	return serveErr
}

// Close releases listeners, servers and the ledger.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	if s.grpcListener != nil {
		_ = s.grpcListener.Close()
	}
	closeStore(s.store)
	s.store = nil
}

func httpServeError(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return fmt.Errorf("serve http: %w", err)
}

func grpcServeError(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

func openReleaseStore(path string) (*iconsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := iconsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open release sqlite store: %w", err)
	}
	return store, nil
}

func closeStore(store *iconsqlite.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Printf("close release store: %v", err)
	}
}
