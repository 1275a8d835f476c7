package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DialStage describes where a connection attempt failed.
type DialStage string

const (
	// DialStageConnect indicates the client could not be created.
	DialStageConnect DialStage = "connect"
	// DialStageHealth indicates the health check never reported SERVING.
	DialStageHealth DialStage = "health"
)

// DialError wraps connection and health check failures with a stage indicator.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClientFactory creates a client connection for addr.
type ClientFactory func(addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

// DefaultClientDialOptions returns plaintext dial options with OTel client
// instrumentation so outbound calls propagate trace context.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// ConnectOptions configures Connect.
type ConnectOptions struct {
	// Service is the health service name to wait for. Empty checks the server as a whole.
	Service string
	// Timeout bounds the health wait. Zero waits until ctx ends.
	Timeout time.Duration
	// Logf receives progress messages when set.
	Logf func(string, ...any)
	// NewClient overrides client creation. Defaults to grpc.NewClient.
	NewClient ClientFactory
	// DialOptions default to DefaultClientDialOptions.
	DialOptions []gogrpc.DialOption
}

// Connect creates a client for addr and waits until the peer reports
// SERVING. The connection is closed when the health check fails.
func Connect(ctx context.Context, addr string, opts ConnectOptions) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	newClient := opts.NewClient
	if newClient == nil {
		newClient = gogrpc.NewClient
	}
	dialOptions := opts.DialOptions
	if len(dialOptions) == 0 {
		dialOptions = DefaultClientDialOptions()
	}

	conn, err := newClient(addr, dialOptions...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}

	waitCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if err := WaitForHealth(waitCtx, conn, opts.Service, opts.Logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}
