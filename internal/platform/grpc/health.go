// Package grpc holds connection helpers shared by gRPC clients.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ErrNoHealthService reports a peer that does not serve grpc.health.v1.
var ErrNoHealthService = errors.New("peer does not implement grpc.health.v1")

// HealthPolicy paces health probes.
type HealthPolicy struct {
	// Probe bounds a single Check call.
	Probe time.Duration
	// Initial is the first pause between probes; it doubles up to Max.
	Initial time.Duration
	Max     time.Duration
}

// DefaultHealthPolicy probes every 200ms at first and at most once a second.
var DefaultHealthPolicy = HealthPolicy{Probe: time.Second, Initial: 200 * time.Millisecond, Max: time.Second}

// WaitForHealth polls service until it reports SERVING or ctx ends, using
// DefaultHealthPolicy.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	return DefaultHealthPolicy.Wait(ctx, conn, service, logf)
}

// Wait polls service until it reports SERVING. A peer without a health
// service fails at once with ErrNoHealthService.
func (p HealthPolicy) Wait(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	client := grpc_health_v1.NewHealthClient(conn)
	pause := p.Initial
	for {
		state, err := p.probe(ctx, client, service)
		switch {
		case err == nil && state == grpc_health_v1.HealthCheckResponse_SERVING:
			logf("gRPC health for %q is SERVING", service)
			return nil
		case status.Code(err) == codes.Unimplemented:
			return ErrNoHealthService
		case err != nil:
			logf("waiting for gRPC health: %v", err)
		default:
			logf("waiting for gRPC health: status %s", state)
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-timer.C:
		}
		pause = min(pause*2, p.Max)
	}
}

func (p HealthPolicy) probe(ctx context.Context, client grpc_health_v1.HealthClient, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	probeCtx, cancel := context.WithTimeout(ctx, p.Probe)
	defer cancel()
	resp, err := client.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
