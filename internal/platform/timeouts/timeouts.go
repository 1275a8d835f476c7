// Package timeouts defines the durations shared by Apollo processes.
package timeouts

import "time"

// GRPCDial caps the wait for a gRPC peer to report SERVING.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single registry call made by a client.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// HTTPWrite limits how long a response may take to write.
const HTTPWrite = 15 * time.Second

// Shutdown limits graceful shutdown of servers and telemetry.
const Shutdown = 5 * time.Second
