// Package discovery centralizes in-network addressing for Apollo services.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceIcons is the icon registry service identity.
	ServiceIcons = "icons"
)

var grpcPorts = map[string]int{
	ServiceIcons: 8091,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	port, ok := grpcPorts[strings.TrimSpace(service)]
	if !ok || port <= 0 {
		return ""
	}
	return strings.TrimSpace(service) + ":" + strconv.Itoa(port)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}
