package config

import (
	"fmt"
	"io"
	"os"
)

// Exit codes used by Apollo commands.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf prints a message to stderr and exits with ExitFailure.
func Exitf(format string, args ...any) {
	ExitCodef(ExitFailure, format, args...)
}

// ExitCodef prints a message to stderr and exits with code.
func ExitCodef(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(code)
}
