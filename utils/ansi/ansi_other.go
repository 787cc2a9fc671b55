//go:build !windows

// Package ansi prepares terminals for ANSI escape sequences.
package ansi

import "os"

// EnableANSI is a no-op on non-Windows; ANSI escape sequences are supported by default.
func EnableANSI(*os.File) {
}
