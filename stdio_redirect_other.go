//go:build !unix

package main

import "os"

// Best-effort fallback for platforms without Dup2. Runtime-level stderr
// output (panics) is not captured this way, but ordinary logging is.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
