package core

import (
	"fmt"
	"os"
)

// Logger is the small logging surface the core expects from its host.
// Hosts adapt whatever logger they use; when none is injected the core
// falls back to the console.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ConsoleLogger is the fallback used when the host injects nothing.
type ConsoleLogger struct{}

func (ConsoleLogger) Infof(component, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO] %s: %s\n", component, fmt.Sprintf(format, args...))
}

func (ConsoleLogger) Errorf(component, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s: %s\n", component, fmt.Sprintf(format, args...))
}
