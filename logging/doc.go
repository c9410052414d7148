// Package logging provides a minimal logging interface and adapters for toolmesh.
//
// The Logger interface defines the levelled methods (Debug, Info, Warn, Error)
// that agents and tools use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (tests, library use)
//   - LogToolCall, a helper recording one tool invocation
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", os.Stderr)
//	a := agent.New("Assistant", func(o *agent.Options) { o.Logger = logger })
package logging
