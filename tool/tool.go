// Package tool implements the callable capabilities an agent dispatches to:
// the Tool contract, a name-keyed Registry, a Router that matches message
// content to tools, and the built-in greeting, text rating and disk usage
// tools.
package tool

import (
	"context"
	"fmt"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// Tool implementations should:
//   - Return a stable, unique Name (snake_case recommended); it is the registry key
//   - Keep no state between calls
//   - Treat input as free text (the triggering message content)
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Call executes the tool with the message content as input.
	Call(ctx context.Context, input string) (string, error)
}

// Aliaser is optionally implemented by tools that can be triggered by phrases
// other than their name. Aliases take part in fallback matching.
type Aliaser interface {
	Aliases() []string
}

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
	Err     error  `json:"-"`       // Underlying cause, if any
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error { return e.Err }

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
