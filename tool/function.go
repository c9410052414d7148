package tool

import (
	"context"
	"errors"
)

// FunctionTool is a generic adapter that exposes a plain Go function as a Tool.
//
// Error Semantics:
//
//	*ToolError (returned directly)  -> forwarded unchanged
//	other error                     -> *ToolError{Code: "EXECUTION_ERROR"}
//
// A FunctionTool has no mutable state after construction and is safe for
// concurrent use.
type FunctionTool struct {
	name        string
	description string
	aliases     []string
	fn          func(ctx context.Context, input string) (string, error)
}

var (
	_ Tool    = (*FunctionTool)(nil)
	_ Aliaser = (*FunctionTool)(nil)
)

// NewFunctionTool creates a Tool from fn.
//
// Example:
//
//	echo := NewFunctionTool("echo_tool", "Echo the message back", func(_ context.Context, in string) (string, error) {
//	  return in, nil
//	})
func NewFunctionTool(name, description string, fn func(ctx context.Context, input string) (string, error), aliases ...string) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		aliases:     aliases,
		fn:          fn,
	}
}

// Name returns the unique tool name used for routing.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the short natural language description.
func (t *FunctionTool) Description() string { return t.description }

// Aliases returns the extra trigger phrases.
func (t *FunctionTool) Aliases() []string { return t.aliases }

// Call invokes the wrapped function, normalising failures to *ToolError.
func (t *FunctionTool) Call(ctx context.Context, input string) (string, error) {
	out, err := t.fn(ctx, input)
	if err == nil {
		return out, nil
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return "", toolErr
	}
	return "", &ToolError{
		Tool:    t.name,
		Message: err.Error(),
		Code:    "EXECUTION_ERROR",
		Err:     err,
	}
}
