package tool

import "context"

// GreetingToolName is the registry key of the greeting tool.
const GreetingToolName = "greeting_tool"

// Greeting is the fixed output of the greeting tool.
const Greeting = "Hello from tool!"

// NewGreetingTool returns a tool that ignores its input and greets.
func NewGreetingTool() Tool {
	return NewFunctionTool(GreetingToolName, "Say hello with a fixed greeting.", func(context.Context, string) (string, error) {
		return Greeting, nil
	})
}
