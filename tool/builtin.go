package tool

// Builtins returns the greeting, text rating and disk usage tools, in that order.
func Builtins() []Tool {
	return []Tool{
		NewGreetingTool(),
		NewTextRatingTool(),
		NewDiskUsageTool(DefaultDiskPath, nil),
	}
}
