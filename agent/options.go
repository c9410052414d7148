package agent

import (
	"github.com/hupe1980/toolmesh/core"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/memory"
	"github.com/hupe1980/toolmesh/tool"
	"github.com/hupe1980/toolmesh/workspace"
)

// Defaults applied by New.
const (
	DefaultDelegationMarker = "delegate"
	DefaultMinContentLength = 3
	DefaultAcknowledgement  = "Hello World!"
	Clarification           = "Could you provide more details about what you need?"
)

// Options configures a DispatchAgent.
type Options struct {
	// Memory stores admitted messages. Pass the same memory to several agents
	// to share it. Defaults to a fresh memory.Window.
	Memory core.Memory

	// Tools are registered in order. Later tools with a duplicate name replace
	// earlier ones.
	Tools []tool.Tool

	// Delegates receive the original message when it carries DelegationMarker.
	// They are identified by Name, see DispatchAgent.AddDelegate.
	Delegates []core.Agent

	// Workspace handles slash commands. Nil disables command interception.
	Workspace *workspace.Workspace

	// Logger defaults to logging.NoOpLogger.
	Logger logging.Logger

	// DelegationMarker triggers delegation when found in content (case-insensitive).
	DelegationMarker string

	// MinContentLength is the shortest trimmed content accepted without a
	// clarification request.
	MinContentLength int

	// Acknowledgement is returned when no tool fires.
	Acknowledgement string

	// StopTokens are tool name tokens ignored by fallback matching.
	StopTokens []string
}

func defaultOptions() Options {
	return Options{
		DelegationMarker: DefaultDelegationMarker,
		MinContentLength: DefaultMinContentLength,
		Acknowledgement:  DefaultAcknowledgement,
		StopTokens:       tool.DefaultStopTokens,
	}
}

func (o *Options) normalize() {
	if o.Memory == nil {
		o.Memory = memory.NewWindow()
	}
	o.Logger = logging.OrNoOp(o.Logger)
	if o.Acknowledgement == "" {
		o.Acknowledgement = DefaultAcknowledgement
	}
	if o.MinContentLength < 0 {
		o.MinContentLength = 0
	}
}
