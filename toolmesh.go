// Package toolmesh provides a small façade over the agent, memory and tool
// packages. Most applications interact with it by:
//  1. Creating a preconfigured agent via NewToolAgent
//  2. Sending text through Chat and reading back the response content
//
// The agent returned by NewToolAgent carries the built-in greeting, text
// rating and disk usage tools plus a fresh bounded memory. Use the agent
// package directly for custom tool sets, shared memory or delegation.
package toolmesh

import (
	"context"

	"github.com/hupe1980/toolmesh/agent"
	"github.com/hupe1980/toolmesh/config"
	"github.com/hupe1980/toolmesh/core"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/memory"
	"github.com/hupe1980/toolmesh/tool"
	"github.com/hupe1980/toolmesh/workspace"
)

// DefaultAgentName is the role name of the agent built by NewToolAgent.
const DefaultAgentName = "Assistant"

// Options configures NewToolAgent.
type Options struct {
	// Name of the agent (defaults to DefaultAgentName).
	Name string

	// Config supplies window size, markers and dispatch knobs.
	Config config.Config

	// Memory overrides the window built from Config. Share one memory between
	// agents to give them a common view of the conversation.
	Memory core.Memory

	// Workspace enables /add, /remove, /edit and /files. Nil disables them.
	Workspace *workspace.Workspace

	// Stat overrides the disk usage probe (defaults to statfs).
	Stat tool.StatFunc

	// Tools are registered after the built-ins.
	Tools []tool.Tool

	// Delegates receive messages carrying the delegation marker.
	Delegates []core.Agent

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// NewToolAgent builds an agent preloaded with the three built-in tools and a
// bounded memory window (10 messages by default).
func NewToolAgent(optFns ...func(o *Options)) *agent.DispatchAgent {
	opts := Options{
		Name:   DefaultAgentName,
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := opts.Config
	mem := opts.Memory
	if mem == nil {
		mem = memory.NewWindow(func(o *memory.WindowOptions) {
			o.WindowSize = cfg.WindowSize
			o.Policy = cfg.Policy()
		})
	}

	tools := []tool.Tool{
		tool.NewGreetingTool(),
		tool.NewTextRatingTool(),
		tool.NewDiskUsageTool(cfg.DiskPath, opts.Stat),
	}

	return agent.New(opts.Name, func(o *agent.Options) {
		o.Memory = mem
		o.Tools = append(tools, opts.Tools...)
		o.Delegates = opts.Delegates
		o.Workspace = opts.Workspace
		o.Logger = opts.Logger
		o.DelegationMarker = cfg.DelegationMarker
		o.MinContentLength = cfg.MinContentLength
		o.Acknowledgement = cfg.Acknowledgement
	})
}

// Chat sends content as a user message from roleName and returns the
// response content.
func Chat(ctx context.Context, a core.Agent, roleName, content string) (string, error) {
	resp, err := a.Step(ctx, core.NewUserMessage(roleName, content))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
