package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/toolmesh/core"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/tool"
	"github.com/hupe1980/toolmesh/workspace"
)

// DispatchAgent answers messages by running workspace commands, delegating to
// peers or invoking registered tools. It never calls a language model.
type DispatchAgent struct {
	name      string
	opts      Options
	registry  *tool.Registry
	router    *tool.Router
	mu        sync.RWMutex
	delegates []core.Agent
}

var _ core.Agent = (*DispatchAgent)(nil)

// New creates a DispatchAgent.
//
//	a := agent.New("Assistant", func(o *agent.Options) {
//	  o.Tools = tool.Builtins()
//	})
func New(name string, optFns ...func(o *Options)) *DispatchAgent {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.normalize()

	reg := tool.NewRegistry(opts.Tools...)
	return &DispatchAgent{
		name:      name,
		opts:      opts,
		registry:  reg,
		router:    tool.NewRouter(reg, opts.StopTokens...),
		delegates: append([]core.Agent(nil), opts.Delegates...),
	}
}

// Name returns the agent name, used as RoleName on its messages.
func (a *DispatchAgent) Name() string { return a.name }

// Memory returns the (possibly shared) memory.
func (a *DispatchAgent) Memory() core.Memory { return a.opts.Memory }

// Workspace returns the file context, or nil.
func (a *DispatchAgent) Workspace() *workspace.Workspace { return a.opts.Workspace }

// RegisterTool adds t to the registry. A tool with the same name is replaced.
func (a *DispatchAgent) RegisterTool(t tool.Tool) { a.registry.Register(t) }

// Tools returns the registered tools in registration order.
func (a *DispatchAgent) Tools() []tool.Tool { return a.registry.Tools() }

// AddDelegate appends d to the delegate list. Delegates are told apart by
// Name: one named like this agent, or like any agent already handling the
// message further up the delegation chain, is skipped. Give every agent in a
// mesh a distinct name.
func (a *DispatchAgent) AddDelegate(d core.Agent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delegates = append(a.delegates, d)
}

// Delegates returns a copy of the delegate list.
func (a *DispatchAgent) Delegates() []core.Agent {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]core.Agent(nil), a.delegates...)
}

// Step processes one message and returns the response. The only error is a
// context error; every other failure is rendered into the response text.
//
// Memory is written as the turn progresses. A context cancelled between tool
// calls or delegate hand-offs leaves the incoming message and the audit
// entries written so far in memory, without a response.
func (a *DispatchAgent) Step(ctx context.Context, msg core.Message) (core.Message, error) {
	if err := ctx.Err(); err != nil {
		return core.Message{}, err
	}

	turnID := uuid.NewString()
	log := stepLogger{Logger: a.opts.Logger, fields: []any{"agent", a.name, "turn_id", turnID}}
	start := time.Now()
	log.Debug("agent.step.start", "role", msg.RoleOrDefault().String(), "content_len", len(msg.Content))

	a.opts.Memory.Add(msg)

	content, path, err := a.dispatch(ctx, msg, log)
	if err != nil {
		log.Warn("agent.step.aborted", "error", err.Error())
		return core.Message{}, err
	}

	resp := core.NewAssistantMessage(a.name, content)
	a.opts.Memory.Add(resp)

	log.Info("agent.step.done", "path", path, "duration_ms", time.Since(start).Milliseconds())
	return resp, nil
}

// dispatch evaluates the routing stages in priority order and returns the
// response content plus the name of the stage that produced it.
func (a *DispatchAgent) dispatch(ctx context.Context, msg core.Message, log stepLogger) (string, string, error) {
	if a.opts.Workspace != nil {
		if cmd, ok := workspace.ParseCommand(msg.Content); ok {
			return a.opts.Workspace.Handle(cmd), "command", nil
		}
	}

	if a.opts.DelegationMarker != "" && msg.ContainsFold(a.opts.DelegationMarker) {
		if delegates := a.eligibleDelegates(ctx); len(delegates) > 0 {
			out, err := a.delegate(ctx, msg, delegates, log)
			return out, "delegate", err
		}
	}

	if matched, fallback := a.router.Match(msg.Content); len(matched) > 0 {
		out, err := a.invokeTools(ctx, msg, matched, log)
		if fallback {
			return out, "tool_fallback", err
		}
		return out, "tool", err
	}

	if len(strings.TrimSpace(msg.Content)) < a.opts.MinContentLength {
		a.opts.Memory.Add(core.NewSystemMessage(a.name,
			fmt.Sprintf("Error: insufficient context (%d characters, need at least %d)", len(strings.TrimSpace(msg.Content)), a.opts.MinContentLength)))
		log.Warn("agent.step.insufficient_context")
		return Clarification, "clarify", nil
	}
	return a.opts.Acknowledgement, "default", nil
}

// eligibleDelegates drops delegates already handling this message further up
// the delegation chain, which breaks cycles between mutually delegating agents.
func (a *DispatchAgent) eligibleDelegates(ctx context.Context) []core.Agent {
	var out []core.Agent
	for _, d := range a.Delegates() {
		if d.Name() == a.name || inChain(ctx, d.Name()) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// delegate broadcasts msg unchanged to every delegate in order and joins the
// wrapped responses.
func (a *DispatchAgent) delegate(ctx context.Context, msg core.Message, delegates []core.Agent, log stepLogger) (string, error) {
	ctx = withChain(ctx, a.name)
	lines := make([]string, 0, len(delegates))
	for _, d := range delegates {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		log.Info("agent.delegate", "delegate", d.Name())

		resp, err := d.Step(ctx, msg)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			line := fmt.Sprintf("Delegation to %s failed: %v", d.Name(), err)
			a.opts.Memory.Add(core.NewSystemMessage(a.name, line))
			log.Error("agent.delegate.error", "delegate", d.Name(), "error", err.Error())
			lines = append(lines, line)
			continue
		}
		lines = append(lines, fmt.Sprintf("Delegated to %s: %s", d.Name(), resp.Content))
	}
	return strings.Join(lines, "\n"), nil
}

// invokeTools calls each matched tool with the message content. Every call
// leaves one audit message; failures are rendered in-line.
func (a *DispatchAgent) invokeTools(ctx context.Context, msg core.Message, tools []tool.Tool, log stepLogger) (string, error) {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		start := time.Now()
		out, err := t.Call(ctx, msg.Content)
		logging.LogToolCall(log.Logger, t.Name(), time.Since(start), err, log.fields...)

		var line string
		if err != nil {
			line = fmt.Sprintf("Used %s: error: %v", t.Name(), err)
		} else {
			line = fmt.Sprintf("Used %s: %s", t.Name(), out)
		}
		a.opts.Memory.Add(core.NewSystemMessage(a.name, line))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// stepLogger prefixes every record with the agent and turn fields.
type stepLogger struct {
	logging.Logger
	fields []any
}

func (l stepLogger) Debug(msg string, args ...any) { l.Logger.Debug(msg, l.with(args)...) }
func (l stepLogger) Info(msg string, args ...any)  { l.Logger.Info(msg, l.with(args)...) }
func (l stepLogger) Warn(msg string, args ...any)  { l.Logger.Warn(msg, l.with(args)...) }
func (l stepLogger) Error(msg string, args ...any) { l.Logger.Error(msg, l.with(args)...) }

func (l stepLogger) with(args []any) []any {
	return append(append(make([]any, 0, len(l.fields)+len(args)), l.fields...), args...)
}
