package memory

import (
	"sync"

	"github.com/hupe1980/toolmesh/core"
)

// DefaultWindowSize is the capacity used when none is configured.
const DefaultWindowSize = 10

// Redactor is optionally implemented by admission policies that store a
// reduced copy of an admitted message.
type Redactor interface {
	Redact(msg core.Message) core.Message
}

// WindowOptions configures a Window.
type WindowOptions struct {
	// WindowSize is the maximum number of retained messages. Zero is legal and
	// evicts every message immediately; negative values are treated as zero.
	WindowSize int
	// Policy decides admission. Defaults to AllowAll.
	Policy core.AdmissionPolicy
}

// Window is an in-process core.Memory keeping the most recent admitted
// messages in insertion order.
//
// Concurrency: protected by RWMutex so several agents may share one Window.
// Ordering across writers is whatever order the Add calls happen in.
type Window struct {
	mu       sync.RWMutex
	size     int
	policy   core.AdmissionPolicy
	messages []core.Message
}

var _ core.Memory = (*Window)(nil)

// NewWindow creates an empty window. Without options it holds DefaultWindowSize
// messages and admits everything.
func NewWindow(optFns ...func(o *WindowOptions)) *Window {
	opts := WindowOptions{
		WindowSize: DefaultWindowSize,
		Policy:     AllowAll,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.WindowSize < 0 {
		opts.WindowSize = 0
	}
	if opts.Policy == nil {
		opts.Policy = AllowAll
	}
	return &Window{
		size:     opts.WindowSize,
		policy:   opts.Policy,
		messages: make([]core.Message, 0, opts.WindowSize),
	}
}

// WindowSize returns the configured capacity.
func (w *Window) WindowSize() int { return w.size }

// Admit reports whether msg would be stored.
func (w *Window) Admit(msg core.Message) bool { return w.policy.Admit(msg) }

// Add appends msg when the policy admits it, evicting from the head until the
// buffer fits the window again. It reports whether msg was admitted, which is
// true even when a zero-sized window drops it straight away.
func (w *Window) Add(msg core.Message) bool {
	if !w.policy.Admit(msg) {
		return false
	}
	if r, ok := w.policy.(Redactor); ok {
		msg = r.Redact(msg)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, msg)
	if over := len(w.messages) - w.size; over > 0 {
		// Shift in place so the backing array does not grow without bound.
		n := copy(w.messages, w.messages[over:])
		clear(w.messages[n:])
		w.messages = w.messages[:n]
	}
	return true
}

// Messages returns a copy of the buffer, oldest first.
func (w *Window) Messages() []core.Message {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]core.Message, len(w.messages))
	copy(out, w.messages)
	return out
}

// Filter returns the retained messages with the given role, oldest first.
func (w *Window) Filter(role core.Role) []core.Message {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []core.Message
	for _, m := range w.messages {
		if m.RoleOrDefault() == role {
			out = append(out, m)
		}
	}
	return out
}

// Last returns the newest retained message.
func (w *Window) Last() (core.Message, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.messages) == 0 {
		return core.Message{}, false
	}
	return w.messages[len(w.messages)-1], true
}

// Len returns the number of retained messages.
func (w *Window) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.messages)
}

// Clear drops every retained message.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	clear(w.messages)
	w.messages = w.messages[:0]
}
