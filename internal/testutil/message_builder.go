package testutil

import (
	"context"

	"github.com/hupe1980/toolmesh/core"
	"github.com/hupe1980/toolmesh/tool"
)

// MessageBuilder provides a fluent helper for constructing messages in tests.
// Example:
//
//	msg := NewMessageBuilder().From("Manager").System().Content("audit").Build()
//
// Chain only the parts you need; defaults are a user message from "User".
type MessageBuilder struct {
	roleName string
	role     core.Role
	content  string
}

// NewMessageBuilder creates a builder for a user message from "User".
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{roleName: "User", role: core.RoleUser}
}

// From sets the role name (chainable).
func (b *MessageBuilder) From(name string) *MessageBuilder { b.roleName = name; return b }

// Content sets the text (chainable).
func (b *MessageBuilder) Content(c string) *MessageBuilder { b.content = c; return b }

// User marks the message as user-authored (chainable).
func (b *MessageBuilder) User() *MessageBuilder { b.role = core.RoleUser; return b }

// Assistant marks the message as an agent response (chainable).
func (b *MessageBuilder) Assistant() *MessageBuilder { b.role = core.RoleAssistant; return b }

// System marks the message as a system record (chainable).
func (b *MessageBuilder) System() *MessageBuilder { b.role = core.RoleSystem; return b }

// Build returns the message.
func (b *MessageBuilder) Build() core.Message {
	return core.Message{RoleName: b.roleName, Content: b.content, Role: b.role}
}

// Contents returns the content of each message, preserving order.
func Contents(msgs []core.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Content
	}
	return out
}

// StubTool returns a tool answering every call with out and counting calls.
func StubTool(name, out string, calls *int) tool.Tool {
	return tool.NewFunctionTool(name, "stub "+name, func(context.Context, string) (string, error) {
		if calls != nil {
			*calls++
		}
		return out, nil
	})
}

// FixedStat is a tool.StatFunc reporting a 100 GB volume that is 40% used.
func FixedStat(string) (tool.DiskStats, error) {
	return tool.DiskStats{Total: 100 << 30, Used: 40 << 30, Free: 60 << 30}, nil
}
