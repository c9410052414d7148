package core

import "strings"

// Role categorises the author of a Message.
type Role string

const (
	// RoleUser marks messages authored by the human side of the conversation.
	RoleUser Role = "user"
	// RoleAssistant marks agent responses.
	RoleAssistant Role = "assistant"
	// RoleSystem marks internal reasoning and audit records.
	RoleSystem Role = "system"
)

// String returns the role name.
func (r Role) String() string { return string(r) }

// Message is the unit of communication between callers, agents and memory.
// After construction it should be treated as immutable. Two messages are the
// same message when all of their fields are equal.
type Message struct {
	RoleName string `json:"role_name" yaml:"role_name"`
	Content  string `json:"content" yaml:"content"`
	Role     Role   `json:"role,omitempty" yaml:"role,omitempty"`
}

// NewUserMessage creates a user-authored message.
func NewUserMessage(roleName, content string) Message {
	return Message{RoleName: roleName, Content: content, Role: RoleUser}
}

// NewAssistantMessage creates an agent response.
func NewAssistantMessage(roleName, content string) Message {
	return Message{RoleName: roleName, Content: content, Role: RoleAssistant}
}

// NewSystemMessage creates an internal audit or reasoning record.
func NewSystemMessage(roleName, content string) Message {
	return Message{RoleName: roleName, Content: content, Role: RoleSystem}
}

// RoleOrDefault returns the message role, treating the zero value as RoleUser.
func (m Message) RoleOrDefault() Role {
	if m.Role == "" {
		return RoleUser
	}
	return m.Role
}

// IsSystem reports whether the message is a system record.
func (m Message) IsSystem() bool { return m.RoleOrDefault() == RoleSystem }

// WithContent returns a copy of m carrying different content.
func (m Message) WithContent(content string) Message {
	m.Content = content
	return m
}

// ContainsFold reports whether the content contains substr, ignoring case.
func (m Message) ContainsFold(substr string) bool {
	return strings.Contains(strings.ToLower(m.Content), strings.ToLower(substr))
}
