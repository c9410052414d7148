package core

// AdmissionPolicy decides whether a message is persisted into conversation
// memory. Implementations must be pure: no side effects, same answer for the
// same message.
type AdmissionPolicy interface {
	Admit(msg Message) bool
}

// PolicyFunc adapts an ordinary function to the AdmissionPolicy interface.
type PolicyFunc func(msg Message) bool

// Admit calls f(msg).
func (f PolicyFunc) Admit(msg Message) bool { return f(msg) }

// Memory is an ordered conversation buffer. Add offers a message to the
// admission policy and reports whether it was stored. Messages returns a copy
// in insertion order, oldest first.
type Memory interface {
	Add(msg Message) bool
	Messages() []Message
	Last() (Message, bool)
	Len() int
}
