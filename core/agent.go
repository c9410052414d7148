package core

import "context"

// Agent defines the contract shared by every conversational participant.
//
// Step consumes one message and produces exactly one response message. The
// only error an implementation returns is a context error; domain failures
// (unknown commands, too-short input, failing tools) are rendered into the
// response text.
type Agent interface {
	Name() string
	Step(ctx context.Context, msg Message) (Message, error)
}
