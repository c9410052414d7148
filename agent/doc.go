// Package agent contains the DispatchAgent, a rule-based conversational agent
// that routes each incoming message through a fixed priority order:
//
//  1. Admission of the message into memory
//  2. Workspace command interception (/add, /remove, /edit, /files)
//  3. Delegation to peer agents when the delegation marker is present
//  4. Exact tool matches, then token-overlap fallback matches
//  5. A default acknowledgement, or a clarification for too-short input
//
// Every path records its response in memory. Tool invocations additionally
// leave a system-role audit message, so memory doubles as a trace of what the
// agent did. Agents can share one memory.Window to see each other's work.
package agent
