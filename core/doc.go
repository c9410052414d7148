// Package core provides the foundational domain types and contracts used by
// toolmesh. It defines:
//
//   - Message (an immutable role-tagged text record) and its constructors
//   - Agent (anything that can take one conversational Step)
//   - Memory and AdmissionPolicy (bounded conversation storage and the rule
//     deciding which messages are persisted)
//
// Concrete implementations live in the agent, memory and tool packages so the
// contracts can be shared without import cycles.
package core
