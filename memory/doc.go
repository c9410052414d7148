// Package memory contains the conversation memory implementations. The
// Memory and AdmissionPolicy contracts reside in the core package; depend on
// core.Memory in your code and select an implementation (like Window) at
// wiring time.
//
// Window is an ordered, size-bounded buffer with FIFO eviction. Whether a
// message is stored at all is decided by an admission policy; MarkerPolicy
// recognises content markers that exclude a message or restrict storage to
// its public sections.
package memory
