package memory

import (
	"regexp"
	"strings"

	"github.com/hupe1980/toolmesh/core"
)

// Default content markers understood by MarkerPolicy.
const (
	DefaultExcludeMarker    = "[private]"
	DefaultPublicOnlyMarker = "[public-only]"
)

// AllowAll admits every message.
var AllowAll core.AdmissionPolicy = core.PolicyFunc(func(core.Message) bool { return true })

var publicSection = regexp.MustCompile(`(?is)<public>(.*?)</public>`)

// MarkerPolicy admits messages based on markers embedded in their content.
//
//   - ExcludeMarker anywhere in the content: never stored.
//   - PublicOnlyMarker: stored only if the content has at least one
//     <public>...</public> section, and then only those sections are kept.
//
// Markers are matched case-insensitively. Empty markers are disabled.
type MarkerPolicy struct {
	ExcludeMarker    string
	PublicOnlyMarker string
}

var (
	_ core.AdmissionPolicy = MarkerPolicy{}
	_ Redactor             = MarkerPolicy{}
)

// NewMarkerPolicy returns a policy using the default markers.
func NewMarkerPolicy() MarkerPolicy {
	return MarkerPolicy{ExcludeMarker: DefaultExcludeMarker, PublicOnlyMarker: DefaultPublicOnlyMarker}
}

// Admit implements core.AdmissionPolicy.
func (p MarkerPolicy) Admit(msg core.Message) bool {
	if p.ExcludeMarker != "" && msg.ContainsFold(p.ExcludeMarker) {
		return false
	}
	if p.PublicOnlyMarker != "" && msg.ContainsFold(p.PublicOnlyMarker) {
		return len(publicSection.FindAllStringSubmatch(msg.Content, -1)) > 0
	}
	return true
}

// Redact keeps only the public sections of a public-only message. Other
// messages are returned unchanged.
func (p MarkerPolicy) Redact(msg core.Message) core.Message {
	if p.PublicOnlyMarker == "" || !msg.ContainsFold(p.PublicOnlyMarker) {
		return msg
	}
	matches := publicSection.FindAllStringSubmatch(msg.Content, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m[1]); s != "" {
			parts = append(parts, s)
		}
	}
	return msg.WithContent(strings.Join(parts, " "))
}
