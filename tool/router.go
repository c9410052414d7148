package tool

import (
	"slices"
	"strings"
	"unicode"
)

// DefaultStopTokens are name tokens too generic to trigger a fallback match.
var DefaultStopTokens = []string{"tool", "tools"}

// Router selects the tools a message should invoke.
//
// Matching runs in two passes. The exact pass fires every tool whose name
// occurs in the content as a substring, ignoring case. Only when nothing fired
// does the fallback pass run: a tool fires when one of its name tokens equals
// a word of the content, or when one of its aliases occurs there as a
// whole-word phrase. Fallback compares whole words, not substrings, so
// "greetings" does not fire greeting_tool, and stop tokens never fire a tool.
type Router struct {
	registry   *Registry
	stopTokens map[string]struct{}
}

// NewRouter creates a router over reg. When no stop tokens are given
// DefaultStopTokens apply.
func NewRouter(reg *Registry, stopTokens ...string) *Router {
	if stopTokens == nil {
		stopTokens = DefaultStopTokens
	}
	stop := make(map[string]struct{}, len(stopTokens))
	for _, s := range stopTokens {
		stop[strings.ToLower(s)] = struct{}{}
	}
	return &Router{registry: reg, stopTokens: stop}
}

// Match returns the tools to invoke for content in registration order, and
// whether they came from the fallback pass.
func (r *Router) Match(content string) (matched []Tool, fallback bool) {
	tools := r.registry.Tools()
	lower := strings.ToLower(content)

	for _, t := range tools {
		if strings.Contains(lower, strings.ToLower(t.Name())) {
			matched = append(matched, t)
		}
	}
	if len(matched) > 0 {
		return matched, false
	}

	words := Tokens(lower)
	for _, t := range tools {
		if r.fallbackMatch(t, words) {
			matched = append(matched, t)
		}
	}
	return matched, len(matched) > 0
}

func (r *Router) fallbackMatch(t Tool, words []string) bool {
	for _, tok := range Tokens(t.Name()) {
		if _, stop := r.stopTokens[tok]; stop {
			continue
		}
		if slices.Contains(words, tok) {
			return true
		}
	}
	if a, ok := t.(Aliaser); ok {
		for _, alias := range a.Aliases() {
			if containsPhrase(words, Tokens(alias)) {
				return true
			}
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs as a contiguous run in words.
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(words); i++ {
		for j, p := range phrase {
			if words[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}

// Tokens lowercases s and splits it on every rune that is not a letter or digit.
func Tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
