package resolver

import (
	"fmt"
	"strings"
)

// DefaultExtension is appended when no candidate exists
const DefaultExtension = "js"

// moduleFileExtensions is the priority order used for entry points, test
// bootstraps and bundler resolution. Platform-specific "web." variants rank
// ahead of their generic counterparts.
var moduleFileExtensions = []string{
	"web.mjs",
	"mjs",
	"web.js",
	"js",
	"web.ts",
	"ts",
	"web.tsx",
	"tsx",
	"json",
	"web.jsx",
	"jsx",
}

// Extensions is an immutable, duplicate-free, priority-ordered list of
// candidate extensions, written without a leading dot.
type Extensions struct {
	list []string
}

// DefaultExtensions returns the standard candidate list
func DefaultExtensions() Extensions {
	ext, _ := NewExtensions(moduleFileExtensions...)
	return ext
}

// NewExtensions builds a candidate list. Leading dots are stripped; empty or
// duplicate entries are rejected.
func NewExtensions(candidates ...string) (Extensions, error) {
	seen := make(map[string]bool, len(candidates))
	list := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimPrefix(c, ".")
		if c == "" {
			return Extensions{}, fmt.Errorf("empty candidate extension")
		}
		if seen[c] {
			return Extensions{}, fmt.Errorf("duplicate candidate extension %q", c)
		}
		seen[c] = true
		list = append(list, c)
	}
	return Extensions{list: list}, nil
}

// ForTypeScript returns the list unchanged when TypeScript is enabled and
// without every TypeScript-flavoured entry otherwise.
func (e Extensions) ForTypeScript(enabled bool) Extensions {
	if enabled {
		return e
	}
	list := make([]string, 0, len(e.list))
	for _, c := range e.list {
		if isTypeScriptExtension(c) {
			continue
		}
		list = append(list, c)
	}
	return Extensions{list: list}
}

// isTypeScriptExtension matches any entry whose name mentions "ts"
// (ts, tsx, web.ts, web.tsx).
func isTypeScriptExtension(ext string) bool {
	return strings.Contains(ext, "ts")
}

// List returns a copy of the candidates in priority order
func (e Extensions) List() []string {
	out := make([]string, len(e.list))
	copy(out, e.list)
	return out
}

// Dotted returns the candidates with a leading dot, as bundlers expect
func (e Extensions) Dotted() []string {
	out := make([]string, len(e.list))
	for i, c := range e.list {
		out[i] = "." + c
	}
	return out
}

// Len returns the number of candidates
func (e Extensions) Len() int {
	return len(e.list)
}

// Contains reports whether ext (with or without a leading dot) is a candidate
func (e Extensions) Contains(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, c := range e.list {
		if c == ext {
			return true
		}
	}
	return false
}
