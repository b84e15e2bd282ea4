// Package environ captures the process environment once, layers .env files
// underneath it and derives the values exposed to client code.
//
// Every other package receives an Environ value instead of calling
// os.Getenv, so a build configuration is a pure function of its inputs.
package environ

import (
	"os"
	"sort"
	"strings"
)

// Well-known variables read by buildplan
const (
	GenerateSourceMap  = "GENERATE_SOURCEMAP"
	InlineRuntimeChunk = "INLINE_RUNTIME_CHUNK"
	PublicURL          = "PUBLIC_URL"
	NodePath           = "NODE_PATH"
	NodeEnv            = "NODE_ENV"
)

// Environ is an immutable-by-convention snapshot of environment variables
type Environ map[string]string

// Capture snapshots the current process environment
func Capture() Environ {
	return FromList(os.Environ())
}

// FromList parses KEY=VALUE entries. Entries without "=" are ignored; later
// duplicates win, as with os.Environ.
func FromList(entries []string) Environ {
	env := make(Environ, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Get returns the value of key, or "" when unset
func (e Environ) Get(key string) string {
	return e[key]
}

// Lookup returns the value of key and whether it is set
func (e Environ) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// IsNot reports whether key is unset or holds anything other than value.
// Feature toggles such as GENERATE_SOURCEMAP are on unless set to "false".
func (e Environ) IsNot(key, value string) bool {
	return e[key] != value
}

// WithPrefix returns the variables whose name starts with prefix
func (e Environ) WithPrefix(prefix string) Environ {
	out := make(Environ)
	for k, v := range e {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out
}

// Keys returns the variable names in sorted order
func (e Environ) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of e with every key from lower that e does not define.
// Values already in e always win.
func (e Environ) Merge(lower Environ) Environ {
	out := make(Environ, len(e)+len(lower))
	for k, v := range lower {
		out[k] = v
	}
	for k, v := range e {
		out[k] = v
	}
	return out
}
