package environ

import (
	"encoding/json"
)

// DefaultClientPrefix selects the variables embedded into client bundles
const DefaultClientPrefix = "REACT_APP_"

// ClientEnv holds the variables exposed to application code
type ClientEnv struct {
	// Raw maps variable names to their values, for HTML interpolation
	Raw map[string]string `json:"raw" yaml:"raw" toml:"raw"`

	// Stringified maps "process.env.NAME" to a JSON string literal, for
	// compile-time substitution
	Stringified map[string]string `json:"stringified" yaml:"stringified" toml:"stringified"`
}

// ClientEnvironment collects every variable starting with prefix, plus
// NODE_ENV (the build mode) and PUBLIC_URL (publicURL, without a trailing
// slash). These two always take the computed values.
func ClientEnvironment(env Environ, prefix, nodeEnv, publicURL string) ClientEnv {
	raw := make(map[string]string)
	for k, v := range env.WithPrefix(prefix) {
		raw[k] = v
	}
	raw[NodeEnv] = nodeEnv
	raw[PublicURL] = publicURL

	stringified := make(map[string]string, len(raw))
	for k, v := range raw {
		quoted, _ := json.Marshal(v)
		stringified["process.env."+k] = string(quoted)
	}

	return ClientEnv{Raw: raw, Stringified: stringified}
}
