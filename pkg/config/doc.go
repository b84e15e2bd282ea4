// Package config loads the tool's own settings.
//
// Settings are layered with koanf: the embedded defaults.toml first, then an
// optional buildplan.toml at the project root, then BUILDPLAN_ variables
// taken from the captured environment. Later layers override earlier ones
// key by key. Environment keys use a double underscore between the section
// and the key, so BUILDPLAN_ASSETS__INLINE_LIMIT sets assets.inline_limit.
package config
