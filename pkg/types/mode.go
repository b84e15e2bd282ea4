package types

import (
	"strings"

	"github.com/arthur-debert/buildplan/pkg/errors"
)

// Mode selects which variant of the build configuration is produced
type Mode string

const (
	// ModeDevelopment favours fast rebuilds, stable names and in-memory serving
	ModeDevelopment Mode = "development"

	// ModeProduction favours minified, content-hashed output written to disk
	ModeProduction Mode = "production"
)

// ParseMode converts user input into a Mode. Matching is case-insensitive
// and accepts the usual short forms.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return ModeDevelopment, nil
	case "production", "prod":
		return ModeProduction, nil
	default:
		return "", errors.Newf(errors.ErrInvalidMode, "unknown build mode %q", s).
			WithDetail("mode", s)
	}
}

// String returns the canonical name of the mode
func (m Mode) String() string {
	return string(m)
}

// IsProduction reports whether m is the production mode
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// IsDevelopment reports whether m is the development mode
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}
