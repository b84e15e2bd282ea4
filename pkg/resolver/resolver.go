package resolver

import (
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// ResolvedPath is the outcome of resolving a module stem
type ResolvedPath struct {
	// Path is the chosen file. It may not exist when Found is false.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Extension is the candidate that matched, or DefaultExtension
	Extension string `json:"extension" yaml:"extension" toml:"extension"`

	// Found reports whether Path was observed on disk
	Found bool `json:"found" yaml:"found" toml:"found"`
}

// String returns the resolved path
func (r ResolvedPath) String() string {
	return r.Path
}

// Resolve returns the first baseName.<candidate> that exists in fsys,
// probing candidates in order. When none exists it returns
// baseName + ".js" without checking whether that file exists either.
func Resolve(fsys types.FS, baseName string, candidates Extensions) ResolvedPath {
	logger := logging.GetLogger("resolver")

	for _, ext := range candidates.list {
		candidate := baseName + "." + ext
		if filesystem.Exists(fsys, candidate) {
			logger.Trace().
				Str("base", baseName).
				Str("path", candidate).
				Msg("Resolved module")
			return ResolvedPath{Path: candidate, Extension: ext, Found: true}
		}
	}

	fallback := baseName + "." + DefaultExtension
	logger.Debug().
		Str("base", baseName).
		Str("path", fallback).
		Int("candidates", candidates.Len()).
		Msg("No candidate exists, using default extension")
	return ResolvedPath{Path: fallback, Extension: DefaultExtension, Found: false}
}
