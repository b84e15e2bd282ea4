// Package flags collects every mode-dependent toggle into one value.
//
// FeatureFlags is computed once, before any rule is composed, so the rest of
// the configuration never inspects the mode or the environment directly.
package flags

import (
	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/paths"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// Devtool values
const (
	DevtoolNone           = ""
	DevtoolSourceMap      = "source-map"
	DevtoolCheapModuleMap = "cheap-module-source-map"
)

const (
	relativePublicPath    = "./"
	developmentPublicPath = "/"
	disabledToggleValue   = "false"
)

// FeatureFlags is a flat, read-only view of the build toggles
type FeatureFlags struct {
	Mode       types.Mode `json:"mode" yaml:"mode" toml:"mode"`
	Production bool       `json:"production" yaml:"production" toml:"production"`

	// Minify enables the compressor collaborators
	Minify bool `json:"minify" yaml:"minify" toml:"minify"`
	// SourceMaps follows GENERATE_SOURCEMAP in production, always on in
	// development
	SourceMaps bool `json:"sourceMaps" yaml:"sourceMaps" toml:"source_maps"`
	// InlineRuntimeChunk follows INLINE_RUNTIME_CHUNK
	InlineRuntimeChunk bool `json:"inlineRuntimeChunk" yaml:"inlineRuntimeChunk" toml:"inline_runtime_chunk"`
	// EmitToDisk is false when output is served from memory
	EmitToDisk bool `json:"emitToDisk" yaml:"emitToDisk" toml:"emit_to_disk"`
	// ContentHash adds hash placeholders to emitted names
	ContentHash bool `json:"contentHash" yaml:"contentHash" toml:"content_hash"`
	// HotReload enables the hot-update channel
	HotReload bool `json:"hotReload" yaml:"hotReload" toml:"hot_reload"`
	// ExtractStyles writes style sheets to files instead of injecting them
	ExtractStyles bool `json:"extractStyles" yaml:"extractStyles" toml:"extract_styles"`

	TypeScript bool `json:"typescript" yaml:"typescript" toml:"typescript"`
	// TypeCheck runs the parallel type checker
	TypeCheck bool `json:"typeCheck" yaml:"typeCheck" toml:"type_check"`

	// PublicPath prefixes every emitted URL and ends with "/"
	PublicPath string `json:"publicPath" yaml:"publicPath" toml:"public_path"`
	// PublicURL is PublicPath without its trailing slash in production and
	// empty in development
	PublicURL string `json:"publicUrl" yaml:"publicUrl" toml:"public_url"`
	// RelativeAssets is set when PublicPath is "./"
	RelativeAssets bool `json:"relativeAssets" yaml:"relativeAssets" toml:"relative_assets"`

	Devtool string `json:"devtool" yaml:"devtool" toml:"devtool"`
}

// Inputs are the detected facts a FeatureFlags value is derived from
type Inputs struct {
	Env        environ.Environ
	ServedPath string
	TypeScript bool
}

// Resolve derives the flags for mode. It does no I/O.
func Resolve(mode types.Mode, in Inputs) FeatureFlags {
	prod := mode.IsProduction()

	f := FeatureFlags{
		Mode:               mode,
		Production:         prod,
		Minify:             prod,
		SourceMaps:         !prod || in.Env.IsNot(environ.GenerateSourceMap, disabledToggleValue),
		InlineRuntimeChunk: in.Env.IsNot(environ.InlineRuntimeChunk, disabledToggleValue),
		EmitToDisk:         prod,
		ContentHash:        prod,
		HotReload:          !prod,
		ExtractStyles:      prod,
		TypeScript:         in.TypeScript,
		TypeCheck:          in.TypeScript,
	}

	if prod {
		f.PublicPath = in.ServedPath
		if f.PublicPath == "" {
			f.PublicPath = developmentPublicPath
		}
		f.PublicURL = paths.EnsureSlash(f.PublicPath, false)
	} else {
		f.PublicPath = developmentPublicPath
	}
	f.RelativeAssets = f.PublicPath == relativePublicPath

	switch {
	case !prod:
		f.Devtool = DevtoolCheapModuleMap
	case f.SourceMaps:
		f.Devtool = DevtoolSourceMap
	default:
		f.Devtool = DevtoolNone
	}
	return f
}

// Detect derives the flags from resolved project paths
func Detect(mode types.Mode, p *paths.Paths, env environ.Environ) FeatureFlags {
	f := Resolve(mode, Inputs{
		Env:        env,
		ServedPath: p.ServedPath,
		TypeScript: p.TypeScript,
	})
	logger := logging.GetLogger("flags")
	logger.Debug().
		Str("mode", mode.String()).
		Bool("sourceMaps", f.SourceMaps).
		Bool("typeCheck", f.TypeCheck).
		Str("publicPath", f.PublicPath).
		Msg("Resolved feature flags")
	return f
}

// Map returns the flags as a flat name to bool or string mapping
func (f FeatureFlags) Map() map[string]interface{} {
	return map[string]interface{}{
		"mode":               f.Mode.String(),
		"production":         f.Production,
		"minify":             f.Minify,
		"sourceMaps":         f.SourceMaps,
		"inlineRuntimeChunk": f.InlineRuntimeChunk,
		"emitToDisk":         f.EmitToDisk,
		"contentHash":        f.ContentHash,
		"hotReload":          f.HotReload,
		"extractStyles":      f.ExtractStyles,
		"typescript":         f.TypeScript,
		"typeCheck":          f.TypeCheck,
		"publicPath":         f.PublicPath,
		"publicUrl":          f.PublicURL,
		"relativeAssets":     f.RelativeAssets,
		"devtool":            f.Devtool,
	}
}
