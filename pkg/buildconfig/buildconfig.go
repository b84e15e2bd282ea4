package buildconfig

import (
	"path/filepath"

	"github.com/arthur-debert/buildplan/pkg/config"
	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/flags"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/naming"
	"github.com/arthur-debert/buildplan/pkg/paths"
	"github.com/arthur-debert/buildplan/pkg/rules"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// HotDevClient is prepended to the entry list in development
const HotDevClient = "react-dev-utils/webpackHotDevClient"

// Source map module naming styles
const (
	ModuleNamesRelativeToSrc = "relative-to-src"
	ModuleNamesAbsolute      = "absolute"
)

// BuildConfig is the resolved configuration for one build
type BuildConfig struct {
	Mode         types.Mode         `json:"mode" yaml:"mode" toml:"mode"`
	Bail         bool               `json:"bail" yaml:"bail" toml:"bail"`
	Devtool      string             `json:"devtool" yaml:"devtool" toml:"devtool"`
	Entry        []string           `json:"entry" yaml:"entry" toml:"entry"`
	Output       Output             `json:"output" yaml:"output" toml:"output"`
	Resolve      Resolve            `json:"resolve" yaml:"resolve" toml:"resolve"`
	Optimization Optimization       `json:"optimization" yaml:"optimization" toml:"optimization"`
	Module       Module             `json:"module" yaml:"module" toml:"module"`
	Plugins      []Plugin           `json:"plugins" yaml:"plugins" toml:"plugins"`
	Node         map[string]string  `json:"node" yaml:"node" toml:"node"`
	ClientEnv    environ.ClientEnv  `json:"clientEnv" yaml:"clientEnv" toml:"client_env"`
	Flags        flags.FeatureFlags `json:"flags" yaml:"flags" toml:"flags"`
	Paths        *paths.Paths       `json:"paths" yaml:"paths" toml:"paths"`
	Names        naming.Names       `json:"names" yaml:"names" toml:"names"`
	DotEnvFiles  []string           `json:"dotenvFiles,omitempty" yaml:"dotenvFiles,omitempty" toml:"dotenv_files,omitempty"`

	pipeline *rules.Pipeline
}

// Output describes where and under which names bundles are written
type Output struct {
	// Path is the output directory; empty when serving from memory
	Path          string          `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	PathInfo      bool            `json:"pathinfo" yaml:"pathinfo" toml:"pathinfo"`
	Filename      naming.Template `json:"filename" yaml:"filename" toml:"filename"`
	ChunkFilename naming.Template `json:"chunkFilename" yaml:"chunkFilename" toml:"chunk_filename"`
	PublicPath    string          `json:"publicPath" yaml:"publicPath" toml:"public_path"`
	// ModuleNames selects how sources are named inside source maps
	ModuleNames string `json:"moduleNames" yaml:"moduleNames" toml:"module_names"`
}

// Resolve configures module resolution
type Resolve struct {
	Modules    []string          `json:"modules" yaml:"modules" toml:"modules"`
	Extensions []string          `json:"extensions" yaml:"extensions" toml:"extensions"`
	Alias      map[string]string `json:"alias" yaml:"alias" toml:"alias"`
	Plugins    []Plugin          `json:"plugins" yaml:"plugins" toml:"plugins"`
}

// Optimization configures minification and chunk splitting
type Optimization struct {
	Minimize     bool     `json:"minimize" yaml:"minimize" toml:"minimize"`
	Minimizers   []Plugin `json:"minimizers" yaml:"minimizers" toml:"minimizers"`
	SplitChunks  string   `json:"splitChunks" yaml:"splitChunks" toml:"split_chunks"`
	RuntimeChunk bool     `json:"runtimeChunk" yaml:"runtimeChunk" toml:"runtime_chunk"`
}

// Module holds the asset pipeline
type Module struct {
	StrictExportPresence bool `json:"strictExportPresence" yaml:"strictExportPresence" toml:"strict_export_presence"`
	// Parser applies to every module before any rule runs
	Parser Parser `json:"parser" yaml:"parser" toml:"parser"`
	// PreRules run ahead of Rules on the files they select
	PreRules []rules.PreRule `json:"preRules" yaml:"preRules" toml:"pre_rules"`
	Rules    []rules.Rule    `json:"rules" yaml:"rules" toml:"rules"`
}

// Parser switches module syntax support
type Parser struct {
	// RequireEnsure is off: require.ensure is not a standard language
	// feature
	RequireEnsure bool `json:"requireEnsure" yaml:"requireEnsure" toml:"require_ensure"`
}

// Options are the inputs of Build
type Options struct {
	Mode types.Mode
	Root string
	FS   types.FS
	// Environ is the captured process environment. .env files are layered
	// underneath it.
	Environ environ.Environ
	// Config is loaded from Root when nil
	Config *config.Config
}

// Build resolves the configuration for opts.Mode
func Build(opts Options) (*BuildConfig, error) {
	logger := logging.GetLogger("buildconfig")
	done := logging.LogOperationStart(logger, "build configuration")
	defer done()

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Mode != types.ModeDevelopment && opts.Mode != types.ModeProduction {
		return nil, errors.Newf(errors.ErrInvalidMode, "unknown build mode %q", opts.Mode).
			WithDetail("mode", opts.Mode.String())
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(opts.FS, opts.Root, opts.Environ)
		if err != nil {
			return nil, err
		}
	}

	// .env files must be read before PUBLIC_URL and NODE_PATH are looked at
	appDir, err := filesystem.RealPath(opts.FS, opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve project root %s", opts.Root)
	}
	env, loaded, err := environ.LoadDotEnv(opts.FS, filepath.Join(appDir, filepath.FromSlash(cfg.Paths.DotEnv)), opts.Mode, opts.Environ)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(opts.FS, opts.Root, cfg, env)
	if err != nil {
		return nil, err
	}

	f := flags.Detect(opts.Mode, p, env)

	ruleOpts := rules.DefaultOptions(p.AppDir, p.Src)
	ruleOpts.InlineLimit = cfg.Assets.InlineLimit
	ruleOpts.HashLength = cfg.Output.HashLength
	pipeline, err := rules.Compose(opts.Mode, f, ruleOpts)
	if err != nil {
		return nil, err
	}

	names := naming.NamesFor(f.ContentHash, cfg.Output.HashLength)
	clientEnv := environ.ClientEnvironment(env, cfg.ClientEnv.Prefix, opts.Mode.String(), f.PublicURL)

	bc := &BuildConfig{
		Mode:    opts.Mode,
		Bail:    f.Production,
		Devtool: f.Devtool,
		Entry:   entries(f, p),
		Output: Output{
			PathInfo:      !f.Production,
			Filename:      names.Script,
			ChunkFilename: names.ScriptChunk,
			PublicPath:    f.PublicPath,
			ModuleNames:   ModuleNamesAbsolute,
		},
		Resolve: Resolve{
			Modules:    environ.ModuleDirectories(env, p.AppDir),
			Extensions: p.Extensions.Dotted(),
			Alias:      map[string]string{"react-native": "react-native-web"},
			Plugins:    resolvePlugins(p),
		},
		Optimization: Optimization{
			Minimize:     f.Minify,
			Minimizers:   minimizers(f),
			SplitChunks:  "all",
			RuntimeChunk: true,
		},
		Module: Module{
			StrictExportPresence: true,
			Parser:               Parser{RequireEnsure: false},
			PreRules:             pipeline.PreRules(),
			Rules:                pipeline.Rules(),
		},
		Plugins:     plugins(f, p, names, clientEnv),
		Node:        nodeShims(),
		ClientEnv:   clientEnv,
		Flags:       f,
		Paths:       p,
		Names:       names,
		DotEnvFiles: loaded,
		pipeline:    pipeline,
	}
	if f.EmitToDisk {
		bc.Output.Path = p.Build
		bc.Output.ModuleNames = ModuleNamesRelativeToSrc
	}

	logger.Info().
		Str("mode", opts.Mode.String()).
		Str("entry", p.Entry.Path).
		Int("rules", pipeline.Len()).
		Int("plugins", len(bc.Plugins)).
		Msg("Build configuration ready")
	return bc, nil
}

// Pipeline returns the composed asset pipeline
func (bc *BuildConfig) Pipeline() *rules.Pipeline {
	return bc.pipeline
}

// Plugin returns the descriptor called name, if present
func (bc *BuildConfig) Plugin(name string) (Plugin, bool) {
	for _, p := range bc.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}

// ModuleFilename names a source file inside source maps: relative to the
// source root in production and absolute in development, always with
// forward slashes.
func (bc *BuildConfig) ModuleFilename(absResourcePath string) string {
	if bc.Output.ModuleNames == ModuleNamesRelativeToSrc {
		if rel, err := filepath.Rel(bc.Paths.Src, absResourcePath); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	abs, err := filepath.Abs(absResourcePath)
	if err != nil {
		abs = absResourcePath
	}
	return filepath.ToSlash(abs)
}

func entries(f flags.FeatureFlags, p *paths.Paths) []string {
	if f.HotReload {
		return []string{HotDevClient, p.Entry.Path}
	}
	return []string{p.Entry.Path}
}

// nodeShims replaces Node built-ins that have no browser counterpart
func nodeShims() map[string]string {
	return map[string]string{
		"dgram":         "empty",
		"fs":            "empty",
		"net":           "empty",
		"tls":           "empty",
		"child_process": "empty",
	}
}
