package rules

import (
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/flags"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/naming"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// DefaultInlineLimit is the media size, in bytes, from which files are copied
// instead of inlined
const DefaultInlineLimit = 10000

// Compiler presets and plugins
const (
	PresetApplication  = "babel-preset-react-app"
	PresetDependencies = "babel-preset-react-app/dependencies"
	PluginNamedAssets  = "babel-plugin-named-asset-import"
	SVGComponentLoader = "@svgr/webpack?-prettier,-svgo![path]"
	PreprocessorSass   = "sass"
	relativeStylePath  = "../../"
)

// Lint stage
const (
	RuleLint      = "lint"
	LoaderLint    = "eslint-loader"
	LintFormatter = "react-dev-utils/eslintFormatter"
	LintEngine    = "eslint"
)

// Options are the mode-independent inputs of Compose
type Options struct {
	// AppDir anchors relative paths given to Match and Classify
	AppDir string
	// SrcDir is the application source root, absolute
	SrcDir string
	// InlineLimit is the media inlining threshold in bytes
	InlineLimit int64
	// HashLength is the hash prefix length in production names
	HashLength int
}

// DefaultOptions returns options with the standard limits
func DefaultOptions(appDir, srcDir string) Options {
	return Options{
		AppDir:      appDir,
		SrcDir:      srcDir,
		InlineLimit: DefaultInlineLimit,
		HashLength:  naming.DefaultHashLength,
	}
}

// Compose builds the pipeline for mode. The same inputs always produce an
// equal pipeline.
func Compose(mode types.Mode, f flags.FeatureFlags, opts Options) (*Pipeline, error) {
	logger := logging.GetLogger("rules.compose")

	if f.Mode != "" && f.Mode != mode {
		return nil, errors.Newf(errors.ErrInvalidMode,
			"feature flags were resolved for %s, not %s", f.Mode, mode).
			WithDetail("mode", mode.String())
	}
	if opts.HashLength <= 0 {
		opts.HashLength = naming.DefaultHashLength
	}
	if opts.InlineLimit < 0 {
		return nil, errors.New(errors.ErrInvalidInput, "inline limit must not be negative").
			WithDetail("inline_limit", opts.InlineLimit)
	}

	names := naming.NamesFor(f.ContentHash, opts.HashLength)
	rules := []Rule{
		mediaRule(names, opts),
		appScriptRule(names, f, opts),
		dependencyScriptRule(names, f),
		styleRule(RuleCSS, names, f, false, ""),
		styleRule(RuleCSSModule, names, f, true, ""),
		styleRule(RuleSass, names, f, false, PreprocessorSass),
		styleRule(RuleSassModule, names, f, true, PreprocessorSass),
		fileRule(names),
	}
	for i := range rules {
		rules[i].Order = i + 1
	}

	p := &Pipeline{
		mode:   mode,
		appDir: opts.AppDir,
		pre:    []PreRule{lintRule(opts)},
		rules:  rules,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if !f.TypeScript {
		logger.Info().Msg("TypeScript not detected, ts and tsx are left out of the script rule")
	}
	logger.Debug().
		Str("mode", mode.String()).
		Int("rules", len(rules)).
		Msg("Composed pipeline")
	return p, nil
}

func mediaRule(names naming.Names, opts Options) Rule {
	return Rule{
		Name: RuleMedia,
		Predicate: Predicate{
			Patterns: []string{"**/*.{bmp,gif,jpg,jpeg,png}"},
		},
		Strategy: types.StrategyCopyVerbatim,
		Output:   names.Media,
		Inline:   &InlineOptions{Limit: opts.InlineLimit},
	}
}

func appScriptRule(names naming.Names, f flags.FeatureFlags, opts Options) Rule {
	pattern := "**/*.{js,mjs,jsx}"
	if f.TypeScript {
		pattern = "**/*.{js,mjs,jsx,ts,tsx}"
	}
	return Rule{
		Name: RuleAppScript,
		Predicate: Predicate{
			Patterns: []string{pattern},
			Include:  []string{opts.SrcDir},
		},
		Strategy: types.StrategyCompile,
		Output:   names.ScriptChunk,
		Compile: &CompileOptions{
			Scope:            ScopeApplication,
			Preset:           PresetApplication,
			Plugins:          []CompilerPlugin{namedAssetImport()},
			ProjectConfig:    true,
			CacheDirectory:   true,
			CacheCompression: f.Production,
			Compact:          f.Production,
			SourceMaps:       f.SourceMaps,
		},
	}
}

// namedAssetImport lets `import { ReactComponent } from './logo.svg'` load
// the file through the SVG component loader
func namedAssetImport() CompilerPlugin {
	return CompilerPlugin{
		Name: PluginNamedAssets,
		Options: map[string]interface{}{
			"loaderMap": map[string]interface{}{
				"svg": map[string]interface{}{
					"ReactComponent": SVGComponentLoader,
				},
			},
		},
	}
}

// lintRule lints application scripts before they are compiled. TypeScript
// sources are left to the type checker.
func lintRule(opts Options) PreRule {
	return PreRule{
		Name: RuleLint,
		Predicate: Predicate{
			Patterns: []string{"**/*.{js,mjs,jsx}"},
			Include:  []string{opts.SrcDir},
		},
		Loader: LoaderLint,
		Options: map[string]string{
			"formatter":  LintFormatter,
			"eslintPath": LintEngine,
		},
	}
}

func dependencyScriptRule(names naming.Names, f flags.FeatureFlags) Rule {
	return Rule{
		Name: RuleDependencyScript,
		Predicate: Predicate{
			Patterns: []string{"**/*.{js,mjs}"},
			Exclude:  []string{"**/@babel/runtime*/**"},
		},
		Strategy: types.StrategyCompile,
		Output:   names.ScriptChunk,
		Compile: &CompileOptions{
			Scope:            ScopeDependency,
			Preset:           PresetDependencies,
			CacheDirectory:   true,
			CacheCompression: f.Production,
			Helpers:          true,
		},
	}
}

func styleRule(name string, names naming.Names, f flags.FeatureFlags, scoped bool, preprocessor string) Rule {
	ext := "css"
	importLoaders := 1
	if preprocessor == PreprocessorSass {
		ext = "{scss,sass}"
		importLoaders = 2
	}

	pred := Predicate{Patterns: []string{"**/*.module." + ext}}
	if !scoped {
		pred = Predicate{
			Patterns: []string{"**/*." + ext},
			Exclude:  []string{"**/*.module." + ext},
		}
	}

	opts := &StyleOptions{
		Delivery:      DeliveryInject,
		Scoped:        scoped,
		Preprocessor:  preprocessor,
		ImportLoaders: importLoaders,
		SourceMaps:    f.Production && f.SourceMaps,
		SideEffects:   !scoped,
	}
	if f.ExtractStyles {
		opts.Delivery = DeliveryExtract
		if f.RelativeAssets {
			opts.PublicPath = relativeStylePath
		}
	}

	return Rule{
		Name:      name,
		Predicate: pred,
		Strategy:  types.StrategyExtractStyles,
		Output:    names.Style,
		Style:     opts,
	}
}

func fileRule(names naming.Names) Rule {
	return Rule{
		Name: RuleFile,
		Predicate: Predicate{
			Patterns: []string{"**"},
			Exclude: []string{
				"**/*.{js,mjs,jsx,ts,tsx}",
				"**/*.html",
				"**/*.json",
			},
		},
		Strategy: types.StrategyCopyVerbatim,
		Output:   names.Media,
	}
}
