package rules

import (
	"github.com/arthur-debert/buildplan/pkg/naming"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// Rule names, in pipeline order
const (
	RuleMedia            = "media"
	RuleAppScript        = "app-script"
	RuleDependencyScript = "dependency-script"
	RuleCSS              = "css"
	RuleCSSModule        = "css-module"
	RuleSass             = "sass"
	RuleSassModule       = "sass-module"
	RuleFile             = "file"
)

// Rule pairs a predicate with a strategy. A rule holds only plain values, so
// two compositions from the same inputs compare equal.
type Rule struct {
	Name      string          `json:"name" yaml:"name" toml:"name"`
	Order     int             `json:"order" yaml:"order" toml:"order"`
	Predicate Predicate       `json:"predicate" yaml:"predicate" toml:"predicate"`
	Strategy  types.Strategy  `json:"strategy" yaml:"strategy" toml:"strategy"`
	Output    naming.Template `json:"output" yaml:"output" toml:"output"`

	// Exactly one of the option blocks matching Strategy is set. Media
	// rules carry Inline even though their base strategy is CopyVerbatim.
	Inline  *InlineOptions  `json:"inline,omitempty" yaml:"inline,omitempty" toml:"inline,omitempty"`
	Compile *CompileOptions `json:"compile,omitempty" yaml:"compile,omitempty" toml:"compile,omitempty"`
	Style   *StyleOptions   `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// Predicate selects the files a rule applies to
type Predicate struct {
	// Patterns are doublestar globs; any match selects the file
	Patterns []string `json:"patterns" yaml:"patterns" toml:"patterns"`
	// Include restricts matches to files below one of these directories
	Include []string `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`
	// Exclude patterns reject a file even when a pattern matched
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

// InlineOptions control data-URI inlining
type InlineOptions struct {
	// Limit is the exclusive upper bound in bytes for inlining
	Limit int64 `json:"limit" yaml:"limit" toml:"limit"`
}

// CompileScope tells application sources from third-party code
type CompileScope string

const (
	ScopeApplication CompileScope = "application"
	ScopeDependency  CompileScope = "dependency"
)

// CompileOptions configure the source compiler
type CompileOptions struct {
	Scope CompileScope `json:"scope" yaml:"scope" toml:"scope"`
	// Preset is the compiler preset for the scope
	Preset string `json:"preset" yaml:"preset" toml:"preset"`
	// Plugins are extra compiler plugins, in order
	Plugins []CompilerPlugin `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	// ProjectConfig allows .babelrc and babel.config.js to apply
	ProjectConfig    bool `json:"projectConfig" yaml:"projectConfig" toml:"project_config"`
	CacheDirectory   bool `json:"cacheDirectory" yaml:"cacheDirectory" toml:"cache_directory"`
	CacheCompression bool `json:"cacheCompression" yaml:"cacheCompression" toml:"cache_compression"`
	Compact          bool `json:"compact" yaml:"compact" toml:"compact"`
	SourceMaps       bool `json:"sourceMaps" yaml:"sourceMaps" toml:"source_maps"`
	// Helpers injects runtime helpers instead of inlining them
	Helpers bool `json:"helpers" yaml:"helpers" toml:"helpers"`
}

// CompilerPlugin is a compiler plugin and the options passed to it
type CompilerPlugin struct {
	Name    string                 `json:"name" yaml:"name" toml:"name"`
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// PreRule runs a loader over the files it selects before the pipeline
// handles them. It does not take part in first-match dispatch.
type PreRule struct {
	Name      string            `json:"name" yaml:"name" toml:"name"`
	Predicate Predicate         `json:"predicate" yaml:"predicate" toml:"predicate"`
	Loader    string            `json:"loader" yaml:"loader" toml:"loader"`
	Options   map[string]string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// StyleDelivery is how a processed style sheet reaches the page
type StyleDelivery string

const (
	// DeliveryExtract writes a separate content-hashed file
	DeliveryExtract StyleDelivery = "extract"
	// DeliveryInject adds the style sheet at runtime
	DeliveryInject StyleDelivery = "inject"
)

// StyleOptions configure style sheet processing
type StyleOptions struct {
	Delivery StyleDelivery `json:"delivery" yaml:"delivery" toml:"delivery"`
	// Scoped renames classes per file (CSS modules)
	Scoped bool `json:"scoped" yaml:"scoped" toml:"scoped"`
	// Preprocessor is "" for plain CSS or "sass"
	Preprocessor string `json:"preprocessor,omitempty" yaml:"preprocessor,omitempty" toml:"preprocessor,omitempty"`
	// ImportLoaders is how many processors run on @import-ed files
	ImportLoaders int  `json:"importLoaders" yaml:"importLoaders" toml:"import_loaders"`
	SourceMaps    bool `json:"sourceMaps" yaml:"sourceMaps" toml:"source_maps"`
	// SideEffects marks global style sheets as not tree-shakeable
	SideEffects bool `json:"sideEffects" yaml:"sideEffects" toml:"side_effects"`
	// PublicPath overrides the public path for extracted files, used when
	// assets are referenced relatively
	PublicPath string `json:"publicPath,omitempty" yaml:"publicPath,omitempty" toml:"public_path,omitempty"`
}

// Decision is the outcome of classifying one asset
type Decision struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	// Handled is false when no rule matched and the bundler handles the
	// file natively
	Handled bool `json:"handled" yaml:"handled" toml:"handled"`
	// Rule is the matched rule name
	Rule     string         `json:"rule,omitempty" yaml:"rule,omitempty" toml:"rule,omitempty"`
	Strategy types.Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty" toml:"strategy,omitempty"`
	// Output is the rendered output name; empty for inlined assets and
	// compiled sources
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	// MediaType is set for inline decisions
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty" toml:"media_type,omitempty"`
	// Reason is a short human explanation of the decision
	Reason string `json:"reason" yaml:"reason" toml:"reason"`
}
