package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Resolve bundler build configurations for React applications"
	MsgInspectShort    = "Print the resolved build configuration"
	MsgResolveShort    = "Resolve module stems against the extension list"
	MsgExplainShort    = "Explain how the asset pipeline treats files"
	MsgRulesShort      = "Print the ordered asset pipeline"
	MsgEsbuildShort    = "Translate the configuration to esbuild options"
	MsgStubShort       = "Print the test-time stub module for an asset"
	MsgIdentShort      = "Print scoped class names for a CSS module"
	MsgConfigShort     = "Print buildplan's own settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Project root (the directory holding package.json)"
	MsgFlagMode    = "Build mode: development or production"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagConfig  = "Read tool settings from this file instead of <root>/buildplan.toml"
	MsgFlagRun     = "Run the build instead of printing the options"
	MsgFlagWrite   = "Write output files to disk (with --run)"
	MsgFlagManDir  = "Directory to write man pages to"

	MsgFlagDefaults = "Print the built-in defaults as a buildplan.toml template"

	MsgEsbuildNotes  = "Not carried over:"
	MsgBuildFinished = "Built %d file(s), %d bytes"
	MsgFilesWritten  = "Files written to %s"
	MsgExplainTitle  = "# Asset pipeline (%s)\n\n"
	MsgUnhandled     = "not handled by the pipeline; the bundler loads it natively"
	MsgVersionFormat = "buildplan version %s\n  commit: %s\n  built:  %s\n"
)

// Multi-line messages
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/explain-long.txt
	msgExplainLongRaw string
	MsgExplainLong    = strings.TrimSpace(msgExplainLongRaw)

	//go:embed msgs/esbuild-long.txt
	msgEsbuildLongRaw string
	MsgEsbuildLong    = strings.TrimSpace(msgEsbuildLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
