// Package cli wires the buildplan commands.
package cli

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/buildplan/internal/version"
	"github.com/arthur-debert/buildplan/pkg/buildconfig"
	"github.com/arthur-debert/buildplan/pkg/cobrax/topics"
	"github.com/arthur-debert/buildplan/pkg/config"
	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/arthur-debert/buildplan/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the persistent flags
type options struct {
	verbosity  int
	root       string
	mode       string
	format     string
	configFile string

	fs  types.FS
	env environ.Environ
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "buildplan",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.root, "root", ".", MsgFlagRoot)
	flags.StringVarP(&opts.mode, "mode", "m", string(types.ModeProduction), MsgFlagMode)
	flags.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.ModeDevelopment), string(types.ModeProduction)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newEsbuildCmd(opts))
	rootCmd.AddCommand(newStubCmd(opts))
	rootCmd.AddCommand(newIdentCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	helpFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		styled := ui.Resolve(ui.FormatAuto, rootCmd.OutOrStdout()) == ui.FormatTerminal
		topicOpts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewMarkdownRenderer(styled),
		}
		if err := topics.InitializeWithOptions(rootCmd, helpFS, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func (o *options) fileSystem() types.FS {
	if o.fs == nil {
		o.fs = filesystem.NewOS()
	}
	return o.fs
}

func (o *options) processEnv() environ.Environ {
	if o.env == nil {
		o.env = environ.Capture()
	}
	return o.env
}

func (o *options) printer(cmd *cobra.Command) (*ui.Printer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewPrinter(format, cmd.OutOrStdout()), nil
}

// absRoot is the project root as given, made absolute
func (o *options) absRoot() (string, error) {
	return filepath.Abs(o.root)
}

// toolConfig loads buildplan's own settings from --config or the project
// root
func (o *options) toolConfig() (*config.Config, error) {
	if o.configFile != "" {
		return config.LoadFile(o.configFile, o.processEnv())
	}
	root, err := o.absRoot()
	if err != nil {
		return nil, err
	}
	return config.Load(o.fileSystem(), root, o.processEnv())
}

// buildConfig resolves the configuration for the selected mode and root
func (o *options) buildConfig() (*buildconfig.BuildConfig, error) {
	mode, err := types.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}
	root, err := o.absRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := o.toolConfig()
	if err != nil {
		return nil, err
	}

	return buildconfig.Build(buildconfig.Options{
		Mode:    mode,
		Root:    root,
		FS:      o.fileSystem(),
		Environ: o.processEnv(),
		Config:  cfg,
	})
}

// projectPath resolves a command argument against appDir, the project root
// with symlinks resolved. Absolute arguments are kept.
func projectPath(appDir, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(appDir, filepath.FromSlash(arg))
}
