package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/buildconfig"
	"github.com/arthur-debert/buildplan/pkg/rules"
	"github.com/spf13/cobra"
)

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "explain <file or directory>...",
		Short:   MsgExplainShort,
		Long:    MsgExplainLong,
		Example: "  buildplan explain src/logo.svg src/App.module.css\n  buildplan --mode development explain src",
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := opts.buildConfig()
			if err != nil {
				return err
			}
			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}

			decisions, err := classify(opts, bc, args)
			if err != nil {
				return err
			}
			if p.Format().Structured() {
				return p.Data(map[string][]rules.Decision{"decisions": decisions})
			}
			return p.Markdown(explainReport(bc, decisions))
		},
	}
}

func classify(opts *options, bc *buildconfig.BuildConfig, args []string) ([]rules.Decision, error) {
	scanner := rules.NewScanner(bc.Pipeline(), opts.fileSystem())

	var decisions []rules.Decision
	for _, arg := range args {
		path := projectPath(bc.Paths.AppDir, arg)
		if info, err := opts.fileSystem().Stat(path); err == nil && info.IsDir() {
			found, err := scanner.ScanDir(path)
			if err != nil {
				return nil, err
			}
			decisions = append(decisions, found...)
			continue
		}
		d, err := scanner.ClassifyFile(path)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, nil
}

func explainReport(bc *buildconfig.BuildConfig, decisions []rules.Decision) string {
	var b strings.Builder
	fmt.Fprintf(&b, MsgExplainTitle, bc.Mode)

	for _, d := range decisions {
		fmt.Fprintf(&b, "## %s\n\n", bc.Paths.Rel(d.Path))
		if !d.Handled {
			fmt.Fprintf(&b, "_%s_\n\n", MsgUnhandled)
			continue
		}
		fmt.Fprintf(&b, "- **Rule:** %s\n", d.Rule)
		fmt.Fprintf(&b, "- **Strategy:** %s\n", d.Strategy)
		if d.MediaType != "" {
			fmt.Fprintf(&b, "- **Media type:** %s\n", d.MediaType)
		}
		if d.Output != "" {
			fmt.Fprintf(&b, "- **Output:** `%s`\n", d.Output)
		}
		if d.Reason != "" {
			fmt.Fprintf(&b, "\n%s\n", d.Reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}
