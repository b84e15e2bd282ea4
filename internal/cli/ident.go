package cli

import (
	"github.com/arthur-debert/buildplan/pkg/cssmodules"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/spf13/cobra"
)

type identifier struct {
	Class string `json:"class" yaml:"class" toml:"class"`
	Ident string `json:"ident" yaml:"ident" toml:"ident"`
}

func newIdentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "ident <stylesheet> <class>...",
		Short:   MsgIdentShort,
		Example: "  buildplan ident src/Button.module.css primary disabled",
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.absRoot()
			if err != nil {
				return err
			}
			appDir, err := filesystem.RealPath(opts.fileSystem(), root)
			if err != nil {
				return err
			}
			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}

			sheet := projectPath(appDir, args[0])
			out := make([]identifier, 0, len(args)-1)
			rows := make([][]string, 0, len(args)-1)
			for _, class := range args[1:] {
				ident := cssmodules.LocalIdent(appDir, sheet, class)
				out = append(out, identifier{Class: class, Ident: ident})
				rows = append(rows, []string{class, ident})
			}

			if p.Format().Structured() {
				return p.Data(map[string][]identifier{"identifiers": out})
			}
			return p.Table([]string{"Class", "Identifier"}, rows)
		},
	}
}
