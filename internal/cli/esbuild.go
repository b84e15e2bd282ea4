package cli

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/buildplan/pkg/esbuild"
	"github.com/arthur-debert/buildplan/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newEsbuildCmd(opts *options) *cobra.Command {
	var run, write bool

	cmd := &cobra.Command{
		Use:     "esbuild",
		Short:   MsgEsbuildShort,
		Long:    MsgEsbuildLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := opts.buildConfig()
			if err != nil {
				return err
			}
			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}

			tr := esbuild.Translate(bc)
			if !run {
				if err := p.Data(tr.View()); err != nil || p.Format().Structured() {
					return err
				}
				p.Line(styles.Header, MsgEsbuildNotes)
				for _, n := range tr.Notes {
					p.Line(styles.Muted, fmt.Sprintf("  %s: %s", n.Subject, n.Message))
				}
				return nil
			}

			report, err := esbuild.Run(tr, write)
			if err != nil {
				return err
			}
			if p.Format().Structured() {
				return p.Data(report)
			}

			rows := make([][]string, 0, len(report.Files))
			for _, f := range report.Files {
				rows = append(rows, []string{f.Path, strconv.Itoa(f.Size)})
			}
			if err := p.Table([]string{"File", "Bytes"}, rows); err != nil {
				return err
			}
			for _, w := range report.Warnings {
				p.Line(styles.Warning, w)
			}
			p.Line(styles.Header, fmt.Sprintf(MsgBuildFinished, len(report.Files), report.TotalSize()))
			if write {
				p.Line(styles.Muted, fmt.Sprintf(MsgFilesWritten, bc.Paths.Rel(bc.Paths.Build)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, MsgFlagRun)
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}
