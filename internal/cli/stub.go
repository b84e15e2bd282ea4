package cli

import (
	"io"

	"github.com/arthur-debert/buildplan/pkg/assetstub"
	"github.com/spf13/cobra"
)

func newStubCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "stub <file>",
		Short:   MsgStubShort,
		Example: "  buildplan stub src/logo.svg",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stub, err := assetstub.Generate(args[0])
			if err != nil {
				return err
			}
			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}
			if p.Format().Structured() {
				return p.Data(stub)
			}
			_, err = io.WriteString(p.Writer(), stub.Source)
			return err
		},
	}
}
