package cli

import (
	"io"

	"github.com/arthur-debert/buildplan/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}
			if defaults {
				_, err := io.WriteString(p.Writer(), config.DefaultsContent())
				return err
			}

			cfg, err := opts.toolConfig()
			if err != nil {
				return err
			}
			return p.Data(cfg)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
