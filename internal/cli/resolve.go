package cli

import (
	"strconv"

	"github.com/arthur-debert/buildplan/pkg/resolver"
	"github.com/spf13/cobra"
)

type resolution struct {
	Stem      string `json:"stem" yaml:"stem" toml:"stem"`
	Path      string `json:"path" yaml:"path" toml:"path"`
	Extension string `json:"extension" yaml:"extension" toml:"extension"`
	Found     bool   `json:"found" yaml:"found" toml:"found"`
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <stem>...",
		Short:   MsgResolveShort,
		Example: "  buildplan resolve src/index src/setupTests",
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

			var out []resolution
			for _, stem := range args {
				base := projectPath(bc.Paths.AppDir, stem)
				r := resolver.Resolve(opts.fileSystem(), base, bc.Paths.Extensions)
				out = append(out, resolution{
					Stem:      stem,
					Path:      r.Path,
					Extension: r.Extension,
					Found:     r.Found,
				})
			}

			if p.Format().Structured() {
				return p.Data(map[string][]resolution{"resolved": out})
			}
			rows := make([][]string, 0, len(out))
			for _, r := range out {
				rows = append(rows, []string{r.Stem, bc.Paths.Rel(r.Path), strconv.FormatBool(r.Found)})
			}
			return p.Table([]string{"Stem", "Path", "Found"}, rows)
		},
	}
}
