package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/rules"
	"github.com/arthur-debert/buildplan/pkg/ui"
	"github.com/arthur-debert/buildplan/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
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

			pre := bc.Pipeline().PreRules()
			rs := bc.Pipeline().Rules()
			if p.Format().Structured() {
				return p.Data(map[string]interface{}{"preRules": pre, "rules": rs})
			}
			rows := append(preRuleRows(p, pre), ruleRows(p, rs)...)
			return p.Table([]string{"#", "Rule", "Strategy", "Matches", "Output", "Options"}, rows)
		},
	}
}

// preRuleRows lists the stages run before dispatch; they have no strategy
// or output of their own
func preRuleRows(p *ui.Printer, pre []rules.PreRule) [][]string {
	rows := make([][]string, 0, len(pre))
	for _, r := range pre {
		rows = append(rows, []string{
			"pre",
			p.Style(styles.Rule, r.Name),
			r.Loader,
			strings.Join(r.Predicate.Patterns, " "),
			"",
			"only below " + strings.Join(r.Predicate.Include, " "),
		})
	}
	return rows
}

func ruleRows(p *ui.Printer, rs []rules.Rule) [][]string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			strconv.Itoa(r.Order),
			p.Style(styles.Rule, r.Name),
			p.Style(r.Strategy.String(), r.Strategy.String()),
			strings.Join(r.Predicate.Patterns, " "),
			r.Output.String(),
			ruleOptions(r),
		})
	}
	return rows
}

// ruleOptions summarises the option block of a rule
func ruleOptions(r rules.Rule) string {
	var parts []string
	if r.Inline != nil {
		parts = append(parts, fmt.Sprintf("inline below %d bytes", r.Inline.Limit))
	}
	if c := r.Compile; c != nil {
		parts = append(parts, string(c.Scope))
		if c.Compact {
			parts = append(parts, "compact")
		}
		if c.SourceMaps {
			parts = append(parts, "source maps")
		}
	}
	if s := r.Style; s != nil {
		parts = append(parts, string(s.Delivery))
		if s.Scoped {
			parts = append(parts, "scoped")
		}
		if s.Preprocessor != "" {
			parts = append(parts, s.Preprocessor)
		}
	}
	if len(r.Predicate.Exclude) > 0 {
		parts = append(parts, "excludes "+strings.Join(r.Predicate.Exclude, " "))
	}
	return strings.Join(parts, ", ")
}
