package rules

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// Pipeline is an ordered, immutable rule list. It is safe for concurrent use.
type Pipeline struct {
	mode   types.Mode
	appDir string
	pre    []PreRule
	rules  []Rule
}

// Mode returns the mode the pipeline was composed for
func (p *Pipeline) Mode() types.Mode {
	return p.mode
}

// Len returns the number of rules
func (p *Pipeline) Len() int {
	return len(p.rules)
}

// Rules returns a copy of the rules in evaluation order
func (p *Pipeline) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	for i, r := range p.rules {
		out[i] = r.clone()
	}
	return out
}

// PreRules returns a copy of the rules run before the pipeline, in order
func (p *Pipeline) PreRules() []PreRule {
	out := make([]PreRule, len(p.pre))
	for i, r := range p.pre {
		out[i] = r.clone()
	}
	return out
}

// Rule returns the rule called name
func (p *Pipeline) Rule(name string) (Rule, bool) {
	for _, r := range p.rules {
		if r.Name == name {
			return r.clone(), true
		}
	}
	return Rule{}, false
}

// Validate checks every predicate and output template
func (p *Pipeline) Validate() error {
	seen := make(map[string]bool, len(p.rules)+len(p.pre))
	for _, r := range p.pre {
		if seen[r.Name] {
			return errors.Newf(errors.ErrInvalidInput, "duplicate rule %q", r.Name)
		}
		seen[r.Name] = true
		if err := r.Predicate.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidPattern, "rule %s", r.Name)
		}
	}
	for _, r := range p.rules {
		if seen[r.Name] {
			return errors.Newf(errors.ErrInvalidInput, "duplicate rule %q", r.Name)
		}
		seen[r.Name] = true

		if err := r.Predicate.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidPattern, "rule %s", r.Name)
		}
		if err := r.Output.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidTemplate, "rule %s", r.Name)
		}
	}
	return nil
}

// Match returns the first rule whose predicate accepts path. Relative paths
// are taken relative to the app directory.
func (p *Pipeline) Match(path string) (Rule, bool) {
	abs := p.absolute(path)
	for _, r := range p.rules {
		if r.Predicate.Matches(abs) {
			return r.clone(), true
		}
	}
	return Rule{}, false
}

// Classify decides how asset is processed and what it is called in the
// output. Files no rule accepts are reported with Handled == false.
//
// Output is only set for files written under a name of their own. It stays
// empty for inlined assets, for compiled sources (they end up in a chunk the
// bundler names) and for hashed names when asset.Hash is empty.
func (p *Pipeline) Classify(asset types.Asset) Decision {
	rule, ok := p.Match(asset.Path)
	if !ok {
		return Decision{
			Path:   asset.Path,
			Reason: "no rule matched, left to the bundler",
		}
	}

	d := Decision{
		Path:     asset.Path,
		Handled:  true,
		Rule:     rule.Name,
		Strategy: rule.strategyFor(asset.Size),
	}

	switch {
	case d.Strategy == types.StrategyInlineEncode:
		d.MediaType = MediaType(asset.Path)
		d.Reason = fmt.Sprintf("%d bytes is below the %d byte inline limit", asset.Size, rule.Inline.Limit)
		return d
	case rule.Inline != nil:
		d.Reason = fmt.Sprintf("%d bytes reaches the %d byte inline limit", asset.Size, rule.Inline.Limit)
	case rule.Style != nil:
		d.Reason = fmt.Sprintf("%s style sheet, %s", scopeLabel(rule.Style.Scoped), rule.Style.Delivery)
	case rule.Compile != nil:
		d.Reason = fmt.Sprintf("%s source, bundled into a chunk", rule.Compile.Scope)
	default:
		d.Reason = "copied as-is"
	}

	if rule.namesFile(d.Strategy) {
		if rule.Output.HasHash() && asset.Hash == "" {
			d.Reason += "; output name needs the content hash"
			return d
		}
		d.Output = rule.Output.RenderPath(asset.Path, asset.Hash)
	}
	return d
}

// strategyFor applies the inline threshold to a file of size bytes
func (r Rule) strategyFor(size int64) types.Strategy {
	if r.Inline != nil && size < r.Inline.Limit {
		return types.StrategyInlineEncode
	}
	return r.Strategy
}

// namesFile reports whether a file handled with strategy gets the rule's
// output name
func (r Rule) namesFile(strategy types.Strategy) bool {
	return strategy.WritesFile() && r.Output != ""
}

func (p *Pipeline) absolute(path string) string {
	if filepath.IsAbs(path) || p.appDir == "" {
		return path
	}
	return filepath.Join(p.appDir, path)
}

func scopeLabel(scoped bool) string {
	if scoped {
		return "scoped"
	}
	return "global"
}

func (r Rule) clone() Rule {
	out := r
	out.Predicate = r.Predicate.clone()
	if r.Inline != nil {
		v := *r.Inline
		out.Inline = &v
	}
	if r.Compile != nil {
		v := *r.Compile
		v.Plugins = clonePlugins(r.Compile.Plugins)
		out.Compile = &v
	}
	if r.Style != nil {
		v := *r.Style
		out.Style = &v
	}
	return out
}

func (r PreRule) clone() PreRule {
	out := r
	out.Predicate = r.Predicate.clone()
	if r.Options != nil {
		out.Options = make(map[string]string, len(r.Options))
		for k, v := range r.Options {
			out.Options[k] = v
		}
	}
	return out
}

func (p Predicate) clone() Predicate {
	return Predicate{
		Patterns: cloneStrings(p.Patterns),
		Include:  cloneStrings(p.Include),
		Exclude:  cloneStrings(p.Exclude),
	}
}

func clonePlugins(in []CompilerPlugin) []CompilerPlugin {
	if in == nil {
		return nil
	}
	out := make([]CompilerPlugin, len(in))
	for i, pl := range in {
		out[i] = CompilerPlugin{Name: pl.Name}
		if pl.Options != nil {
			out[i].Options = cloneValue(pl.Options).(map[string]interface{})
		}
	}
	return out
}

// cloneValue deep-copies the maps and slices of plugin options
func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return cloneStrings(v)
	default:
		return v
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
