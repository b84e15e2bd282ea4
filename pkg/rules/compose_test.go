package rules

import (
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/flags"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppDir = "/app"
	testSrcDir = "/app/src"
)

func compose(t *testing.T, mode types.Mode, in flags.Inputs) *Pipeline {
	t.Helper()
	if in.ServedPath == "" {
		in.ServedPath = "/"
	}
	p, err := Compose(mode, flags.Resolve(mode, in), DefaultOptions(testAppDir, testSrcDir))
	require.NoError(t, err)
	return p
}

func ruleNames(p *Pipeline) []string {
	var names []string
	for _, r := range p.Rules() {
		names = append(names, r.Name)
	}
	return names
}

func TestCompose_Order(t *testing.T) {
	p := compose(t, types.ModeProduction, flags.Inputs{})

	assert.Equal(t, []string{
		RuleMedia, RuleAppScript, RuleDependencyScript,
		RuleCSS, RuleCSSModule, RuleSass, RuleSassModule, RuleFile,
	}, ruleNames(p))
	for i, r := range p.Rules() {
		assert.Equal(t, i+1, r.Order)
	}
	assert.Equal(t, types.ModeProduction, p.Mode())
}

func TestCompose_Idempotent(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeDevelopment, types.ModeProduction} {
		first := compose(t, mode, flags.Inputs{TypeScript: true})
		second := compose(t, mode, flags.Inputs{TypeScript: true})
		assert.Equal(t, first.Rules(), second.Rules(), mode)
	}
}

func TestCompose_RulesAreCopies(t *testing.T) {
	p := compose(t, types.ModeProduction, flags.Inputs{})

	rules := p.Rules()
	rules[0].Inline.Limit = 1
	rules[0].Predicate.Patterns[0] = "**/*.never"

	media, ok := p.Rule(RuleMedia)
	require.True(t, ok)
	assert.Equal(t, int64(DefaultInlineLimit), media.Inline.Limit)
	assert.Equal(t, "**/*.{bmp,gif,jpg,jpeg,png}", media.Predicate.Patterns[0])
}

func TestCompose_Templates(t *testing.T) {
	t.Run("development never hashes", func(t *testing.T) {
		p := compose(t, types.ModeDevelopment, flags.Inputs{})
		for _, r := range p.Rules() {
			assert.False(t, r.Output.HasHash(), "%s: %s", r.Name, r.Output)
		}
	})

	t.Run("production hashes everything written to disk", func(t *testing.T) {
		p := compose(t, types.ModeProduction, flags.Inputs{})
		for _, r := range p.Rules() {
			if r.Strategy.WritesFile() {
				assert.True(t, r.Output.HasHash(), "%s: %s", r.Name, r.Output)
			}
		}
	})

	t.Run("hash length is configurable", func(t *testing.T) {
		opts := DefaultOptions(testAppDir, testSrcDir)
		opts.HashLength = 12
		p, err := Compose(types.ModeProduction, flags.Resolve(types.ModeProduction, flags.Inputs{ServedPath: "/"}), opts)
		require.NoError(t, err)

		media, _ := p.Rule(RuleMedia)
		assert.Equal(t, "static/media/[name].[hash:12].[ext]", media.Output.String())
	})
}

func TestCompose_ScriptRules(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		p := compose(t, types.ModeProduction, flags.Inputs{})

		app, _ := p.Rule(RuleAppScript)
		assert.Equal(t, []string{testSrcDir}, app.Predicate.Include)
		assert.Equal(t, &CompileOptions{
			Scope:            ScopeApplication,
			Preset:           PresetApplication,
			Plugins: []CompilerPlugin{{
				Name: PluginNamedAssets,
				Options: map[string]interface{}{
					"loaderMap": map[string]interface{}{
						"svg": map[string]interface{}{"ReactComponent": SVGComponentLoader},
					},
				},
			}},
			ProjectConfig:    true,
			CacheDirectory:   true,
			CacheCompression: true,
			Compact:          true,
			SourceMaps:       true,
		}, app.Compile)

		dep, _ := p.Rule(RuleDependencyScript)
		assert.Equal(t, &CompileOptions{
			Scope:            ScopeDependency,
			Preset:           PresetDependencies,
			CacheDirectory:   true,
			CacheCompression: true,
			Helpers:          true,
		}, dep.Compile)
	})

	t.Run("development", func(t *testing.T) {
		p := compose(t, types.ModeDevelopment, flags.Inputs{})

		app, _ := p.Rule(RuleAppScript)
		assert.True(t, app.Compile.CacheDirectory)
		assert.False(t, app.Compile.CacheCompression)
		assert.False(t, app.Compile.Compact)

		dep, _ := p.Rule(RuleDependencyScript)
		assert.False(t, dep.Compile.Compact)
		assert.False(t, dep.Compile.SourceMaps)
		assert.False(t, dep.Compile.ProjectConfig)
	})

	t.Run("source maps follow GENERATE_SOURCEMAP", func(t *testing.T) {
		env := map[string]string{"GENERATE_SOURCEMAP": "false"}
		p := compose(t, types.ModeProduction, flags.Inputs{Env: env})

		app, _ := p.Rule(RuleAppScript)
		assert.False(t, app.Compile.SourceMaps)
		css, _ := p.Rule(RuleCSS)
		assert.False(t, css.Style.SourceMaps)
	})
}

func TestCompose_PluginOptionsAreCopied(t *testing.T) {
	p := compose(t, types.ModeProduction, flags.Inputs{})

	app, _ := p.Rule(RuleAppScript)
	loaderMap := app.Compile.Plugins[0].Options["loaderMap"].(map[string]interface{})
	loaderMap["svg"] = "changed"

	again, _ := p.Rule(RuleAppScript)
	svg := again.Compile.Plugins[0].Options["loaderMap"].(map[string]interface{})["svg"]
	assert.Equal(t, map[string]interface{}{"ReactComponent": SVGComponentLoader}, svg)
}

func TestCompose_LintStage(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeProduction, types.ModeDevelopment} {
		t.Run(mode.String(), func(t *testing.T) {
			p := compose(t, mode, flags.Inputs{TypeScript: true})

			pre := p.PreRules()
			require.Len(t, pre, 1)
			lint := pre[0]
			assert.Equal(t, RuleLint, lint.Name)
			assert.Equal(t, LoaderLint, lint.Loader)
			assert.Equal(t, []string{testSrcDir}, lint.Predicate.Include)
			assert.Equal(t, LintFormatter, lint.Options["formatter"])
			assert.Equal(t, LintEngine, lint.Options["eslintPath"])

			assert.True(t, lint.Predicate.Matches(testSrcDir+"/App.jsx"))
			assert.True(t, lint.Predicate.Matches(testSrcDir+"/util.mjs"))
			assert.False(t, lint.Predicate.Matches(testSrcDir+"/App.tsx"), "TypeScript is not linted")
			assert.False(t, lint.Predicate.Matches(testAppDir+"/node_modules/lib/index.js"))

			// the lint stage never takes part in dispatch
			assert.NotContains(t, ruleNames(p), RuleLint)
			r, ok := p.Match(testSrcDir + "/App.jsx")
			require.True(t, ok)
			assert.Equal(t, RuleAppScript, r.Name)
		})
	}
}

func TestCompose_StyleRules(t *testing.T) {
	t.Run("production extracts", func(t *testing.T) {
		p := compose(t, types.ModeProduction, flags.Inputs{})

		css, _ := p.Rule(RuleCSS)
		assert.Equal(t, &StyleOptions{
			Delivery:      DeliveryExtract,
			ImportLoaders: 1,
			SourceMaps:    true,
			SideEffects:   true,
		}, css.Style)

		sassModule, _ := p.Rule(RuleSassModule)
		assert.Equal(t, &StyleOptions{
			Delivery:      DeliveryExtract,
			Scoped:        true,
			Preprocessor:  PreprocessorSass,
			ImportLoaders: 2,
			SourceMaps:    true,
		}, sassModule.Style)
	})

	t.Run("development injects", func(t *testing.T) {
		p := compose(t, types.ModeDevelopment, flags.Inputs{})
		for _, name := range []string{RuleCSS, RuleCSSModule, RuleSass, RuleSassModule} {
			r, _ := p.Rule(name)
			assert.Equal(t, DeliveryInject, r.Style.Delivery, name)
			assert.False(t, r.Style.SourceMaps, name)
		}
	})

	t.Run("relative public path", func(t *testing.T) {
		p := compose(t, types.ModeProduction, flags.Inputs{ServedPath: "./"})
		css, _ := p.Rule(RuleCSS)
		assert.Equal(t, "../../", css.Style.PublicPath)

		p = compose(t, types.ModeProduction, flags.Inputs{ServedPath: "/shop/"})
		css, _ = p.Rule(RuleCSS)
		assert.Empty(t, css.Style.PublicPath)
	})
}

func TestCompose_Errors(t *testing.T) {
	t.Run("flags from another mode", func(t *testing.T) {
		f := flags.Resolve(types.ModeDevelopment, flags.Inputs{})
		_, err := Compose(types.ModeProduction, f, DefaultOptions(testAppDir, testSrcDir))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
	})

	t.Run("negative inline limit", func(t *testing.T) {
		opts := DefaultOptions(testAppDir, testSrcDir)
		opts.InlineLimit = -1
		_, err := Compose(types.ModeProduction, flags.Resolve(types.ModeProduction, flags.Inputs{}), opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("relative source root", func(t *testing.T) {
		_, err := Compose(types.ModeProduction, flags.Resolve(types.ModeProduction, flags.Inputs{}), DefaultOptions(".", "src"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	})
}
