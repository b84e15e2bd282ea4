package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func project(t *testing.T) *testutil.Project {
	t.Helper()
	return testutil.NewProject(t, testutil.EnvIsolated).
		WithPackageJSON(`{"name": "shop", "version": "1.0.0", "homepage": "https://example.com/shop"}`).
		WithFile("src/index.js", "import logo from './logo.png';\nconsole.log(logo);\n").
		WithSizedFile("src/logo.png", 512).
		WithSizedFile("src/hero.jpg", 20000).
		WithFile("src/App.module.css", ".primary { color: red; }\n")
}

func decode(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)
	return doc
}

func TestInspect_JSON(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "inspect")
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, "production", doc["mode"])
	output := doc["output"].(map[string]interface{})
	assert.Equal(t, "/shop/", output["publicPath"])
}

func TestInspect_Development(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--mode", "dev", "--format", "json", "inspect")
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, "development", doc["mode"])
	assert.Equal(t, "cheap-module-source-map", doc["devtool"])
}

func TestInspect_YAMLAndTOML(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "yaml", "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: production")

	out, err = execute(t, "--root", proj.Root, "--format", "toml", "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "mode = ")
}

func TestInspect_MissingPackage(t *testing.T) {
	proj := testutil.NewProject(t, testutil.EnvIsolated).WithoutPackageJSON()

	_, err := execute(t, "--root", proj.Root, "inspect")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageMissing))
}

func TestInvalidMode(t *testing.T) {
	proj := project(t)

	_, err := execute(t, "--root", proj.Root, "--mode", "staging", "inspect")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
}

func TestInvalidFormat(t *testing.T) {
	proj := project(t)

	_, err := execute(t, "--root", proj.Root, "--format", "xml", "inspect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigFlag(t *testing.T) {
	proj := project(t).WithFile("custom.toml", "[assets]\ninline_limit = 100\n")

	out, err := execute(t, "--root", proj.Root, "--config", proj.Path("custom.toml"), "--format", "json", "explain", "src/logo.png")
	require.NoError(t, err)
	assert.Contains(t, out, `"strategy": "copy"`)
}

func TestResolve(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "resolve", "src/index", "src/setupTests")
	require.NoError(t, err)

	resolved := decode(t, out)["resolved"].([]interface{})
	require.Len(t, resolved, 2)

	index := resolved[0].(map[string]interface{})
	assert.Equal(t, proj.Path("src/index.js"), index["path"])
	assert.Equal(t, true, index["found"])

	setup := resolved[1].(map[string]interface{})
	assert.Equal(t, proj.Path("src/setupTests.js"), setup["path"])
	assert.Equal(t, false, setup["found"])
}

func TestResolve_Table(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "text", "resolve", "src/index")
	require.NoError(t, err)
	assert.Contains(t, out, "src/index.js")
	assert.Contains(t, out, "true")
}

func TestExplain_JSON(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "explain", "src/logo.png", "src/hero.jpg", "package.json")
	require.NoError(t, err)

	decisions := decode(t, out)["decisions"].([]interface{})
	require.Len(t, decisions, 3)

	logo := decisions[0].(map[string]interface{})
	assert.Equal(t, "media", logo["rule"])
	assert.Equal(t, "inline", logo["strategy"])
	assert.Equal(t, "image/png", logo["mediaType"])

	hero := decisions[1].(map[string]interface{})
	assert.Equal(t, "copy", hero["strategy"])
	assert.Regexp(t, `^static/media/hero\.[0-9a-f]{8}\.jpg$`, hero["output"])

	pkg := decisions[2].(map[string]interface{})
	assert.Equal(t, false, pkg["handled"])
}

func TestExplain_Directory(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "explain", "src")
	require.NoError(t, err)

	decisions := decode(t, out)["decisions"].([]interface{})
	assert.Len(t, decisions, 4)
}

func TestExplain_Markdown(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "text", "explain", "src/App.module.css")
	require.NoError(t, err)
	assert.Contains(t, out, "# Asset pipeline (production)")
	assert.Contains(t, out, "## src/App.module.css")
	assert.Contains(t, out, "- **Rule:** css-module")
}

func TestExplain_MissingFile(t *testing.T) {
	proj := project(t)

	_, err := execute(t, "--root", proj.Root, "explain", "src/nope.png")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRules(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "text", "rules")
	require.NoError(t, err)
	for _, name := range []string{"media", "app-script", "dependency-script", "css-module", "sass", "file"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "inline below 10000 bytes")
	assert.Contains(t, out, "eslint-loader")
}

func TestRules_JSON(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "rules")
	require.NoError(t, err)
	doc := decode(t, out)
	assert.Len(t, doc["rules"], 8)
	assert.Len(t, doc["preRules"], 1)
}

func TestEsbuild_View(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "esbuild")
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, "static/js/[name].[hash]", doc["entryNames"])
	loaders := doc["loaders"].(map[string]interface{})
	assert.Equal(t, "file", loaders[".png"])
}

func TestEsbuild_Run(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "text", "esbuild", "--run")
	require.NoError(t, err)
	assert.Contains(t, out, "build/static/js/")
	assert.Contains(t, out, "Built ")
}

func TestStub(t *testing.T) {
	out, err := execute(t, "--format", "text", "stub", "src/logo.svg")
	require.NoError(t, err)
	assert.Contains(t, out, `default: "logo.svg"`)
	assert.Contains(t, out, "ReactComponent")

	out, err = execute(t, "--format", "text", "stub", "src/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "module.exports = \"logo.png\";\n", out)
}

func TestIdent(t *testing.T) {
	proj := project(t)

	out, err := execute(t, "--root", proj.Root, "--format", "json", "ident", "src/App.module.css", "primary")
	require.NoError(t, err)

	ids := decode(t, out)["identifiers"].([]interface{})
	require.Len(t, ids, 1)
	id := ids[0].(map[string]interface{})
	assert.Equal(t, "primary", id["class"])
	assert.Regexp(t, `^App_primary__[A-Za-z0-9_-]{5}$`, id["ident"])
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "buildplan version dev")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "buildplan")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline")
	assert.Contains(t, out, "--mode")

	out, err = execute(t, "help", "pipeline")
	require.NoError(t, err)
	assert.Contains(t, out, "first rule")
}

func TestConfig(t *testing.T) {
	proj := project(t).WithFile("buildplan.toml", "[output]\nhash_length = 12\n")

	out, err := execute(t, "--root", proj.Root, "--format", "json", "config")
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, float64(12), doc["output"].(map[string]interface{})["hashLength"])
	assert.Equal(t, float64(10000), doc["assets"].(map[string]interface{})["inlineLimit"])
}

func TestConfig_Defaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "[client_env]")
	assert.Contains(t, out, `prefix = "REACT_APP_"`)
}
