package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.Paths.Src)
	assert.Equal(t, "public/index.html", cfg.Paths.HTML)
	assert.Equal(t, "src/index", cfg.Paths.Entry)
	assert.Equal(t, "src/setupTests", cfg.Paths.TestsSetup)
	assert.Equal(t, ".env", cfg.Paths.DotEnv)
	assert.Equal(t, int64(10000), cfg.Assets.InlineLimit)
	assert.Equal(t, 8, cfg.Output.HashLength)
	assert.Equal(t, "REACT_APP_", cfg.ClientEnv.Prefix)

	ext, err := cfg.Extensions()
	require.NoError(t, err)
	assert.Equal(t, 11, ext.Len())
	assert.Equal(t, "web.mjs", ext.List()[0])
}

func TestLoad_NoProjectFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/app", 0755))

	cfg, err := Load(fsys, "/app", nil)
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoad_ProjectFileOverrides(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/app", 0755))
	require.NoError(t, fsys.WriteFile("/app/buildplan.toml", []byte(`
[paths]
src = "app"
build = "dist"

[assets]
inline_limit = 4096
`), 0644))

	cfg, err := Load(fsys, "/app", nil)
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Paths.Src)
	assert.Equal(t, "dist", cfg.Paths.Build)
	assert.Equal(t, "public", cfg.Paths.Public, "untouched keys keep their default")
	assert.Equal(t, int64(4096), cfg.Assets.InlineLimit)
	assert.Equal(t, 8, cfg.Output.HashLength)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/app", 0755))
	require.NoError(t, fsys.WriteFile("/app/buildplan.toml", []byte("[assets]\ninline_limit = 4096\n"), 0644))

	env := environ.FromList([]string{
		"BUILDPLAN_ASSETS__INLINE_LIMIT=2048",
		"BUILDPLAN_OUTPUT__HASH_LENGTH=10",
		"BUILDPLAN_CLIENT_ENV__PREFIX=VITE_",
		"BUILDPLAN_RESOLVE__EXTENSIONS=ts, js",
		"BUILDPLAN_IGNORED=1",
		"UNRELATED=1",
	})

	cfg, err := Load(fsys, "/app", env)
	require.NoError(t, err)

	assert.Equal(t, int64(2048), cfg.Assets.InlineLimit)
	assert.Equal(t, 10, cfg.Output.HashLength)
	assert.Equal(t, "VITE_", cfg.ClientEnv.Prefix)
	assert.Equal(t, []string{"ts", "js"}, cfg.Resolve.Extensions)
}

func TestLoad_InvalidProjectFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/app", 0755))
	require.NoError(t, fsys.WriteFile("/app/buildplan.toml", []byte("[assets\n"), 0644))

	_, err := Load(fsys, "/app", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  []string
	}{
		{"zero hash length", []string{"BUILDPLAN_OUTPUT__HASH_LENGTH=0"}},
		{"hash length too long", []string{"BUILDPLAN_OUTPUT__HASH_LENGTH=65"}},
		{"negative inline limit", []string{"BUILDPLAN_ASSETS__INLINE_LIMIT=-1"}},
		{"empty prefix", []string{"BUILDPLAN_CLIENT_ENV__PREFIX="}},
		{"empty path", []string{"BUILDPLAN_PATHS__SRC="}},
		{"duplicate extension", []string{"BUILDPLAN_RESOLVE__EXTENSIONS=js,js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filesystem.NewMemory(), "/app", environ.FromList(tt.env))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nhash_length = 12\n"), 0644))

	cfg, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Output.HashLength)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestEnvOverrides(t *testing.T) {
	got := envOverrides(environ.FromList([]string{
		"BUILDPLAN_PATHS__TESTS_SETUP=src/setup",
		"BUILDPLAN_VERBOSE=1",
		"HOME=/root",
	}))
	assert.Equal(t, map[string]interface{}{"paths.tests_setup": "src/setup"}, got)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "inline_limit = 10000")
}
