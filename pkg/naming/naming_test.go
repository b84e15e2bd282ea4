package naming

import (
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const hash = "0123456789abcdef"

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		source   string
		want     string
	}{
		{"media", "static/media/[name].[hash:8].[ext]", "/app/src/logo.png", "static/media/logo.01234567.png"},
		{"media_dev", "static/media/[name].[ext]", "/app/src/logo.png", "static/media/logo.png"},
		{"css_contenthash", "static/css/[name].[contenthash:8].css", "main", "static/css/main.01234567.css"},
		{"chunk", "static/js/[name].[chunkhash:8].chunk.js", "vendors", "static/js/vendors.01234567.chunk.js"},
		{"full_hash", "[name].[hash].[ext]", "a/b.svg", "b.0123456789abcdef.svg"},
		{"length_beyond_hash", "[name].[hash:64]", "a.txt", "a.0123456789abcdef"},
		{"folder", "[folder]_[name]", "/app/src/Button/index.module.css", "Button_index.module"},
		{"unknown_kept", "[name].[query]", "x.js", "x.[query]"},
		{"windows_separators", "[folder]/[name].[ext]", `C:\app\src\logo.png`, "src/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.template.RenderPath(tt.source, hash))
		})
	}
}

func TestRenderWithoutHash(t *testing.T) {
	got := Template("static/media/[name].[hash:8].[ext]").RenderPath("logo.png", "")
	assert.Equal(t, "static/media/logo..png", got)
}

func TestHasHash(t *testing.T) {
	assert.True(t, Template("static/media/[name].[hash:8].[ext]").HasHash())
	assert.True(t, Template("static/css/[name].[contenthash:8].css").HasHash())
	assert.True(t, Template("static/js/[name].[chunkhash:8].js").HasHash())
	assert.False(t, Template("static/js/bundle.js").HasHash())
	assert.False(t, Template("static/media/[name].[ext]").HasHash())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Template("static/media/[name].[hash:8].[ext]").Validate())

	err := Template("").Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))

	err = Template("[name:4]").Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))

	err = Template("[hash:0]").Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))
}

func TestBuilders(t *testing.T) {
	assert.Equal(t, Template("static/js/[name].[chunkhash:8].chunk.js"), Hashed("static/js", "chunkhash", 8, ".chunk.js"))
	assert.Equal(t, Template("static/js/[name].chunk.js"), Plain("static/js", ".chunk.js"))
}

func TestVarsFor(t *testing.T) {
	v := VarsFor("/app/src/components/Button.module.css", "abc")
	assert.Equal(t, Vars{Name: "Button.module", Ext: "css", Folder: "components", Hash: "abc"}, v)
}

func TestNamesFor(t *testing.T) {
	prod := NamesFor(true, 8)
	assert.Equal(t, Template("static/media/[name].[hash:8].[ext]"), prod.Media)
	assert.Equal(t, Template("static/js/[name].[chunkhash:8].js"), prod.Script)
	assert.Equal(t, Template("static/js/[name].[chunkhash:8].chunk.js"), prod.ScriptChunk)
	assert.Equal(t, Template("static/css/[name].[contenthash:8].css"), prod.Style)
	assert.Equal(t, Template("static/css/[name].[contenthash:8].chunk.css"), prod.StyleChunk)
	for _, tmpl := range prod.All() {
		assert.True(t, tmpl.HasHash(), tmpl)
		assert.NoError(t, tmpl.Validate())
	}

	dev := NamesFor(false, 8)
	assert.Equal(t, Template("static/media/[name].[ext]"), dev.Media)
	assert.Equal(t, Template("static/js/bundle.js"), dev.Script)
	assert.Equal(t, Template("static/js/[name].chunk.js"), dev.ScriptChunk)
	for _, tmpl := range dev.All() {
		assert.False(t, tmpl.HasHash(), tmpl)
	}
}
