package cssmodules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalIdent(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		class    string
		prefix   string
	}{
		{"module_file", "/app/src/components/Button.module.css", "primary", "Button_primary__"},
		{"index_module_uses_folder", "/app/src/Card/index.module.scss", "title", "Card_title__"},
		{"sass_module", "/app/src/theme.module.sass", "dark", "theme_dark__"},
		{"relative_path", "src/Nav.module.css", "link", "Nav_link__"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalIdent("/app", tt.resource, tt.class)
			assert.True(t, len(got) == len(tt.prefix)+HashLength, "unexpected ident %q", got)
			assert.Equal(t, tt.prefix, got[:len(tt.prefix)])
		})
	}
}

func TestLocalIdentIsDeterministic(t *testing.T) {
	a := LocalIdent("/app", "/app/src/Button.module.css", "primary")
	b := LocalIdent("/app", "/app/src/Button.module.css", "primary")
	assert.Equal(t, a, b)
}

func TestLocalIdentDependsOnPathAndClass(t *testing.T) {
	base := LocalIdent("/app", "/app/src/a/Button.module.css", "primary")

	assert.NotEqual(t, base, LocalIdent("/app", "/app/src/b/Button.module.css", "primary"),
		"same file name in another folder must not collide")
	assert.NotEqual(t, base, LocalIdent("/app", "/app/src/a/Button.module.css", "secondary"))
}

func TestLocalIdentIgnoresRootLocation(t *testing.T) {
	a := LocalIdent("/home/me/app", "/home/me/app/src/Button.module.css", "x")
	b := LocalIdent("/ci/build/app", "/ci/build/app/src/Button.module.css", "x")
	assert.Equal(t, a, b, "identifiers depend on the project-relative path only")
}

func TestHash(t *testing.T) {
	h := Hash("src/Button.module.css", "primary")
	assert.Equal(t, "XXP8s", h)
	assert.Regexp(t, `^[A-Za-z0-9_-]{5}$`, h)
}

func TestLocalIdent_MatchesWebpackNames(t *testing.T) {
	assert.Equal(t, "Button_primary__10Br9",
		LocalIdent("/app", "/app/src/components/Button.module.css", "primary"))
	assert.Equal(t, "Card_title__14W3N",
		LocalIdent("/app", "/app/src/Card/index.module.scss", "title"))
}

func TestEncodeBase(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"zero", []byte{0}, ""},
		{"single digit", []byte{1, 0}, "1"},
		{"carries into a second digit", []byte{64}, "10"},
		{"little endian", []byte{0, 1}, "40"},
		{"top digit", []byte{63}, "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeBase(tt.in))
		})
	}
}
