package assetstub

import (
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Plain(t *testing.T) {
	stub, err := Generate("src/images/logo.png")
	require.NoError(t, err)

	assert.Equal(t, `"logo.png"`, stub.Name)
	assert.False(t, stub.Component)
	assert.Equal(t, "module.exports = \"logo.png\";\n", stub.Source)
}

func TestGenerate_SVG(t *testing.T) {
	stub, err := Generate("/app/src/icon.svg")
	require.NoError(t, err)

	assert.True(t, stub.Component)
	assert.Contains(t, stub.Source, `default: "icon.svg",`)
	assert.Contains(t, stub.Source, `children: "icon.svg"`)
	assert.Contains(t, stub.Source, "ReactComponent: (props) =>")
	assert.Contains(t, stub.Source, "__esModule: true")
}

func TestGenerate_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"quote", `a"b.txt`, `"a\"b.txt"`},
		{"html chars kept", "<x>&y.txt", `"<x>&y.txt"`},
		{"unicode kept", "café.png", `"café.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, err := Generate(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stub.Name)
		})
	}
}

func TestGenerate_NoFileName(t *testing.T) {
	for _, path := range []string{"", "/"} {
		_, err := Generate(path)
		require.Error(t, err, path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
}
