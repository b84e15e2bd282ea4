package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type doc struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Items []string `json:"items" yaml:"items" toml:"items"`
}

func TestEncode(t *testing.T) {
	in := doc{Name: "<app>", Items: []string{"a", "b"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, JSON, in))
		assert.Contains(t, buf.String(), `"name": "<app>"`)

		var out doc
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, in, out)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, YAML, in))

		var out doc
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, in, out)
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, TOML, in))

		var out doc
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, in, out)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Encode(&bytes.Buffer{}, Encoding("xml"), in))
	})
}

func TestTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []string{"Order", "Rule"}, [][]string{{"1", "media"}, {"2", "app-script"}}, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Order")
	assert.Contains(t, out, "app-script")
	assert.NotContains(t, out, "\x1b[")
}

func TestMarkdown_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, "# Title\n\ntext\n", false, 0))
	assert.Equal(t, "# Title\n\ntext\n", buf.String())
}

func TestMarkdown_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, "# Title\n\nbody text\n", true, 60))
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "body text")
}
