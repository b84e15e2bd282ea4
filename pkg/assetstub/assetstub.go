// Package assetstub produces the module that stands in for an imported asset
// when tests run. Tests do not bundle, so `import logo from './logo.png'`
// resolves to a module whose default export is the file's base name.
package assetstub

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/buildplan/pkg/errors"
)

var (
	plainTemplate = template.Must(template.New("plain").Parse(
		"module.exports = {{.Name}};\n"))

	svgTemplate = template.Must(template.New("svg").Parse(`module.exports = {
  __esModule: true,
  default: {{.Name}},
  ReactComponent: (props) => ({
    $$typeof: Symbol.for('react.element'),
    type: 'svg',
    ref: null,
    key: null,
    props: Object.assign({}, props, {
      children: {{.Name}}
    })
  }),
};
`))
)

// Stub is a generated stand-in module
type Stub struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	// Name is the JSON string literal exported as default
	Name string `json:"name" yaml:"name" toml:"name"`
	// Component is set when the stub also exports a ReactComponent
	Component bool   `json:"component" yaml:"component" toml:"component"`
	Source    string `json:"source" yaml:"source" toml:"source"`
}

// Generate returns the stub module for the asset at path. The file itself
// is never read.
func Generate(path string) (*Stub, error) {
	base := filepath.Base(filepath.FromSlash(path))
	if path == "" || base == "." || base == string(filepath.Separator) {
		return nil, errors.New(errors.ErrInvalidInput, "asset path has no file name").
			WithDetail("path", path)
	}

	name, err := jsString(base)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot quote asset name")
	}

	stub := &Stub{
		Path:      path,
		Name:      name,
		Component: strings.HasSuffix(base, ".svg"),
	}
	tmpl := plainTemplate
	if stub.Component {
		tmpl = svgTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, stub); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render asset stub")
	}
	stub.Source = buf.String()
	return stub, nil
}

// jsString quotes s the way JSON.stringify does, without HTML escaping
func jsString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
