// Package render writes data to the terminal: encoded documents (json, yaml,
// toml), tables and markdown.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Encoding is a structured document format
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
	TOML Encoding = "toml"
)

// Encode writes v to w in the given encoding
func Encode(w io.Writer, enc Encoding, v interface{}) error {
	switch enc {
	case JSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		e.SetEscapeHTML(false)
		return e.Encode(v)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	case TOML:
		e := toml.NewEncoder(w)
		e.SetIndentTables(true)
		return e.Encode(v)
	default:
		return fmt.Errorf("unknown encoding: %s", enc)
	}
}

// Table writes rows under header. Styled tables get pterm's colors and a
// box; plain tables are aligned text.
func Table(w io.Writer, header []string, rows [][]string, styled bool) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if styled {
		table = table.WithBoxed()
	}
	out, err := table.Srender()
	if err != nil {
		return err
	}
	if !styled {
		out = pterm.RemoveColorFromString(out)
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return err
}

// Markdown renders md for a terminal with glamour. Unstyled output is the
// markdown source itself. width of 0 keeps glamour's default wrapping.
func Markdown(w io.Writer, md string, styled bool, width int) error {
	if !styled {
		_, err := io.WriteString(w, md)
		return err
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
