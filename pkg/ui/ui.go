// Package ui writes command output in the selected format. Display formats
// (terminal, text) style or strip output; data formats (json, yaml, toml)
// encode the result as a document.
package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/ui/render"
	"github.com/arthur-debert/buildplan/pkg/ui/styles"
)

// Printer writes output to a single writer in a resolved format
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a printer for output. FormatAuto is resolved against
// output immediately.
func NewPrinter(format Format, output io.Writer) *Printer {
	return &Printer{out: output, format: Resolve(format, output)}
}

// Format returns the resolved format
func (p *Printer) Format() Format {
	return p.format
}

// Styled reports whether output carries colors
func (p *Printer) Styled() bool {
	return p.format == FormatTerminal
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Data encodes v. Display formats fall back to JSON.
func (p *Printer) Data(v interface{}) error {
	enc := render.JSON
	switch p.format {
	case FormatYAML:
		enc = render.YAML
	case FormatTOML:
		enc = render.TOML
	}
	if err := render.Encode(p.out, enc, v); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot encode output as %s", enc)
	}
	return nil
}

// Table prints a table
func (p *Printer) Table(header []string, rows [][]string) error {
	return render.Table(p.out, header, rows, p.Styled())
}

// Markdown prints a markdown document
func (p *Printer) Markdown(md string) error {
	return render.Markdown(p.out, md, p.Styled(), 0)
}

// Style applies the named style when output is styled
func (p *Printer) Style(name, text string) string {
	if !p.Styled() {
		return text
	}
	return styles.GetStyle(name).Render(text)
}

// Line prints text in the named style followed by a newline
func (p *Printer) Line(name, text string) {
	_, _ = fmt.Fprintln(p.out, p.Style(name, text))
}

// Error prints err. Coded errors show their code and details.
func (p *Printer) Error(err error) {
	if p.format.Structured() {
		_ = p.Data(errorDocument(err))
		return
	}

	p.Line(styles.Error, "Error: "+err.Error())
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.Line(styles.Muted, fmt.Sprintf("  %s: %v", key, details[key]))
	}
}

type errorDoc struct {
	Error   string                 `json:"error" yaml:"error" toml:"error"`
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

func errorDocument(err error) errorDoc {
	return errorDoc{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	}
}
