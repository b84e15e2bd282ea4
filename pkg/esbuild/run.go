package esbuild

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/evanw/esbuild/pkg/api"
)

// OutputFile is one file produced by a build
type OutputFile struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	Size int    `json:"size" yaml:"size" toml:"size"`
}

// Report summarises a finished build
type Report struct {
	Written  bool         `json:"written" yaml:"written" toml:"written"`
	Files    []OutputFile `json:"files" yaml:"files" toml:"files"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty" toml:"warnings,omitempty"`
	Metafile string       `json:"-" yaml:"-" toml:"-"`
}

// TotalSize is the sum of all output sizes in bytes
func (r Report) TotalSize() int {
	total := 0
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// Run executes the translated build. Files are only written to disk when
// write is set.
func Run(tr Translation, write bool) (*Report, error) {
	logger := logging.GetLogger("esbuild")
	done := logging.LogOperationStart(logger, "esbuild")
	defer done()

	opts := tr.Options
	opts.Write = write
	if len(opts.EntryPoints) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to build: no entry points")
	}

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		texts := messages(result.Errors)
		return nil, errors.Newf(errors.ErrInternal, "esbuild failed with %d error(s): %s",
			len(result.Errors), strings.Join(texts, "; ")).
			WithDetail("errors", texts)
	}

	report := &Report{
		Written:  write,
		Warnings: messages(result.Warnings),
		Metafile: result.Metafile,
	}
	for _, f := range result.OutputFiles {
		rel, err := filepath.Rel(opts.AbsWorkingDir, f.Path)
		if err != nil {
			rel = f.Path
		}
		report.Files = append(report.Files, OutputFile{Path: filepath.ToSlash(rel), Size: len(f.Contents)})
	}
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})

	logger.Info().
		Int("files", len(report.Files)).
		Int("bytes", report.TotalSize()).
		Int("warnings", len(report.Warnings)).
		Bool("written", write).
		Msg("Build finished")
	return report, nil
}

func messages(msgs []api.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		text := m.Text
		if m.Location != nil {
			text = m.Location.File + ": " + text
		}
		out = append(out, text)
	}
	return out
}
