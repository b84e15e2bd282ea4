// Package naming renders output file names from bundler-style templates.
//
// A template is a slash-separated path with bracketed placeholders:
//
//	[name]            source file name without its extension
//	[ext]             source extension without the dot
//	[folder]          name of the directory holding the source file
//	[hash]            full content hash
//	[hash:N]          first N characters of the content hash
//	[contenthash:N]   same as [hash:N]; used for extracted style sheets
//	[chunkhash:N]     same as [hash:N]; used for script chunks
//
// Unknown placeholders are left untouched so a template can be handed on to
// a downstream tool that understands more of them.
package naming

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/errors"
)

var placeholderPattern = regexp.MustCompile(`\[([a-z]+)(?::(\d+))?\]`)

// Template is an output naming template such as "static/media/[name].[hash:8].[ext]"
type Template string

// Vars holds the values substituted into a template
type Vars struct {
	Name   string
	Ext    string
	Folder string
	Hash   string
}

// VarsFor derives Name, Ext and Folder from a source path
func VarsFor(sourcePath, hash string) Vars {
	slashed := strings.ReplaceAll(sourcePath, "\\", "/")
	base := path.Base(slashed)
	ext := path.Ext(base)
	return Vars{
		Name:   strings.TrimSuffix(base, ext),
		Ext:    strings.TrimPrefix(ext, "."),
		Folder: path.Base(path.Dir(slashed)),
		Hash:   hash,
	}
}

// String returns the raw template text
func (t Template) String() string {
	return string(t)
}

// HasHash reports whether the template embeds a content hash
func (t Template) HasHash() bool {
	for _, m := range placeholderPattern.FindAllStringSubmatch(string(t), -1) {
		if isHashPlaceholder(m[1]) {
			return true
		}
	}
	return false
}

// Validate checks that every placeholder is well formed
func (t Template) Validate() error {
	if strings.TrimSpace(string(t)) == "" {
		return errors.New(errors.ErrInvalidTemplate, "empty output template")
	}
	for _, m := range placeholderPattern.FindAllStringSubmatch(string(t), -1) {
		if m[2] != "" && !isHashPlaceholder(m[1]) {
			return errors.Newf(errors.ErrInvalidTemplate,
				"placeholder [%s] does not take a length", m[1]).
				WithDetail("template", string(t))
		}
		if m[2] != "" {
			if n, _ := strconv.Atoi(m[2]); n == 0 {
				return errors.Newf(errors.ErrInvalidTemplate,
					"hash length must be positive in [%s:%s]", m[1], m[2]).
					WithDetail("template", string(t))
			}
		}
	}
	return nil
}

// Render substitutes vars into the template
func (t Template) Render(vars Vars) string {
	return placeholderPattern.ReplaceAllStringFunc(string(t), func(token string) string {
		m := placeholderPattern.FindStringSubmatch(token)
		switch {
		case m[1] == "name":
			return vars.Name
		case m[1] == "ext":
			return vars.Ext
		case m[1] == "folder":
			return vars.Folder
		case isHashPlaceholder(m[1]):
			if m[2] == "" {
				return vars.Hash
			}
			n, _ := strconv.Atoi(m[2])
			if n < len(vars.Hash) {
				return vars.Hash[:n]
			}
			return vars.Hash
		default:
			return token
		}
	})
}

// RenderPath is shorthand for Render(VarsFor(sourcePath, hash))
func (t Template) RenderPath(sourcePath, hash string) string {
	return t.Render(VarsFor(sourcePath, hash))
}

func isHashPlaceholder(name string) bool {
	return name == "hash" || name == "contenthash" || name == "chunkhash"
}

// Hashed builds "<dir>/[name].[<kind>:<n>]<suffix>" where suffix is appended
// verbatim, e.g. Hashed("static/js", "chunkhash", 8, ".chunk.js").
func Hashed(dir, kind string, n int, suffix string) Template {
	return Template(fmt.Sprintf("%s/[name].[%s:%d]%s", dir, kind, n, suffix))
}

// Plain builds "<dir>/[name]<suffix>"
func Plain(dir, suffix string) Template {
	return Template(fmt.Sprintf("%s/[name]%s", dir, suffix))
}

// Output directories
const (
	MediaDir  = "static/media"
	ScriptDir = "static/js"
	StyleDir  = "static/css"
)

// DefaultHashLength is the hash prefix length used in production names
const DefaultHashLength = 8

// Names groups the output templates of one build mode
type Names struct {
	Media       Template `json:"media" yaml:"media" toml:"media"`
	Script      Template `json:"script" yaml:"script" toml:"script"`
	ScriptChunk Template `json:"scriptChunk" yaml:"scriptChunk" toml:"script_chunk"`
	Style       Template `json:"style" yaml:"style" toml:"style"`
	StyleChunk  Template `json:"styleChunk" yaml:"styleChunk" toml:"style_chunk"`
}

// NamesFor returns the templates for hashed (production) or stable
// (development) output. Development bundles all entry code into one file.
func NamesFor(hashed bool, hashLength int) Names {
	if !hashed {
		return Names{
			Media:       Plain(MediaDir, ".[ext]"),
			Script:      Template(ScriptDir + "/bundle.js"),
			ScriptChunk: Plain(ScriptDir, ".chunk.js"),
			Style:       Plain(StyleDir, ".css"),
			StyleChunk:  Plain(StyleDir, ".chunk.css"),
		}
	}
	return Names{
		Media:       Hashed(MediaDir, "hash", hashLength, ".[ext]"),
		Script:      Hashed(ScriptDir, "chunkhash", hashLength, ".js"),
		ScriptChunk: Hashed(ScriptDir, "chunkhash", hashLength, ".chunk.js"),
		Style:       Hashed(StyleDir, "contenthash", hashLength, ".css"),
		StyleChunk:  Hashed(StyleDir, "contenthash", hashLength, ".chunk.css"),
	}
}

// All returns the templates in a fixed order
func (n Names) All() []Template {
	return []Template{n.Media, n.Script, n.ScriptChunk, n.Style, n.StyleChunk}
}
