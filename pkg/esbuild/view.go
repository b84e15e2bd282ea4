package esbuild

import (
	"github.com/evanw/esbuild/pkg/api"
)

var loaderNames = map[api.Loader]string{
	api.LoaderNone:      "none",
	api.LoaderBase64:    "base64",
	api.LoaderBinary:    "binary",
	api.LoaderCopy:      "copy",
	api.LoaderCSS:       "css",
	api.LoaderDataURL:   "dataurl",
	api.LoaderDefault:   "default",
	api.LoaderEmpty:     "empty",
	api.LoaderFile:      "file",
	api.LoaderGlobalCSS: "global-css",
	api.LoaderJS:        "js",
	api.LoaderJSON:      "json",
	api.LoaderJSX:       "jsx",
	api.LoaderLocalCSS:  "local-css",
	api.LoaderText:      "text",
	api.LoaderTS:        "ts",
	api.LoaderTSX:       "tsx",
}

var sourceMapNames = map[api.SourceMap]string{
	api.SourceMapNone:              "none",
	api.SourceMapInline:            "inline",
	api.SourceMapLinked:            "linked",
	api.SourceMapExternal:          "external",
	api.SourceMapInlineAndExternal: "both",
}

// View is a printable rendition of a Translation. esbuild options hold enum
// values and callbacks that do not serialise meaningfully.
type View struct {
	EntryPoints       []string          `json:"entryPoints" yaml:"entryPoints" toml:"entry_points"`
	Outdir            string            `json:"outdir" yaml:"outdir" toml:"outdir"`
	PublicPath        string            `json:"publicPath" yaml:"publicPath" toml:"public_path"`
	EntryNames        string            `json:"entryNames" yaml:"entryNames" toml:"entry_names"`
	ChunkNames        string            `json:"chunkNames" yaml:"chunkNames" toml:"chunk_names"`
	AssetNames        string            `json:"assetNames" yaml:"assetNames" toml:"asset_names"`
	Loaders           map[string]string `json:"loaders" yaml:"loaders" toml:"loaders"`
	ResolveExtensions []string          `json:"resolveExtensions" yaml:"resolveExtensions" toml:"resolve_extensions"`
	NodePaths         []string          `json:"nodePaths,omitempty" yaml:"nodePaths,omitempty" toml:"node_paths,omitempty"`
	Alias             map[string]string `json:"alias" yaml:"alias" toml:"alias"`
	Define            map[string]string `json:"define" yaml:"define" toml:"define"`
	Tsconfig          string            `json:"tsconfig,omitempty" yaml:"tsconfig,omitempty" toml:"tsconfig,omitempty"`
	Minify            bool              `json:"minify" yaml:"minify" toml:"minify"`
	Splitting         bool              `json:"splitting" yaml:"splitting" toml:"splitting"`
	Sourcemap         string            `json:"sourcemap" yaml:"sourcemap" toml:"sourcemap"`
	Notes             []Note            `json:"notes" yaml:"notes" toml:"notes"`
}

// View returns the printable form of t
func (t Translation) View() View {
	o := t.Options
	loaders := make(map[string]string, len(o.Loader))
	for _, ext := range sortedKeys(o.Loader) {
		loaders[ext] = LoaderName(o.Loader[ext])
	}
	return View{
		EntryPoints:       o.EntryPoints,
		Outdir:            o.Outdir,
		PublicPath:        o.PublicPath,
		EntryNames:        o.EntryNames,
		ChunkNames:        o.ChunkNames,
		AssetNames:        o.AssetNames,
		Loaders:           loaders,
		ResolveExtensions: o.ResolveExtensions,
		NodePaths:         o.NodePaths,
		Alias:             o.Alias,
		Define:            o.Define,
		Tsconfig:          o.Tsconfig,
		Minify:            o.MinifyWhitespace && o.MinifyIdentifiers && o.MinifySyntax,
		Splitting:         o.Splitting,
		Sourcemap:         sourceMapNames[o.Sourcemap],
		Notes:             t.Notes,
	}
}

// LoaderName returns the command-line name of a loader
func LoaderName(l api.Loader) string {
	if name, ok := loaderNames[l]; ok {
		return name
	}
	return "unknown"
}
