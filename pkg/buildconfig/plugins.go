package buildconfig

import (
	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/flags"
	"github.com/arthur-debert/buildplan/pkg/naming"
	"github.com/arthur-debert/buildplan/pkg/paths"
)

// Plugin names
const (
	PluginHTML                    = "html"
	PluginInlineChunk             = "inline-chunk"
	PluginInterpolateHTML         = "interpolate-html"
	PluginModuleNotFound          = "module-not-found"
	PluginDefine                  = "define"
	PluginHotModuleReplacement    = "hot-module-replacement"
	PluginCaseSensitivePaths      = "case-sensitive-paths"
	PluginWatchMissingNodeModules = "watch-missing-node-modules"
	PluginMiniCSSExtract          = "mini-css-extract"
	PluginManifest                = "manifest"
	PluginIgnore                  = "ignore"
	PluginGenerateSW              = "generate-sw"
	PluginForkTSChecker           = "fork-ts-checker"

	PluginTerser       = "terser"
	PluginOptimizeCSS  = "optimize-css-assets"
	PluginPnP          = "pnp"
	PluginModuleScope  = "module-scope"
	ManifestFileName   = "asset-manifest.json"
	runtimeChunkSource = "runtime~.+[.]js"
)

// Plugin describes a collaborator by name and options. Descriptors are data
// only; nothing in this module runs them.
type Plugin struct {
	Name    string                 `json:"name" yaml:"name" toml:"name"`
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

func plugins(f flags.FeatureFlags, p *paths.Paths, names naming.Names, clientEnv environ.ClientEnv) []Plugin {
	list := []Plugin{htmlPlugin(f, p)}

	if f.Production && f.InlineRuntimeChunk {
		list = append(list, Plugin{
			Name:    PluginInlineChunk,
			Options: map[string]interface{}{"tests": []string{runtimeChunkSource}},
		})
	}

	list = append(list,
		Plugin{Name: PluginInterpolateHTML, Options: map[string]interface{}{"env": clientEnv.Raw}},
		Plugin{Name: PluginModuleNotFound, Options: map[string]interface{}{"appPath": p.AppDir}},
		Plugin{Name: PluginDefine, Options: map[string]interface{}{"definitions": clientEnv.Stringified}},
	)

	if f.HotReload {
		list = append(list,
			Plugin{Name: PluginHotModuleReplacement},
			Plugin{Name: PluginCaseSensitivePaths},
			Plugin{Name: PluginWatchMissingNodeModules, Options: map[string]interface{}{"nodeModules": p.NodeModules}},
		)
	}

	if f.ExtractStyles {
		list = append(list, Plugin{
			Name: PluginMiniCSSExtract,
			Options: map[string]interface{}{
				"filename":      names.Style.String(),
				"chunkFilename": names.StyleChunk.String(),
			},
		})
	}

	list = append(list,
		Plugin{Name: PluginManifest, Options: map[string]interface{}{
			"fileName":   ManifestFileName,
			"publicPath": f.PublicPath,
		}},
		Plugin{Name: PluginIgnore, Options: map[string]interface{}{
			"resourceRegExp": `^\./locale$`,
			"contextRegExp":  `moment$`,
		}},
	)

	if f.Production {
		list = append(list, Plugin{
			Name: PluginGenerateSW,
			Options: map[string]interface{}{
				"clientsClaim":      true,
				"exclude":           []string{`\.map$`, `asset-manifest\.json$`},
				"importWorkboxFrom": "cdn",
				"navigateFallback":  f.PublicURL + "/index.html",
				"navigateFallbackBlacklist": []string{
					`^/_`,
					`/[^/]+\.[^/]+$`,
				},
			},
		})
	}

	if f.TypeCheck {
		list = append(list, Plugin{
			Name: PluginForkTSChecker,
			Options: map[string]interface{}{
				"async":                false,
				"checkSyntacticErrors": true,
				"tsconfig":             p.TSConfig,
				"typescriptBasedir":    p.NodeModules,
				"compilerOptions": map[string]interface{}{
					"module":            "esnext",
					"moduleResolution":  "node",
					"resolveJsonModule": true,
					"isolatedModules":   true,
					"noEmit":            true,
					"jsx":               "preserve",
				},
			},
		})
	}
	return list
}

func htmlPlugin(f flags.FeatureFlags, p *paths.Paths) Plugin {
	opts := map[string]interface{}{
		"inject":   true,
		"template": p.HTML,
	}
	if f.Minify {
		opts["minify"] = map[string]interface{}{
			"removeComments":                true,
			"collapseWhitespace":            true,
			"removeRedundantAttributes":     true,
			"useShortDoctype":               true,
			"removeEmptyAttributes":         true,
			"removeStyleLinkTypeAttributes": true,
			"keepClosingSlash":              true,
			"minifyJS":                      true,
			"minifyCSS":                     true,
			"minifyURLs":                    true,
		}
	}
	return Plugin{Name: PluginHTML, Options: opts}
}

func minimizers(f flags.FeatureFlags) []Plugin {
	if !f.Minify {
		return nil
	}
	cssMap := interface{}(false)
	if f.SourceMaps {
		cssMap = map[string]interface{}{"inline": false, "annotation": true}
	}
	return []Plugin{
		{Name: PluginTerser, Options: map[string]interface{}{
			"parallel":  true,
			"cache":     true,
			"sourceMap": f.SourceMaps,
			"parse":     map[string]interface{}{"ecma": 8},
			"compress": map[string]interface{}{
				"ecma":        5,
				"warnings":    false,
				"comparisons": false,
				"inline":      2,
			},
			"mangle": map[string]interface{}{"safari10": true},
			"output": map[string]interface{}{
				"ecma":       5,
				"comments":   false,
				"ascii_only": true,
			},
		}},
		{Name: PluginOptimizeCSS, Options: map[string]interface{}{
			"parser": "postcss-safe-parser",
			"map":    cssMap,
		}},
	}
}

func resolvePlugins(p *paths.Paths) []Plugin {
	return []Plugin{
		{Name: PluginPnP},
		{Name: PluginModuleScope, Options: map[string]interface{}{
			"appSrc":       p.Src,
			"allowedFiles": []string{p.PackageJSON},
		}},
	}
}
