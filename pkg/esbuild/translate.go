package esbuild

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/buildconfig"
	"github.com/arthur-debert/buildplan/pkg/flags"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/naming"
	"github.com/arthur-debert/buildplan/pkg/rules"
	"github.com/evanw/esbuild/pkg/api"
)

var hashPlaceholder = regexp.MustCompile(`\[(?:hash|contenthash|chunkhash)(?::\d+)?\]`)

// catchAllExtensions are emitted as files in place of the catch-all rule
var catchAllExtensions = []string{".svg", ".webp", ".ico", ".woff", ".woff2", ".ttf", ".eot", ".otf", ".mp4", ".webm", ".txt"}

// Note records where the translation departs from the build configuration
type Note struct {
	Subject string `json:"subject" yaml:"subject" toml:"subject"`
	Message string `json:"message" yaml:"message" toml:"message"`
}

// Translation is a set of esbuild options plus the notes explaining what
// could not be carried over
type Translation struct {
	Options api.BuildOptions
	Notes   []Note
}

// Translate maps bc onto esbuild options
func Translate(bc *buildconfig.BuildConfig) Translation {
	logger := logging.GetLogger("esbuild")
	t := Translation{}

	opts := api.BuildOptions{
		AbsWorkingDir:     bc.Paths.AppDir,
		Bundle:            true,
		Splitting:         bc.Optimization.SplitChunks == "all",
		Format:            api.FormatESModule,
		Platform:          api.PlatformBrowser,
		Target:            api.ES2015,
		Outdir:            bc.Paths.Build,
		PublicPath:        bc.Output.PublicPath,
		EntryNames:        esbuildName(bc.Output.Filename, ".js"),
		ChunkNames:        esbuildName(bc.Output.ChunkFilename, ".js"),
		AssetNames:        esbuildName(bc.Names.Media, ".[ext]"),
		ResolveExtensions: append([]string(nil), bc.Resolve.Extensions...),
		Alias:             copyMap(bc.Resolve.Alias),
		Define:            copyMap(bc.ClientEnv.Stringified),
		MinifyWhitespace:  bc.Optimization.Minimize,
		MinifyIdentifiers: bc.Optimization.Minimize,
		MinifySyntax:      bc.Optimization.Minimize,
		Sourcemap:         sourceMap(bc.Devtool),
		Metafile:          true,
		LogLevel:          api.LogLevelSilent,
	}

	for _, entry := range bc.Entry {
		if entry == buildconfig.HotDevClient {
			t.note("entry", "hot reload client dropped; esbuild serves its own live reload")
			continue
		}
		opts.EntryPoints = append(opts.EntryPoints, entry)
	}
	for _, dir := range bc.Resolve.Modules {
		if dir != "node_modules" {
			opts.NodePaths = append(opts.NodePaths, dir)
		}
	}
	if bc.Flags.TypeScript {
		opts.Tsconfig = bc.Paths.TSConfig
	}
	for _, pr := range bc.Module.PreRules {
		t.note(pr.Name, pr.Loader+" is not run; esbuild has no pre-loader stage")
	}
	opts.Loader = t.loaders(bc.Module.Rules, bc.Flags.TypeScript)
	t.Options = opts
	t.note("target", "esbuild cannot lower to ES5; ES2015 is the closest target")

	logger.Debug().
		Int("loaders", len(opts.Loader)).
		Int("notes", len(t.Notes)).
		Msg("Translated build configuration")
	return t
}

func (t *Translation) note(subject, message string) {
	t.Notes = append(t.Notes, Note{Subject: subject, Message: message})
}

func (t *Translation) loaders(rs []rules.Rule, typescript bool) map[string]api.Loader {
	loaders := map[string]api.Loader{".json": api.LoaderJSON}

	for _, r := range rs {
		switch r.Name {
		case rules.RuleMedia:
			for _, ext := range []string{".bmp", ".gif", ".jpg", ".jpeg", ".png"} {
				loaders[ext] = api.LoaderFile
			}
			if r.Inline != nil && r.Inline.Limit > 0 {
				t.note(r.Name, "size-based inlining is not supported; media is always emitted as files")
			}
		case rules.RuleAppScript:
			loaders[".js"] = api.LoaderJSX
			loaders[".mjs"] = api.LoaderJS
			loaders[".jsx"] = api.LoaderJSX
			if typescript {
				loaders[".ts"] = api.LoaderTS
				loaders[".tsx"] = api.LoaderTSX
			}
		case rules.RuleDependencyScript:
			t.note(r.Name, "dependencies are bundled as-is without a compile step")
		case rules.RuleCSS:
			loaders[".css"] = api.LoaderCSS
			if r.Style != nil && r.Style.Delivery == rules.DeliveryInject {
				t.note(r.Name, "style sheets are always written to files; runtime injection is not available")
			}
		case rules.RuleCSSModule:
			loaders[".module.css"] = api.LoaderLocalCSS
			t.note(r.Name, "scoped class names follow esbuild's scheme, not [name]_[local]__[hash]")
		case rules.RuleSass, rules.RuleSassModule:
			t.note(r.Name, "sass is not supported; .scss and .sass imports will fail")
		case rules.RuleFile:
			for _, ext := range catchAllExtensions {
				if _, ok := loaders[ext]; !ok {
					loaders[ext] = api.LoaderFile
				}
			}
			t.note(r.Name, "the catch-all is limited to "+strings.Join(catchAllExtensions, ", "))
		}
	}
	return loaders
}

// esbuildName converts a naming template to esbuild's form: hash
// placeholders become [hash] and the trailing extension is dropped because
// esbuild appends it.
func esbuildName(t naming.Template, suffix string) string {
	name := strings.TrimSuffix(t.String(), suffix)
	return hashPlaceholder.ReplaceAllString(name, "[hash]")
}

func sourceMap(devtool string) api.SourceMap {
	if devtool == flags.DevtoolNone {
		return api.SourceMapNone
	}
	return api.SourceMapLinked
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// sortedKeys returns the keys of m in order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
