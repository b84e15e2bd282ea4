package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/config"
	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/resolver"
	"github.com/arthur-debert/buildplan/pkg/types"
)

// Paths holds every resolved project location. It is computed once and not
// modified afterwards.
type Paths struct {
	AppDir      string `json:"appDir" yaml:"appDir" toml:"app_dir"`
	DotEnv      string `json:"dotenv" yaml:"dotenv" toml:"dotenv"`
	Build       string `json:"build" yaml:"build" toml:"build"`
	Public      string `json:"public" yaml:"public" toml:"public"`
	HTML        string `json:"html" yaml:"html" toml:"html"`
	Src         string `json:"src" yaml:"src" toml:"src"`
	PackageJSON string `json:"packageJson" yaml:"packageJson" toml:"package_json"`
	TSConfig    string `json:"tsconfig" yaml:"tsconfig" toml:"tsconfig"`
	YarnLock    string `json:"yarnLock" yaml:"yarnLock" toml:"yarn_lock"`
	ProxySetup  string `json:"proxySetup" yaml:"proxySetup" toml:"proxy_setup"`
	NodeModules string `json:"nodeModules" yaml:"nodeModules" toml:"node_modules"`

	Entry      resolver.ResolvedPath `json:"entry" yaml:"entry" toml:"entry"`
	TestsSetup resolver.ResolvedPath `json:"testsSetup" yaml:"testsSetup" toml:"tests_setup"`

	// PublicURL is PUBLIC_URL or the package homepage, possibly empty
	PublicURL string `json:"publicUrl" yaml:"publicUrl" toml:"public_url"`
	// ServedPath always ends with a slash
	ServedPath string `json:"servedPath" yaml:"servedPath" toml:"served_path"`

	// TypeScript reports whether the tsconfig file exists
	TypeScript bool `json:"typescript" yaml:"typescript" toml:"typescript"`
	// Extensions is the candidate list after TypeScript filtering
	Extensions resolver.Extensions `json:"-" yaml:"-" toml:"-"`

	Package *Package `json:"package" yaml:"package" toml:"package"`
}

// New resolves the project rooted at root. The package descriptor is read
// first; without it nothing else is derived.
func New(fsys types.FS, root string, cfg *config.Config, env environ.Environ) (*Paths, error) {
	logger := logging.GetLogger("paths")

	appDir, err := filesystem.RealPath(fsys, root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve project root %s", root).
			WithDetail("root", root)
	}
	resolveApp := func(rel string) string {
		return filepath.Join(appDir, filepath.FromSlash(rel))
	}

	p := &Paths{
		AppDir:      appDir,
		DotEnv:      resolveApp(cfg.Paths.DotEnv),
		Build:       resolveApp(cfg.Paths.Build),
		Public:      resolveApp(cfg.Paths.Public),
		HTML:        resolveApp(cfg.Paths.HTML),
		Src:         resolveApp(cfg.Paths.Src),
		PackageJSON: resolveApp(cfg.Paths.PackageJSON),
		TSConfig:    resolveApp(cfg.Paths.TSConfig),
		YarnLock:    resolveApp(cfg.Paths.YarnLock),
		ProxySetup:  resolveApp(cfg.Paths.ProxySetup),
		NodeModules: resolveApp(cfg.Paths.NodeModules),
	}

	if !filesystem.IsFile(fsys, p.PackageJSON) {
		return nil, errors.New(errors.ErrPackageMissing, "package.json not found").
			WithDetail("path", p.PackageJSON)
	}
	p.Package, err = ReadPackage(fsys, p.PackageJSON)
	if err != nil {
		return nil, err
	}

	candidates, err := cfg.Extensions()
	if err != nil {
		return nil, err
	}
	p.TypeScript = filesystem.IsFile(fsys, p.TSConfig)
	if !p.TypeScript {
		logger.Info().
			Str("tsconfig", p.TSConfig).
			Msg("No tsconfig found, TypeScript support disabled")
	}
	p.Extensions = candidates.ForTypeScript(p.TypeScript)

	p.Entry = resolver.Resolve(fsys, resolveApp(cfg.Paths.Entry), p.Extensions)
	p.TestsSetup = resolver.Resolve(fsys, resolveApp(cfg.Paths.TestsSetup), p.Extensions)

	p.PublicURL = PublicURL(env, p.Package.Homepage)
	p.ServedPath = ServedPath(env, p.Package.Homepage)

	logger.Debug().
		Str("appDir", p.AppDir).
		Str("entry", p.Entry.Path).
		Str("servedPath", p.ServedPath).
		Bool("typescript", p.TypeScript).
		Msg("Resolved project paths")
	return p, nil
}

// Rel returns path relative to the app directory, with forward slashes.
// Paths outside the app directory are returned unchanged.
func (p *Paths) Rel(path string) string {
	rel, err := filepath.Rel(p.AppDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
