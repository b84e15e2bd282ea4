package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/environ"
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// ProjectFileName is the optional per-project override file
	ProjectFileName = "buildplan.toml"
	// EnvPrefix marks environment variables that override configuration
	EnvPrefix = "BUILDPLAN_"

	envSectionSeparator = "__"
)

// Default returns the embedded defaults with no overrides applied
func Default() (*Config, error) {
	return load(nil, nil)
}

// Load merges the embedded defaults, <root>/buildplan.toml when it exists
// in fsys, and BUILDPLAN_ overrides from env.
func Load(fsys types.FS, root string, env environ.Environ) (*Config, error) {
	logger := logging.GetLogger("config")

	path := filepath.Join(root, ProjectFileName)
	if !filesystem.IsFile(fsys, path) {
		logger.Debug().Str("path", path).Msg("No project config, using defaults")
		return load(nil, env)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	logger.Debug().Str("path", path).Msg("Loading project config")
	return load(&rawBytesProvider{bytes: data}, env)
}

// LoadFile is Load with an explicit config file on the local disk. Unlike
// Load, a missing file is an error.
func LoadFile(path string, env environ.Environ) (*Config, error) {
	return load(file.Provider(path), env)
}

func load(project koanf.Provider, env environ.Environ) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	if project != nil {
		if err := k.Load(project, toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load project config")
		}
	}

	// 3. Environment overrides
	if overrides := envOverrides(env); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSpaceSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envOverrides turns BUILDPLAN_SECTION__KEY=value into "section.key": value
func envOverrides(env environ.Environ) map[string]interface{} {
	out := make(map[string]interface{})
	for key, value := range env.WithPrefix(EnvPrefix) {
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if !strings.Contains(name, envSectionSeparator) {
			continue
		}
		out[strings.ReplaceAll(name, envSectionSeparator, ".")] = value
	}
	return out
}
