package config

import (
	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/resolver"
)

// maxHashLength is the length of a hex-encoded sha256 digest
const maxHashLength = 64

// Validate checks the merged configuration
func (c *Config) Validate() error {
	if c.Output.HashLength <= 0 || c.Output.HashLength > maxHashLength {
		return errors.Newf(errors.ErrConfigValid, "output.hash_length must be between 1 and %d", maxHashLength).
			WithDetail("hash_length", c.Output.HashLength)
	}
	if c.Assets.InlineLimit < 0 {
		return errors.New(errors.ErrConfigValid, "assets.inline_limit must not be negative").
			WithDetail("inline_limit", c.Assets.InlineLimit)
	}
	if c.ClientEnv.Prefix == "" {
		return errors.New(errors.ErrConfigValid, "client_env.prefix must not be empty")
	}
	if _, err := c.Extensions(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid resolve.extensions")
	}

	for key, value := range c.Paths.entries() {
		if value == "" {
			return errors.Newf(errors.ErrConfigValid, "paths.%s must not be empty", key).
				WithDetail("key", key)
		}
	}
	return nil
}

// Extensions returns the configured candidate list
func (c *Config) Extensions() (resolver.Extensions, error) {
	if len(c.Resolve.Extensions) == 0 {
		return resolver.Extensions{}, errors.New(errors.ErrConfigValid, "no candidate extensions")
	}
	return resolver.NewExtensions(c.Resolve.Extensions...)
}

func (p Paths) entries() map[string]string {
	return map[string]string{
		"src":          p.Src,
		"public":       p.Public,
		"build":        p.Build,
		"html":         p.HTML,
		"entry":        p.Entry,
		"tests_setup":  p.TestsSetup,
		"proxy_setup":  p.ProxySetup,
		"node_modules": p.NodeModules,
		"package_json": p.PackageJSON,
		"tsconfig":     p.TSConfig,
		"yarn_lock":    p.YarnLock,
		"dotenv":       p.DotEnv,
	}
}
