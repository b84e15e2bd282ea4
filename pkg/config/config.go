package config

// Config is the fully merged tool configuration.
type Config struct {
	Paths     Paths     `koanf:"paths" json:"paths" yaml:"paths" toml:"paths"`
	Resolve   Resolve   `koanf:"resolve" json:"resolve" yaml:"resolve" toml:"resolve"`
	Assets    Assets    `koanf:"assets" json:"assets" yaml:"assets" toml:"assets"`
	Output    Output    `koanf:"output" json:"output" yaml:"output" toml:"output"`
	ClientEnv ClientEnv `koanf:"client_env" json:"clientEnv" yaml:"clientEnv" toml:"client_env"`
}

// Paths holds project-relative locations. Every entry is joined onto the
// project root by pkg/paths.
type Paths struct {
	Src         string `koanf:"src" json:"src" yaml:"src" toml:"src"`
	Public      string `koanf:"public" json:"public" yaml:"public" toml:"public"`
	Build       string `koanf:"build" json:"build" yaml:"build" toml:"build"`
	HTML        string `koanf:"html" json:"html" yaml:"html" toml:"html"`
	Entry       string `koanf:"entry" json:"entry" yaml:"entry" toml:"entry"`
	TestsSetup  string `koanf:"tests_setup" json:"testsSetup" yaml:"testsSetup" toml:"tests_setup"`
	ProxySetup  string `koanf:"proxy_setup" json:"proxySetup" yaml:"proxySetup" toml:"proxy_setup"`
	NodeModules string `koanf:"node_modules" json:"nodeModules" yaml:"nodeModules" toml:"node_modules"`
	PackageJSON string `koanf:"package_json" json:"packageJson" yaml:"packageJson" toml:"package_json"`
	TSConfig    string `koanf:"tsconfig" json:"tsconfig" yaml:"tsconfig" toml:"tsconfig"`
	YarnLock    string `koanf:"yarn_lock" json:"yarnLock" yaml:"yarnLock" toml:"yarn_lock"`
	DotEnv      string `koanf:"dotenv" json:"dotenv" yaml:"dotenv" toml:"dotenv"`
}

// Resolve configures module resolution.
type Resolve struct {
	// Extensions is the candidate list in priority order, without dots.
	Extensions []string `koanf:"extensions" json:"extensions" yaml:"extensions" toml:"extensions"`
}

// Assets configures asset handling.
type Assets struct {
	// InlineLimit is the size in bytes below which media is inlined.
	InlineLimit int64 `koanf:"inline_limit" json:"inlineLimit" yaml:"inlineLimit" toml:"inline_limit"`
}

// Output configures emitted file names.
type Output struct {
	HashLength int `koanf:"hash_length" json:"hashLength" yaml:"hashLength" toml:"hash_length"`
}

// ClientEnv configures which variables are exposed to client code.
type ClientEnv struct {
	Prefix string `koanf:"prefix" json:"prefix" yaml:"prefix" toml:"prefix"`
}
