package environ

import (
	"bytes"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/joho/godotenv"
)

// DotEnvFiles returns the .env cascade for mode, highest priority first:
// .env.<mode>.local, .env.local, .env.<mode>, .env
func DotEnvFiles(dotenvPath string, mode types.Mode) []string {
	return []string{
		dotenvPath + "." + mode.String() + ".local",
		dotenvPath + ".local",
		dotenvPath + "." + mode.String(),
		dotenvPath,
	}
}

// LoadDotEnv layers the .env cascade underneath base. Variables already in
// base are never overridden, and a file earlier in the cascade wins over a
// later one. Missing files are skipped. It returns the merged environment
// and the files that were read.
func LoadDotEnv(fsys types.FS, dotenvPath string, mode types.Mode, base Environ) (Environ, []string, error) {
	logger := logging.GetLogger("environ.dotenv")

	merged := base.Merge(nil)
	var loaded []string
	for _, file := range DotEnvFiles(dotenvPath, mode) {
		if !filesystem.IsFile(fsys, file) {
			continue
		}
		data, err := fsys.ReadFile(file)
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file)
		}
		values, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", file)
		}
		merged = merged.Merge(Environ(values))
		loaded = append(loaded, file)
		logger.Debug().
			Str("file", file).
			Int("vars", len(values)).
			Msg("Loaded env file")
	}

	if len(loaded) == 0 {
		logger.Debug().Str("base", dotenvPath).Msg("No env files found")
	}
	return merged, loaded, nil
}
