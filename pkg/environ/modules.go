package environ

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/logging"
)

// ModulePaths splits a NODE_PATH style list on sep. Empty entries are
// dropped, absolute entries are dropped with a log line, and relative
// entries are resolved against appDir.
func ModulePaths(value string, sep rune, appDir string) []string {
	logger := logging.GetLogger("environ.modules")

	var out []string
	for _, entry := range strings.Split(value, string(sep)) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if filepath.IsAbs(entry) {
			logger.Info().
				Str("path", entry).
				Msg("Ignoring absolute NODE_PATH entry; only paths relative to the app are searched")
			continue
		}
		out = append(out, filepath.Join(appDir, entry))
	}
	return out
}

// ModuleDirectories returns the module search directories: node_modules
// first, then the NODE_PATH entries of env.
func ModuleDirectories(env Environ, appDir string) []string {
	dirs := []string{"node_modules"}
	return append(dirs, ModulePaths(env.Get(NodePath), filepath.ListSeparator, appDir)...)
}
