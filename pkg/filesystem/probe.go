package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/buildplan/pkg/types"
)

// Exists reports whether name exists. Any stat failure, including permission
// errors, counts as absent: a missing file is an expected outcome for every
// caller in this module.
func Exists(fsys types.FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsFile reports whether name exists and is not a directory
func IsFile(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && !info.IsDir()
}

// SymlinkResolver is implemented by filesystems that can resolve links
type SymlinkResolver interface {
	EvalSymlinks(path string) (string, error)
}

// RealPath returns the absolute form of path with symlinks resolved when
// fsys supports it. Filesystems without link support get the cleaned
// absolute path.
func RealPath(fsys types.FS, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if r, ok := fsys.(SymlinkResolver); ok {
		return r.EvalSymlinks(abs)
	}
	return abs, nil
}
