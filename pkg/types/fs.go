package types

import (
	"io/fs"
)

// FS is the filesystem interface required for buildplan operations.
// Resolution and composition only read; the write operations exist so tests
// and tooling can seed a project through the same abstraction.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}
