package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/buildplan/pkg/filesystem"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// MemoryRoot is the project root used by in-memory projects
const MemoryRoot = "/app"

// DefaultPackageJSON is written by NewProject
const DefaultPackageJSON = `{"name": "app", "version": "0.1.0", "private": true}`

// Project is a seeded project tree
type Project struct {
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewProject creates a project holding only a package.json
func NewProject(t *testing.T, envType EnvType) *Project {
	t.Helper()

	p := &Project{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		p.Root = MemoryRoot
		p.FS = filesystem.NewAferoFS(afero.NewMemMapFs())
	case EnvIsolated:
		root, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to resolve temp dir: %v", err)
		}
		p.Root = root
		p.FS = filesystem.NewOS()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	if err := p.FS.MkdirAll(p.Root, 0755); err != nil {
		t.Fatalf("Failed to create project root: %v", err)
	}
	return p.WithPackageJSON(DefaultPackageJSON)
}

// Path returns rel joined onto the project root. rel uses forward slashes.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// WithFile writes content at rel, creating parent directories
func (p *Project) WithFile(rel, content string) *Project {
	p.t.Helper()

	path := p.Path(rel)
	if err := p.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		p.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := p.FS.WriteFile(path, []byte(content), 0644); err != nil {
		p.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return p
}

// WithSizedFile writes a file of exactly size bytes
func (p *Project) WithSizedFile(rel string, size int) *Project {
	p.t.Helper()
	return p.WithFile(rel, strings.Repeat("x", size))
}

// WithPackageJSON replaces the package descriptor
func (p *Project) WithPackageJSON(content string) *Project {
	p.t.Helper()
	return p.WithFile("package.json", content)
}

// WithoutPackageJSON removes the package descriptor
func (p *Project) WithoutPackageJSON() *Project {
	p.t.Helper()
	if err := p.FS.Remove(p.Path("package.json")); err != nil {
		p.t.Fatalf("Failed to remove package.json: %v", err)
	}
	return p
}

// WithTSConfig enables TypeScript for the project
func (p *Project) WithTSConfig() *Project {
	p.t.Helper()
	return p.WithFile("tsconfig.json", `{"compilerOptions": {"jsx": "react"}}`)
}
