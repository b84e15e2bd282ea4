package paths

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/package.schema.json
var packageSchema []byte

const packageSchemaURL = "package.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Package holds the package.json fields a build configuration reads
type Package struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Private  bool   `json:"private,omitempty" yaml:"private,omitempty" toml:"private,omitempty"`
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty" toml:"homepage,omitempty"`
}

// ReadPackage loads and validates the package descriptor at path
func ReadPackage(fsys types.FS, path string) (*Package, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageMissing, "cannot read %s", path).
			WithDetail("path", path)
	}
	return ParsePackage(data)
}

// ParsePackage validates data against the package schema and decodes it
func ParsePackage(data []byte) (*Package, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "package schema does not compile")
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, errors.Wrap(err, errors.ErrPackageInvalid, "package.json is not valid JSON")
	}
	if err := sch.Validate(document); err != nil {
		return nil, errors.Wrap(err, errors.ErrPackageInvalid, "package.json does not match the expected shape")
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(err, errors.ErrPackageInvalid, "package.json could not be decoded")
	}
	return &pkg, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(packageSchemaURL, bytes.NewReader(packageSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(packageSchemaURL)
	})
	return compiledSchema, schemaErr
}
