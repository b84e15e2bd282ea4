package rules

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/arthur-debert/buildplan/pkg/internal/hashutil"
	"github.com/arthur-debert/buildplan/pkg/logging"
	"github.com/arthur-debert/buildplan/pkg/types"
	"github.com/rs/zerolog"
)

// skippedNames are never descended into or classified
var skippedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Scanner classifies files on disk against a pipeline
type Scanner struct {
	pipeline *Pipeline
	fs       types.FS
	hashes   *hashutil.Cache
	logger   zerolog.Logger
}

// NewScanner creates a scanner reading through fs. Digests are memoized in a
// private cache.
func NewScanner(pipeline *Pipeline, fs types.FS) *Scanner {
	s := &Scanner{
		pipeline: pipeline,
		fs:       fs,
		logger:   logging.GetLogger("rules.scanner"),
	}
	if cache, err := hashutil.NewCache(hashutil.DefaultCacheSize); err == nil {
		s.hashes = cache
	}
	return s
}

// WithHashCache replaces the digest cache, e.g. to share one across scanners
func (s *Scanner) WithHashCache(cache *hashutil.Cache) *Scanner {
	s.hashes = cache
	return s
}

// ClassifyFile stats path and classifies it. Only files written under a
// content-hashed name are digested.
func (s *Scanner) ClassifyFile(path string) (Decision, error) {
	abs := s.pipeline.absolute(path)
	info, err := s.fs.Stat(abs)
	if err != nil {
		return Decision{}, errors.Wrapf(err, errors.ErrNotFound, "cannot stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return Decision{}, errors.Newf(errors.ErrInvalidInput, "%s is a directory", path).
			WithDetail("path", path)
	}

	asset := types.Asset{Path: path, Size: info.Size()}
	rule, ok := s.pipeline.Match(path)
	if !ok || !rule.namesFile(rule.strategyFor(asset.Size)) || !rule.Output.HasHash() {
		return s.pipeline.Classify(asset), nil
	}

	asset.Hash, err = s.digest(abs)
	if err != nil {
		return Decision{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot hash %s", path).
			WithDetail("path", path)
	}
	return s.pipeline.Classify(asset), nil
}

// ScanDir classifies every file below root, skipping dependency and VCS
// directories. Decisions are sorted by path.
func (s *Scanner) ScanDir(root string) ([]Decision, error) {
	s.logger.Debug().Str("root", root).Msg("Scanning directory")

	var decisions []Decision
	if err := s.walk(s.pipeline.absolute(root), &decisions); err != nil {
		return nil, err
	}
	sort.Slice(decisions, func(i, j int) bool {
		return decisions[i].Path < decisions[j].Path
	})

	s.logger.Debug().
		Str("root", root).
		Int("files", len(decisions)).
		Msg("Directory scan complete")
	return decisions, nil
}

func (s *Scanner) walk(dir string, out *[]Decision) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		if skippedNames[entry.Name()] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := s.walk(path, out); err != nil {
				return err
			}
			continue
		}

		d, err := s.ClassifyFile(path)
		if err != nil {
			return err
		}
		s.logger.Trace().
			Str("file", path).
			Str("rule", d.Rule).
			Str("strategy", d.Strategy.String()).
			Msg("Classified file")
		*out = append(*out, d)
	}
	return nil
}

func (s *Scanner) digest(path string) (string, error) {
	if s.hashes != nil {
		return s.hashes.FileDigest(s.fs, path)
	}
	return hashutil.FileDigest(s.fs, path)
}
