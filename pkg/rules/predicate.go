package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Matches reports whether path satisfies the predicate. path may be
// absolute or relative and use either separator.
func (p Predicate) Matches(path string) bool {
	subject := matchSubject(path)

	if len(p.Include) > 0 && !p.included(path) {
		return false
	}
	if !anyMatch(p.Patterns, subject) {
		return false
	}
	return !anyMatch(p.Exclude, subject)
}

// Validate checks every pattern
func (p Predicate) Validate() error {
	if len(p.Patterns) == 0 {
		return errors.New(errors.ErrInvalidPattern, "predicate has no patterns")
	}
	for _, group := range [][]string{p.Patterns, p.Exclude} {
		for _, pattern := range group {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Newf(errors.ErrInvalidPattern, "invalid pattern %q", pattern).
					WithDetail("pattern", pattern)
			}
		}
	}
	for _, root := range p.Include {
		if !filepath.IsAbs(root) {
			return errors.Newf(errors.ErrInvalidPattern, "include root %q is not absolute", root).
				WithDetail("include", root)
		}
	}
	return nil
}

func (p Predicate) included(path string) bool {
	for _, root := range p.Include {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func anyMatch(patterns []string, subject string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, subject); ok {
			return true
		}
	}
	return false
}

// matchSubject normalises path to the slash form patterns are written for
func matchSubject(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "/")
}
