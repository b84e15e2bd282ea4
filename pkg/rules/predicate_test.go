package rules

import (
	"testing"

	"github.com/arthur-debert/buildplan/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPredicateMatches(t *testing.T) {
	p := Predicate{
		Patterns: []string{"**/*.{js,mjs}"},
		Include:  []string{"/app/src"},
		Exclude:  []string{"**/vendor/**"},
	}

	assert.True(t, p.Matches("/app/src/index.js"))
	assert.True(t, p.Matches("/app/src/a/b/c.mjs"))
	assert.False(t, p.Matches("/app/src/index.jsx"), "pattern mismatch")
	assert.False(t, p.Matches("/app/srcx/index.js"), "sibling with common prefix")
	assert.False(t, p.Matches("/app/index.js"), "outside include root")
	assert.False(t, p.Matches("/app/src/vendor/lib.js"), "excluded")
}

func TestPredicateMatches_NoInclude(t *testing.T) {
	p := Predicate{Patterns: []string{"**"}, Exclude: []string{"**/*.html"}}

	assert.True(t, p.Matches("/anything/at/all.bin"))
	assert.True(t, p.Matches("relative.txt"))
	assert.False(t, p.Matches("/app/public/index.html"))
}

func TestPredicateValidate(t *testing.T) {
	tests := []struct {
		name  string
		pred  Predicate
		valid bool
	}{
		{"valid", Predicate{Patterns: []string{"**/*.css"}, Include: []string{"/app"}}, true},
		{"no patterns", Predicate{}, false},
		{"bad pattern", Predicate{Patterns: []string{"**/*.[css"}}, false},
		{"bad exclude", Predicate{Patterns: []string{"**"}, Exclude: []string{"{a,b"}}, false},
		{"relative include", Predicate{Patterns: []string{"**"}, Include: []string{"src"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pred.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern), "got %v", err)
		})
	}
}
