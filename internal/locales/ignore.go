package locales

import (
	"fmt"

	"github.com/gobwas/glob"
)

// DefaultIgnore lists directory names that never hold translations.
var DefaultIgnore = []string{"templates", "configs"}

// IgnoreSet matches directory names against a list of glob patterns. A
// pattern without metacharacters matches only the identical name.
type IgnoreSet struct {
	globs []glob.Glob
}

// NewIgnoreSet compiles the given patterns.
func NewIgnoreSet(patterns ...string) (*IgnoreSet, error) {
	s := &IgnoreSet{globs: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		s.globs = append(s.globs, g)
	}
	return s, nil
}

// IgnorePatterns returns DefaultIgnore followed by every pattern of extra
// that is not already present. Settings can only add to the defaults.
func IgnorePatterns(extra ...string) []string {
	patterns := make([]string, 0, len(DefaultIgnore)+len(extra))
	seen := make(map[string]struct{}, cap(patterns))
	for _, p := range append(append([]string(nil), DefaultIgnore...), extra...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		patterns = append(patterns, p)
	}
	return patterns
}

// Match reports whether name is ignored. A nil set ignores nothing.
func (s *IgnoreSet) Match(name string) bool {
	if s == nil {
		return false
	}
	for _, g := range s.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
