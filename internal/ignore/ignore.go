// Package ignore filters staged paths with glob patterns.
//
// Patterns follow the usual shell glob rules plus "**" for any number of
// directories. A pattern without a slash is also matched against the base
// name of the path, so "*.svg" ignores "assets/logo.svg".
package ignore

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher holds a validated set of patterns.
type Matcher struct {
	patterns []string
}

// NewMatcher drops blank and invalid patterns.
func NewMatcher(patterns []string) *Matcher {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = normalize(strings.TrimSpace(p))
		if p == "" || !doublestar.ValidatePattern(p) {
			continue
		}
		valid = append(valid, p)
	}
	return &Matcher{patterns: valid}
}

// Match reports whether relPath is ignored.
func (m *Matcher) Match(relPath string) bool {
	p := normalize(relPath)
	if p == "" {
		return false
	}
	base := path.Base(p)
	for _, pattern := range m.patterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
		}
	}
	return false
}

// Patterns returns the patterns the matcher uses.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// IsIgnored reports whether relPath matches any of patterns.
func IsIgnored(relPath string, patterns []string) bool {
	return NewMatcher(patterns).Match(relPath)
}

// Validate returns an error naming the first malformed pattern.
func Validate(patterns []string) error {
	for _, p := range patterns {
		p = normalize(strings.TrimSpace(p))
		if p != "" && !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "./")
}
