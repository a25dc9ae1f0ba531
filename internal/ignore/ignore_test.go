package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultPatterns = []string{"*-lock.json", "*.svg", "dist/**"}

func TestIsIgnored(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{name: "lock file at root", path: "package-lock.json", patterns: defaultPatterns, want: true},
		{name: "nested lock file matches base name", path: "web/package-lock.json", patterns: defaultPatterns, want: true},
		{name: "svg in subdirectory", path: "assets/icons/logo.svg", patterns: defaultPatterns, want: true},
		{name: "dist tree", path: "dist/bundle/main.js", patterns: defaultPatterns, want: true},
		{name: "source file", path: "src/extension.ts", patterns: defaultPatterns, want: false},
		{name: "dist pattern is anchored", path: "src/dist/main.js", patterns: defaultPatterns, want: false},
		{name: "windows separators", path: "assets\\logo.svg", patterns: defaultPatterns, want: true},
		{name: "leading dot slash", path: "./dist/a.js", patterns: defaultPatterns, want: true},
		{name: "no patterns", path: "a.svg", patterns: nil, want: false},
		{name: "blank pattern is skipped", path: "a.go", patterns: []string{"  "}, want: false},
		{name: "invalid pattern never matches", path: "a[", patterns: []string{"a["}, want: false},
		{name: "double star in middle", path: "docs/api/v1/index.md", patterns: []string{"docs/**/*.md"}, want: true},
		{name: "empty path", path: "", patterns: []string{"*"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIgnored(tt.path, tt.patterns))
		})
	}
}

func TestMatcher_Patterns(t *testing.T) {
	m := NewMatcher([]string{"*.svg", "", "bad[", ".\\dist/**"})

	assert.Equal(t, []string{"*.svg", "dist/**"}, m.Patterns())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(defaultPatterns))
	assert.NoError(t, Validate([]string{"", " "}))
	assert.ErrorContains(t, Validate([]string{"*.go", "src/[abc"}), `invalid ignore pattern "src/[abc"`)
}
