package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCommitMessage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "subject only",
			raw:      "  feat: add login\n\n",
			expected: "feat: add login",
		},
		{
			name:     "fenced with language tag",
			raw:      "```text\nfeat(auth): add login\n\n- add form\n```\nSome commentary",
			expected: "feat(auth): add login\n\n- add form",
		},
		{
			name:     "fence without closing",
			raw:      "```\nfix: handle nil config\nguard the loader",
			expected: "fix: handle nil config\n\n- guard the loader",
		},
		{
			name:     "extra header line becomes a bullet",
			raw:      "feat: add parser\n\nsupport nested blocks\nfix: typo",
			expected: "feat: add parser\n\n- support nested blocks\n- fix: typo",
		},
		{
			name:     "existing bullets pass through",
			raw:      "refactor: split service\r\n\r\n- move git calls   \r\n- keep order",
			expected: "refactor: split service\n\n- move git calls\n- keep order",
		},
		{
			name:     "blank input",
			raw:      "   \n\t ",
			expected: "",
		},
		{
			name:     "only a fence",
			raw:      "```",
			expected: "",
		},
		{
			name:     "single line fenced subject",
			raw:      "```feat: x```",
			expected: "feat: x",
		},
		{
			name:     "single line fence without closing",
			raw:      "``` fix(ui): align icons ",
			expected: "fix(ui): align icons",
		},
		{
			name:     "empty single line block",
			raw:      "``````",
			expected: "",
		},
		{
			name:     "subject is passed through unchanged",
			raw:      "Update stuff",
			expected: "Update stuff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCommitMessage(tt.raw))
		})
	}
}

func TestIsConventionalSubject(t *testing.T) {
	assert.True(t, IsConventionalSubject("feat(api): add endpoint\n\n- details"))
	assert.True(t, IsConventionalSubject("revert: drop cache"))
	assert.False(t, IsConventionalSubject("Add endpoint"))
	assert.False(t, IsConventionalSubject("feature: add endpoint"))
	assert.False(t, IsConventionalSubject(""))
}
