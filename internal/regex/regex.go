package regex

import "regexp"

var (
	// ConventionalHeader matches a commit header such as "feat(api): add endpoint".
	ConventionalHeader = regexp.MustCompile(`^(feat|fix|docs|chore|refactor|test|perf|build|ci|style|revert)(\([^)]+\))?:\s+.+`)

	// Model output cleanup
	LineBreak    = regexp.MustCompile(`\r?\n`)
	CodeFence    = "```"
	BulletPrefix = "- "
)
