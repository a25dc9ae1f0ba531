package services

import (
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/regex"
)

// NormalizeCommitMessage turns raw model output into a subject line followed
// by an optional block of "- " bullets.
func NormalizeCommitMessage(raw string) string {
	text := strings.TrimSpace(unfence(strings.TrimSpace(raw)))

	var lines []string
	for _, line := range regex.LineBreak.Split(text, -1) {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return text
	}

	subject := lines[0]
	bullets := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		bullets = append(bullets, toBullet(line))
	}
	if len(bullets) == 0 {
		return subject
	}
	return subject + "\n\n" + strings.Join(bullets, "\n")
}

// unfence strips one wrapping code block: the opening fence line, with its
// optional language tag, and everything from the last closing fence on. A
// block on a single line keeps the text between its fences.
func unfence(text string) string {
	if !strings.HasPrefix(text, regex.CodeFence) {
		return text
	}

	nl := strings.IndexByte(text, '\n')
	if nl < 0 {
		inner := strings.TrimPrefix(text, regex.CodeFence)
		if end := strings.LastIndex(inner, regex.CodeFence); end >= 0 {
			inner = inner[:end]
		}
		return inner
	}
	body := text[nl+1:]
	if end := strings.LastIndex(body, regex.CodeFence); end >= 0 {
		body = body[:end]
	}
	return body
}

// toBullet prefixes every body line that is not already a bullet, including
// stray header lines such as "fix: typo".
func toBullet(line string) string {
	if strings.HasPrefix(line, regex.BulletPrefix) {
		return line
	}
	return regex.BulletPrefix + line
}

// IsConventionalSubject reports whether the first line of message is a
// Conventional Commits header.
func IsConventionalSubject(message string) bool {
	subject, _, _ := strings.Cut(message, "\n")
	return regex.ConventionalHeader.MatchString(subject)
}
