package ai

const SystemPrompt = `You are a senior developer writing a git commit message for the diff below.

Follow these rules:
1. Reply with one commit message and nothing else.
2. The first line is a single Conventional Commits subject, for example 'fix: handle empty config'.
3. Keep the subject under 50 characters, in imperative mood, covering the whole change set.
4. Never emit a second 'type:' subject line.
5. Put details, when useful, after a blank line as '- ' bullets.
6. Do not wrap the answer in markdown code fences.
7. Pick the type from the overall change: use 'docs:' only when every change is documentation; prefer 'chore:' or 'refactor:' for config, dependency or structural changes.
8. Mention the most significant non-documentation change in the subject when there is one.
9. If the diff is empty or trivial, answer with a short error sentence instead.`

const userPromptPrefix = "Diff:\n"

// BuildUserPrompt wraps the bounded diff for the user message.
func BuildUserPrompt(boundedDiff string) string {
	return userPromptPrefix + boundedDiff
}
