package models

type (
	// DiffEntry is one staged file: its label and raw diff text.
	DiffEntry struct {
		Header string
		Diff   string
	}

	// StagedEntries is the result of collecting the staged changes of a repository.
	StagedEntries struct {
		Root    string
		Entries []DiffEntry
		Ignored []string
	}
)
