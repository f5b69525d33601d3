package domain

import (
	"context"
)

// JournalRepository defines the interface for journal persistence operations
type JournalRepository interface {
	// Append stores a new journal entry at the end of the journal
	Append(ctx context.Context, entry *JournalEntry) error

	// List retrieves all journal entries in insertion order
	List(ctx context.Context) ([]*JournalEntry, error)

	// Count returns the total number of journal entries
	Count(ctx context.Context) (int, error)
}
