package inmemory

import (
	"context"
	"sync"

	"github.com/ledgersim/deferral-backend/internal/domain"
)

// JournalRepository is an in-memory, append-only journal store. Nothing
// survives the process; persistence across runs is out of scope.
type JournalRepository struct {
	mu      sync.RWMutex
	entries []*domain.JournalEntry
}

// NewJournalRepository creates the repository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

func (r *JournalRepository) Append(_ context.Context, entry *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *JournalRepository) List(_ context.Context) ([]*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.JournalEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *JournalRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

var _ domain.JournalRepository = (*JournalRepository)(nil)
