package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
)

// AuditRepository is the append-only audit trail. Entries accumulate for the
// life of the process; nothing is ever rewritten or pruned.
type AuditRepository struct {
	mu      sync.RWMutex
	entries []audit.Entry
	nextID  int64
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{nextID: 1}
}

// Append implements audit.AuditRepository.
func (r *AuditRepository) Append(_ context.Context, actor, action, detail string) audit.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := audit.Entry{
		ID:     r.nextID,
		Actor:  actor,
		Action: action,
		Detail: detail,
		Time:   time.Now(),
	}
	r.nextID++
	r.entries = append(r.entries, entry)
	return entry
}

// List implements audit.AuditRepository. Newest entries come first.
func (r *AuditRepository) List(_ context.Context, action string, limit int) []audit.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]audit.Entry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		if action != "" && r.entries[i].Action != action {
			continue
		}
		out = append(out, r.entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
