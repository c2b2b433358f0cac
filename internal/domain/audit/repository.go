package audit

import "context"

// AuditRepository is the append-only audit trail.
type AuditRepository interface {
	// Append stores a new entry, assigning its ID and timestamp.
	Append(ctx context.Context, actor, action, detail string) Entry

	// List returns entries newest first, optionally filtered by action tag
	// (empty action means all).
	List(ctx context.Context, action string, limit int) []Entry
}
