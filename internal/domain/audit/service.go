package audit

import "context"

// AuditService records and lists audit entries. Record resolves the actor
// from the caller's JWT claims; operations running outside a session (seed,
// startup) are attributed to "Sistem".
type AuditService interface {
	Record(ctx context.Context, action, detail string)
	List(ctx context.Context, action string, limit int) []Entry
}
