package audit

import (
	"context"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/go-chi/jwtauth/v5"
)

// SystemActor is recorded when an entry is emitted outside a user session
// (seed data, startup).
const SystemActor = "Sistem"

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// Record implements audit.AuditService. The actor is the username claim of
// the calling session when one is present.
func (s *AuditServiceImpl) Record(ctx context.Context, action, detail string) {
	actor := SystemActor
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if username, ok := claims["username"].(string); ok && username != "" {
			actor = username
		}
	}
	s.auditRepo.Append(ctx, actor, action, detail)
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, action string, limit int) []audit.Entry {
	return s.auditRepo.List(ctx, action, limit)
}
