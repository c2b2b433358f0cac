package http

import (
	"net/http"
	"strconv"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/handler/http/response"
)

// defaultAuditLimit bounds unfiltered audit listings.
const defaultAuditLimit = 100

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Actions(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{
		auditService: auditService,
	}
}

// List implements AuditHandler. Entries come back newest first, optionally
// filtered by action tag.
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Query parameter 'limit' must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	entries := h.auditService.List(r.Context(), r.URL.Query().Get("action"), limit)
	response.Success(w, entries)
}

// Actions implements AuditHandler.
func (h *auditHandlerImpl) Actions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, audit.Actions)
}
