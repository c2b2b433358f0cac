package dashboard

import "context"

// DashboardService computes the current-month overview from the ledger.
// Read-only; USER-role callers get their own location only.
type DashboardService interface {
	Overview(ctx context.Context) (Overview, error)
}
