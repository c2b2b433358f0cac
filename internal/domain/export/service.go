package export

import "context"

// ExportService renders the two downloadable artifacts. Employees with no
// recorded cells still get a row (all zeros) so the payroll side sees the
// full roster. Each successful generation emits one EXPORT audit entry.
type ExportService interface {
	// MikroCSV renders the flat comma-delimited transfer file for the Mikro
	// payroll system, UTF-8 with a leading byte-order mark.
	MikroCSV(ctx context.Context, req Request) (Artifact, error)

	// GridXLSX renders the styled corporate report: a 4-row block per
	// employee across fixed 31 day columns plus summary columns.
	GridXLSX(ctx context.Context, req Request) (Artifact, error)
}
