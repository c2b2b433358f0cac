package audit

import "time"

// Action tags, matching what the log filter offers. Free-form tags are not
// rejected, but everything the services emit uses one of these.
const (
	ActionLogin     = "LOGIN"
	ActionLogout    = "LOGOUT"
	ActionPuantaj   = "PUANTAJ"
	ActionPersonel  = "PERSONEL"
	ActionLokasyon  = "LOKASYON"
	ActionKullanici = "KULLANICI"
	ActionLock      = "LOCK"
	ActionUnlock    = "UNLOCK"
	ActionExport    = "EXPORT"
)

// Actions lists the known tags in filter display order.
var Actions = []string{
	ActionLogin, ActionLogout, ActionPuantaj, ActionPersonel,
	ActionLokasyon, ActionKullanici, ActionLock, ActionUnlock, ActionExport,
}

// Entry is one append-only audit record. Entries are never mutated or pruned
// for the life of the process.
type Entry struct {
	ID     int64     `json:"id"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
	Time   time.Time `json:"time"`
}
