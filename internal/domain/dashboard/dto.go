package dashboard

// LocationStat is one row of the per-unit breakdown for the current period.
type LocationStat struct {
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	Employees    int     `json:"employees"`
	PlannedHours float64 `json:"planned_hours"` // default daily hours per worked day
	OvertimeFM   float64 `json:"overtime_fm"`
}

// Overview is the dashboard headline for the current calendar month.
type Overview struct {
	Period           string         `json:"period"`
	Employees        int            `json:"employees"`
	Locations        int            `json:"locations"`
	TotalNormalHours float64        `json:"total_normal_hours"`
	TotalFMHours     float64        `json:"total_fm_hours"`
	ByLocation       []LocationStat `json:"by_location"`
}
