package http

import (
	"net/http"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/handler/http/response"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
)

// MasterHandler serves the static reference data the grid and forms render:
// status codes, calendar names, duty picklists and SGK occupation codes.
type MasterHandler interface {
	GetCodes(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetDuties(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct{}

func NewMasterHandler() MasterHandler {
	return &masterHandlerImpl{}
}

// GetCodes implements MasterHandler.
func (h *masterHandlerImpl) GetCodes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, attendance.Codes)
}

// GetCalendar implements MasterHandler.
func (h *masterHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"months":    period.MonthNames,
		"day_names": period.DayNames,
	})
}

// GetDuties implements MasterHandler.
func (h *masterHandlerImpl) GetDuties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"duties":               employee.Duties,
		"sgk_occupation_codes": employee.SGKOccupationCodes,
	})
}
