package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetGrid(w http.ResponseWriter, r *http.Request)
	SaveCell(w http.ResponseWriter, r *http.Request)
	AutoFill(w http.ResponseWriter, r *http.Request)
	ClearPeriod(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetLocks(w http.ResponseWriter, r *http.Request)
	ToggleLock(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// periodFromQuery reads the year and 0-based month query parameters.
func periodFromQuery(r *http.Request) (attendance.PeriodRequest, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return attendance.PeriodRequest{}, err
	}
	month0, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return attendance.PeriodRequest{}, err
	}
	return attendance.PeriodRequest{Year: year, Month0: month0}, nil
}

// GetGrid implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}
	req := attendance.GridRequest{
		PeriodRequest: period,
		LocationID:    r.URL.Query().Get("location_id"),
	}

	result, err := h.attendanceService.GetGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveCell implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveCell(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveCellRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveCell decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.SaveCell(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cell saved successfully", nil)
}

// AutoFill implements AttendanceHandler.
func (h *attendanceHandlerImpl) AutoFill(w http.ResponseWriter, r *http.Request) {
	var req attendance.AutoFillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AutoFill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.AutoFill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period auto-filled successfully", result)
}

// ClearPeriod implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClearPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	if err := h.attendanceService.ClearPeriod(r.Context(), period); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period cleared successfully", nil)
}

// GetSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.attendanceService.Summarize(r.Context(), period, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLocks implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetLocks(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' is required", nil)
		return
	}

	result, err := h.attendanceService.LockStatus(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ToggleLock implements AttendanceHandler.
func (h *attendanceHandlerImpl) ToggleLock(w http.ResponseWriter, r *http.Request) {
	var req attendance.PeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleLock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ToggleLock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lock state updated", result)
}
