package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/export"
	"github.com/bilgin-hr/puantaj-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	MikroCSV(w http.ResponseWriter, r *http.Request)
	GridXLSX(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

// MikroCSV implements ExportHandler.
func (h *exportHandlerImpl) MikroCSV(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequestFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	artifact, err := h.exportService.MikroCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveArtifact(w, artifact)
}

// GridXLSX implements ExportHandler.
func (h *exportHandlerImpl) GridXLSX(w http.ResponseWriter, r *http.Request) {
	req, err := exportRequestFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	artifact, err := h.exportService.GridXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveArtifact(w, artifact)
}

func exportRequestFromQuery(r *http.Request) (export.Request, error) {
	period, err := periodFromQuery(r)
	if err != nil {
		return export.Request{}, err
	}
	return export.Request{
		PeriodRequest: period,
		LocationID:    r.URL.Query().Get("location_id"),
	}, nil
}

func serveArtifact(w http.ResponseWriter, artifact export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
