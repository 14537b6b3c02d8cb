package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"go-inventory-report/internal/export"
	"go-inventory-report/internal/model"
	"go-inventory-report/pkg/router"
)

// ExportDataset writes the raw dataset to a file or the database
// @Summary Export dataset
// @Description Export the uploaded rows as CSV or JSON (target=file) or into the raw_records table (target=db)
// @Tags export
// @Produce json
// @Param id path string true "Dataset ID"
// @Param format query string false "csv (default) or json"
// @Param target query string false "file (default) or db"
// @Success 200 {object} model.ExportResult "Export completed"
// @Failure 400 {object} model.ErrorResponse "Invalid format or target"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Failure 500 {object} model.ExportResult "Export failed"
// @Router /datasets/{id}/export [post]
func (h *Handler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var result model.ExportResult
	switch target := queryString(r, "target", "file"); target {
	case "db":
		result = export.ToStore(r.Context(), h.db, s.ID, s.Dataset)
	case "file":
		format := queryString(r, "format", export.TypeCSV)
		if format != export.TypeCSV && format != export.TypeJSON {
			writeError(w, http.StatusBadRequest, "format must be csv or json")
			return
		}

		fileName := fmt.Sprintf("inventory_report_%s.%s", time.Now().UTC().Format("2006-01-02_15-04-05"), format)
		path, err := h.outputs.GetOutputFilePath(s.ID, fileName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		result = export.ToFile(s.Dataset, path, model.ExportInfo{
			SessionID: s.ID,
			Source:    s.Source,
		})
		if result.Success {
			result.DownloadURL = h.outputs.GetDownloadURL(s.ID, fileName)
		}
	default:
		writeError(w, http.StatusBadRequest, "target must be file or db")
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, result)
}

// DownloadFile serves an exported file
// @Summary Download export
// @Description Download a file produced by the export endpoint
// @Tags export
// @Produce octet-stream
// @Param id path string true "Dataset ID"
// @Param file path string true "File name"
// @Success 200 {file} file "Exported file"
// @Failure 404 {object} model.ErrorResponse "File not found"
// @Router /download/{id}/{file} [get]
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := router.Segment(r, segDownloadID)
	fileName := router.Segment(r, segDownload)

	path, err := h.outputs.ResolveExisting(id, fileName)
	if err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	switch h.outputs.GetFileType(fileName) {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	case "json":
		w.Header().Set("Content-Type", "application/json")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	http.ServeFile(w, r, path)
}
