package handler

import (
	"log"
	"net/http"

	"go-inventory-report/internal/ingest"
	"go-inventory-report/internal/model"
	"go-inventory-report/internal/report"
	"go-inventory-report/internal/session"
)

func datasetInfo(s *session.Session, withPreview bool) model.DatasetInfo {
	info := model.DatasetInfo{
		SessionID:  s.ID,
		Source:     s.Source,
		RowCount:   s.Dataset.Len(),
		Columns:    s.Dataset.Columns(),
		UploadedAt: s.UploadedAt,
		Available:  true,
	}
	if withPreview {
		info.Preview = ingest.Preview(s.Dataset, report.PreviewRows)
	}
	return info
}

// UploadDataset parses an uploaded inventory file
// @Summary Upload a dataset
// @Description Upload a CSV or XLSX inventory export. The parsed dataset is kept in memory for reporting.
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param encoding formData string false "CSV text encoding (default iso-8859-1)"
// @Param sheet formData string false "Workbook sheet (default first sheet)"
// @Success 201 {object} model.DatasetInfo "Dataset uploaded"
// @Failure 400 {object} model.ErrorResponse "Invalid upload or unreadable file"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /datasets [post]
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Form field \"file\" is required")
		return
	}
	defer file.Close()

	opts := h.cfg.IngestOptions(r.FormValue("sheet"))
	if enc := r.FormValue("encoding"); enc != "" {
		opts.CSV.Encoding = enc
	}

	ds, err := ingest.Read(r.Context(), file, header.Filename, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read file: "+err.Error())
		return
	}

	s := h.sessions.Add(header.Filename, ds)
	info := datasetInfo(s, true)
	if err := h.db.SaveSession(r.Context(), info); err != nil {
		log.Printf("❌ Failed to save session %s: %v", s.ID, err)
		writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	log.Printf("📥 Dataset %s uploaded: %s (%d rows)", s.ID, s.Source, ds.Len())
	writeJSON(w, http.StatusCreated, info)
}

// ListDatasets lists uploaded datasets
// @Summary List datasets
// @Description List every recorded upload, newest first. Datasets evicted from memory are reported with available=false.
// @Tags datasets
// @Produce json
// @Success 200 {array} model.DatasetInfo "Uploaded datasets"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.db.ListSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch datasets")
		return
	}

	for i := range sessions {
		_, err := h.sessions.Get(sessions[i].SessionID)
		sessions[i].Available = err == nil
	}
	writeJSON(w, http.StatusOK, sessions)
}

// GetDataset returns the columns and first rows of a dataset
// @Summary Get dataset
// @Description Retrieve the columns, row count and a preview of an uploaded dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.DatasetInfo "Dataset details"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /datasets/{id} [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, datasetInfo(s, true))
}

// DeleteDataset drops a dataset from memory
// @Summary Delete dataset
// @Description Remove an uploaded dataset from memory. Stored reports are kept.
// @Tags datasets
// @Param id path string true "Dataset ID"
// @Success 204 "Dataset removed"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /datasets/{id} [delete]
func (h *Handler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !h.sessions.Remove(s.ID) {
		writeError(w, http.StatusNotFound, "Dataset not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
