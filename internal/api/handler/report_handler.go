package handler

import (
	"errors"
	"log"
	"net/http"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/model"
	"go-inventory-report/internal/report"
	"go-inventory-report/internal/store"
	"go-inventory-report/pkg/router"
)

// GetReport builds the revenue, stock and returns report of a dataset
// @Summary Generate report
// @Description Run the three standard aggregations on a dataset. Sections that cannot be computed are marked unavailable; the others still complete.
// @Tags reports
// @Produce json
// @Produce plain
// @Param id path string true "Dataset ID"
// @Param top query int false "Rows per ranking (0 for default, negative for all)"
// @Param strict query bool false "Fail a section on non-numeric values instead of skipping rows"
// @Param format query string false "json (default) or text"
// @Param lang query string false "Language tag for text number formatting"
// @Success 200 {object} report.Report "Generated report"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameter"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /datasets/{id}/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	cfg, err := h.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep := report.Build(s.Dataset, s.Source, cfg.ReportConfig())
	if err := h.db.SaveReport(r.Context(), rep.ID, s.ID, rep.GeneratedAt, rep); err != nil {
		log.Printf("❌ Failed to save report %s: %v", rep.ID, err)
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		lang := report.ParseLanguage(queryString(r, "lang", cfg.Lang))
		if err := report.WriteText(w, rep, lang); err != nil {
			log.Printf("❌ Failed to write text report: %v", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// GetAggregation runs one aggregation with optional column overrides
// @Summary Run aggregation
// @Description Run the revenue, stock or returns aggregation. Responds 422 with the missing columns when the dataset cannot support it.
// @Tags reports
// @Produce json
// @Param id path string true "Dataset ID"
// @Param name path string true "revenue, stock or returns"
// @Param key query string false "Group key column"
// @Param quantity query string false "Quantity column"
// @Param price query string false "Unit price column (revenue)"
// @Param event_type query string false "Event type column (returns)"
// @Param filter query string false "Event type substring (returns)"
// @Param top query int false "Rows to keep (0 for default, negative for all)"
// @Param strict query bool false "Fail on non-numeric values"
// @Success 200 {object} model.AggregationResponse "Aggregation result"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameter"
// @Failure 404 {object} model.ErrorResponse "Dataset or aggregation not found"
// @Failure 422 {object} model.ErrorResponse "Required columns missing or invalid value"
// @Router /datasets/{id}/aggregations/{name} [get]
func (h *Handler) GetAggregation(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	cfg, err := h.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	key := queryString(r, "key", cfg.KeyColumn)
	quantity := queryString(r, "quantity", cfg.QuantityColumn)
	opts := []engine.Option{engine.WithRowPolicy(cfg.Policy())}

	var res engine.Result
	name := router.Segment(r, segAggregation)
	switch name {
	case engine.RevenueRequest:
		price := queryString(r, "price", cfg.PriceColumn)
		res, err = engine.RevenueByKey(s.Dataset, key, quantity, price, cfg.TopN, opts...)
	case engine.StockRequest:
		res, err = engine.StockByKey(s.Dataset, key, quantity, cfg.TopN, opts...)
	case engine.ReturnsRequest:
		eventType := queryString(r, "event_type", cfg.EventTypeColumn)
		marker := queryString(r, "filter", cfg.ReturnMarker)
		res, err = engine.ReturnsByKey(s.Dataset, key, quantity, eventType, marker, cfg.TopN, opts...)
	default:
		writeError(w, http.StatusNotFound, "Unknown aggregation "+name)
		return
	}

	var mc *engine.MissingColumnsError
	var iv *engine.InvalidValueError
	switch {
	case errors.As(err, &mc):
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{Error: err.Error(), MissingColumns: mc.Columns})
		return
	case errors.As(err, &iv):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := report.StatusOK
	if res.Empty() {
		status = report.StatusNoData
	}
	writeJSON(w, http.StatusOK, model.AggregationResponse{
		SessionID: s.ID,
		Name:      res.Name,
		Status:    status,
		Rows:      res.Rows,
		Groups:    res.Groups,
		Eligible:  res.Eligible,
		Filtered:  res.Filtered,
		Missing:   res.Missing,
		Invalid:   res.Invalid,
	})
}

// ListReports returns the stored report history of a dataset
// @Summary List reports
// @Description List reports generated for a dataset, newest first
// @Tags reports
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {array} model.ReportSummary "Stored reports"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /datasets/{id}/reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	id := router.Segment(r, segDatasetID)
	_, err := h.db.GetSession(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Dataset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch dataset")
		return
	}

	reports, err := h.db.ListReports(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": id,
		"reports":    reports,
		"count":      len(reports),
	})
}

// GetStoredReport returns a previously generated report
// @Summary Get stored report
// @Description Retrieve a report exactly as it was generated
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} report.Report "Stored report"
// @Failure 404 {object} model.ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) GetStoredReport(w http.ResponseWriter, r *http.Request) {
	body, err := h.db.GetReport(r.Context(), router.Segment(r, segReportID))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch report")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
