package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"go-inventory-report/internal/config"
	"go-inventory-report/internal/model"
	"go-inventory-report/internal/session"
	"go-inventory-report/internal/store"
	"go-inventory-report/pkg/router"
	"go-inventory-report/pkg/utils"
)

// Path segment positions under /api/v1/datasets/{id}/...
const (
	segDatasetID   = 3
	segAggregation = 5
	segDownloadID  = 3
	segDownload    = 4
	segReportID    = 3
)

// Handler serves the /api/v1 endpoints.
type Handler struct {
	cfg      config.Config
	sessions *session.Registry
	db       *store.DB
	outputs  *utils.OutputManager
}

// New returns a Handler backed by the given registry, database and export
// directory.
func New(cfg config.Config, sessions *session.Registry, db *store.DB, outputs *utils.OutputManager) *Handler {
	return &Handler{
		cfg:      cfg,
		sessions: sessions,
		db:       db,
		outputs:  outputs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// lookup resolves the dataset session named in the request path.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := router.Segment(r, segDatasetID)
	if id == "" {
		writeError(w, http.StatusBadRequest, "Dataset ID is required")
		return nil, false
	}

	s, err := h.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Dataset not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load dataset")
		return nil, false
	}
	return s, true
}

// queryInt returns the integer query parameter name, or def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("query parameter " + name + " must be an integer")
	}
	return n, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("query parameter " + name + " must be a boolean")
	}
	return b, nil
}

func queryString(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

// requestConfig applies the top and strict query overrides to the
// configured defaults.
func (h *Handler) requestConfig(r *http.Request) (config.Config, error) {
	cfg := h.cfg
	var err error
	if cfg.TopN, err = queryInt(r, "top", cfg.TopN); err != nil {
		return cfg, err
	}
	if cfg.StrictRows, err = queryBool(r, "strict", cfg.StrictRows); err != nil {
		return cfg, err
	}
	return cfg, nil
}
