package model

import (
	"time"

	"go-inventory-report/internal/engine"
)

// DatasetInfo describes an uploaded dataset
type DatasetInfo struct {
	SessionID  string          `json:"session_id"`
	Source     string          `json:"source"`
	RowCount   int             `json:"row_count"`
	Columns    []string        `json:"columns"`
	Preview    []engine.Record `json:"preview,omitempty"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Available  bool            `json:"available"` // still held in memory
}

// ReportSummary is one entry of the stored report history
type ReportSummary struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AggregationResponse is the body of a single aggregation request
type AggregationResponse struct {
	SessionID string       `json:"session_id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"` // "ok", "no_data"
	Rows      []engine.Row `json:"rows"`
	Groups    int          `json:"groups"`
	Eligible  int          `json:"eligible"`
	Filtered  int          `json:"filtered"`
	Missing   int          `json:"missing"`
	Invalid   int          `json:"invalid"`
}

// ErrorResponse is returned for failed API requests
type ErrorResponse struct {
	Error          string   `json:"error"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}
