package model

import "time"

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type        string    `json:"type"`   // "csv", "json", "database"
	Path        string    `json:"path"`   // file path or table name
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// ExportInfo is the metadata header written with JSON exports
type ExportInfo struct {
	SessionID   string    `json:"session_id,omitempty"`
	Source      string    `json:"source,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
	RecordCount int       `json:"record_count"`
	ExportType  string    `json:"export_type"`
}
