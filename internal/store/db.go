package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/model"
)

// ErrNotFound is returned when a session or report does not exist.
var ErrNotFound = errors.New("not found")

// DB wraps the SQLite database holding session and report history.
type DB struct {
	sql *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	source TEXT,
	row_count INTEGER,
	columns TEXT,
	created_at DATETIME
);
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	session_id TEXT,
	body TEXT,
	created_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_reports_session ON reports(session_id);
CREATE TABLE IF NOT EXISTS raw_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT,
	row_index INTEGER,
	data TEXT,
	created_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_raw_records_session ON raw_records(session_id);
`

// Open connects to the database at path and creates missing tables.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" shared.
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &DB{sql: conn}, nil
}

// Close releases the database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// SaveSession records an uploaded dataset.
func (db *DB) SaveSession(ctx context.Context, info model.DatasetInfo) error {
	columnsJSON, err := json.Marshal(info.Columns)
	if err != nil {
		return err
	}

	created := info.UploadedAt.UTC()
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err = db.sql.ExecContext(ctx, `INSERT INTO sessions (id, source, row_count, columns, created_at) VALUES (?, ?, ?, ?, ?)`,
		info.SessionID, info.Source, info.RowCount, string(columnsJSON), created)
	return err
}

// ListSessions returns all sessions, newest first
func (db *DB) ListSessions(ctx context.Context) ([]model.DatasetInfo, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT id, source, row_count, columns, created_at FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []model.DatasetInfo{}
	for rows.Next() {
		info, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, info)
	}
	return sessions, rows.Err()
}

// GetSession fetches one session.
func (db *DB) GetSession(ctx context.Context, id string) (model.DatasetInfo, error) {
	row := db.sql.QueryRowContext(ctx, `SELECT id, source, row_count, columns, created_at FROM sessions WHERE id = ?`, id)
	info, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DatasetInfo{}, ErrNotFound
	}
	return info, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(s scanner) (model.DatasetInfo, error) {
	var info model.DatasetInfo
	var columnsJSON string
	if err := s.Scan(&info.SessionID, &info.Source, &info.RowCount, &columnsJSON, &info.UploadedAt); err != nil {
		return model.DatasetInfo{}, err
	}
	if err := json.Unmarshal([]byte(columnsJSON), &info.Columns); err != nil {
		return model.DatasetInfo{}, fmt.Errorf("decode columns: %w", err)
	}
	return info, nil
}

// SaveReport stores a generated report. body is any JSON-encodable value.
func (db *DB) SaveReport(ctx context.Context, id, sessionID string, generatedAt time.Time, body any) error {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return err
	}
	_, err = db.sql.ExecContext(ctx, `INSERT INTO reports (id, session_id, body, created_at) VALUES (?, ?, ?, ?)`,
		id, sessionID, string(bodyJSON), generatedAt.UTC())
	return err
}

// ListReports returns the report history of a session, newest first
func (db *DB) ListReports(ctx context.Context, sessionID string) ([]model.ReportSummary, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT id, session_id, created_at FROM reports WHERE session_id = ? ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []model.ReportSummary{}
	for rows.Next() {
		var r model.ReportSummary
		if err := rows.Scan(&r.ID, &r.SessionID, &r.GeneratedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetReport returns the stored JSON body of a report.
func (db *DB) GetReport(ctx context.Context, id string) (json.RawMessage, error) {
	var body string
	err := db.sql.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// SaveRawRecords writes the rows of a dataset in one transaction and
// returns how many were stored.
func (db *DB) SaveRawRecords(ctx context.Context, sessionID string, ds *engine.Dataset) (int, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO raw_records (session_id, row_index, data, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := 0; i < ds.Len(); i++ {
		data, err := json.Marshal(ds.Row(i))
		if err != nil {
			return 0, fmt.Errorf("encode row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, sessionID, i, string(data), now); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return ds.Len(), nil
}

// CountRawRecords returns how many raw rows are stored for a session.
func (db *DB) CountRawRecords(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM raw_records WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}
