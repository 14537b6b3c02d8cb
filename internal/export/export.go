package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/model"
	"go-inventory-report/pkg/utils"
)

// DefaultFileName is used when no export path is given.
const DefaultFileName = "inventory_report_export.csv"

// Export types reported in model.ExportResult.
const (
	TypeCSV      = "csv"
	TypeJSON     = "json"
	TypeDatabase = "database"
)

// RecordStore persists the raw rows of a dataset.
type RecordStore interface {
	SaveRawRecords(ctx context.Context, sessionID string, ds *engine.Dataset) (int, error)
}

// WriteCSV writes ds with a header row in column order. Missing values are
// written as empty cells.
func WriteCSV(w io.Writer, ds *engine.Dataset) (int, error) {
	writer := csv.NewWriter(w)

	columns := ds.Columns()
	if err := writer.Write(columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	recordCount := 0
	row := make([]string, len(columns))
	for i := 0; i < ds.Len(); i++ {
		for j, col := range columns {
			v, _ := ds.Value(i, col)
			row[j] = utils.FormatValue(v)
		}
		if err := writer.Write(row); err != nil {
			return recordCount, fmt.Errorf("failed to write row: %w", err)
		}
		recordCount++
	}

	writer.Flush()
	return recordCount, writer.Error()
}

// WriteJSON writes ds as {"export_info": meta, "data": [...]}. The record
// count and export type of meta are filled in.
func WriteJSON(w io.Writer, ds *engine.Dataset, meta model.ExportInfo) (int, error) {
	data := make([]engine.Record, ds.Len())
	for i := range data {
		data[i] = ds.Row(i)
	}

	meta.RecordCount = len(data)
	if meta.ExportType == "" {
		meta.ExportType = "raw_records"
	}
	if meta.ExportedAt.IsZero() {
		meta.ExportedAt = time.Now().UTC()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	exportData := map[string]interface{}{
		"export_info": meta,
		"data":        data,
	}
	if err := encoder.Encode(exportData); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return len(data), nil
}

// ToFile exports ds to path, choosing CSV or JSON from the extension.
// Unknown extensions are written as CSV.
func ToFile(ds *engine.Dataset, path string, meta model.ExportInfo) model.ExportResult {
	if path == "" {
		path = DefaultFileName
	}

	kind := TypeCSV
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		kind = TypeJSON
	}

	recordCount, err := writeFile(path, func(w io.Writer) (int, error) {
		if kind == TypeJSON {
			return WriteJSON(w, ds, meta)
		}
		return WriteCSV(w, ds)
	})

	result := model.ExportResult{
		Type:        kind,
		Path:        path,
		RecordCount: recordCount,
		Success:     err == nil,
		ExportedAt:  time.Now(),
	}
	if err != nil {
		result.Error = err.Error()
		log.Printf("❌ Export to file failed: %v", err)
	} else {
		log.Printf("✅ Export to file successful: %d records exported to %s", recordCount, path)
	}
	return result
}

func writeFile(path string, write func(io.Writer) (int, error)) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := write(file)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close file: %w", cerr)
	}
	return n, err
}

// ToStore saves the raw rows of ds under sessionID.
func ToStore(ctx context.Context, db RecordStore, sessionID string, ds *engine.Dataset) model.ExportResult {
	recordCount, err := db.SaveRawRecords(ctx, sessionID, ds)

	result := model.ExportResult{
		Type:        TypeDatabase,
		Path:        "raw_records",
		RecordCount: recordCount,
		Success:     err == nil,
		ExportedAt:  time.Now(),
	}
	if err != nil {
		result.Error = err.Error()
		log.Printf("❌ Export to database failed: %v", err)
	} else {
		log.Printf("✅ Export to database successful: %d records exported", recordCount)
	}
	return result
}
