package ingest

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go-inventory-report/internal/engine"
)

// Options controls how a source file is parsed.
type Options struct {
	CSV CSVOptions
	// Sheet selects the workbook sheet; empty means the first one.
	Sheet string
	// Client fetches http(s) sources. Defaults to a client with a 30s timeout.
	Client *http.Client
}

// Load reads a dataset from a local path or an http(s) URL. The format is
// picked from the file extension.
func Load(ctx context.Context, source string, opts Options) (*engine.Dataset, error) {
	start := time.Now()
	log.Printf("➡️ Starting ingestion for source: %s", source)

	var reader io.Reader
	name := source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err := fetch(ctx, source, opts.Client)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		reader = body
		if u, err := url.Parse(source); err == nil {
			name = path.Base(u.Path)
		}
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open source file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	ds, err := Read(ctx, reader, name, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.Printf("✅ Finished ingestion for source: %s (%d rows, %d columns, %v)", source, ds.Len(), len(ds.Columns()), time.Since(start))
	return ds, nil
}

// Read parses r according to the extension of name (.csv or .xlsx).
func Read(ctx context.Context, r io.Reader, name string, opts Options) (*engine.Dataset, error) {
	switch Format(name) {
	case FormatCSV:
		return ReadCSV(ctx, r, opts.CSV)
	case FormatXLSX:
		return ReadXLSX(r, opts.Sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", filepath.Ext(name))
	}
}

// Supported source formats.
const (
	FormatCSV     = "csv"
	FormatXLSX    = "xlsx"
	FormatUnknown = ""
)

// Format maps a file name to one of the supported formats.
func Format(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

// Preview returns copies of the first n rows.
func Preview(ds *engine.Dataset, n int) []engine.Record {
	if n > ds.Len() {
		n = ds.Len()
	}
	if n < 0 {
		n = 0
	}
	out := make([]engine.Record, n)
	for i := 0; i < n; i++ {
		out[i] = ds.Row(i)
	}
	return out
}

func fetch(ctx context.Context, source string, client *http.Client) (io.ReadCloser, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET source: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to GET source: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
