package ingest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go-inventory-report/internal/engine"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding matches the Latin-1 exports produced by seller tooling.
const DefaultEncoding = "iso-8859-1"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions controls CSV decoding.
type CSVOptions struct {
	// Encoding is one of iso-8859-1 (default), windows-1252 or utf-8.
	Encoding string
	// Delimiter defaults to ','.
	Delimiter rune
}

// ReadCSV parses a delimited file into a dataset. A UTF-8 byte order mark
// wins over the configured encoding.
func ReadCSV(ctx context.Context, r io.Reader, opts CSVOptions) (*engine.Dataset, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		enc = unicode.UTF8BOM
	}

	csvReader := csv.NewReader(enc.NewDecoder().Reader(br))
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		csvReader.Comma = opts.Delimiter
	}

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	b := newTableBuilder(headers)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if err := b.add(line, record); err != nil {
			return nil, err
		}
	}

	return b.dataset()
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
