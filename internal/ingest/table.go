package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"go-inventory-report/internal/engine"
	"go-inventory-report/pkg/utils"
)

// tableBuilder turns a header and raw string cells into a typed dataset.
type tableBuilder struct {
	headers []string
	rows    []engine.Record
}

func newTableBuilder(raw []string) *tableBuilder {
	return &tableBuilder{headers: cleanHeaders(raw)}
}

// add appends one row. Short rows are padded with missing values; a row with
// more non-empty cells than the header is rejected.
func (b *tableBuilder) add(line int, cells []string) error {
	if len(cells) > len(b.headers) {
		for _, extra := range cells[len(b.headers):] {
			if strings.TrimSpace(extra) != "" {
				return fmt.Errorf("line %d: expected %d fields, saw %d", line, len(b.headers), len(cells))
			}
		}
	}

	rec := make(engine.Record, len(b.headers))
	for i, h := range b.headers {
		if i < len(cells) {
			rec[h] = utils.ParseValue(cells[i])
		} else {
			rec[h] = nil
		}
	}
	b.rows = append(b.rows, rec)
	return nil
}

func (b *tableBuilder) dataset() (*engine.Dataset, error) {
	return engine.NewDataset(b.headers, b.rows)
}

// cleanHeaders trims whitespace and quotes, names blank headers
// "Unnamed: N" and suffixes repeats with ".1", ".2", ...
func cleanHeaders(raw []string) []string {
	out := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	repeats := make(map[string]int)
	for i, h := range raw {
		h = strings.TrimSpace(strings.ReplaceAll(h, `"`, ""))
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for used[name] {
			repeats[h]++
			name = h + "." + strconv.Itoa(repeats[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
