package engine

import (
	"fmt"
	"strings"
)

// Record is one row of a dataset keyed by column name.
// An absent key and a nil value are both treated as missing.
type Record map[string]interface{}

// Dataset is an ordered, read-only table of records sharing one column set.
// It is safe for concurrent readers once constructed.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Record
}

// NewDataset builds a dataset from a header and its rows. Rows are copied so
// later changes to the caller's maps are not observed.
func NewDataset(columns []string, rows []Record) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if strings.TrimSpace(col) == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[col]; dup {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[col] = i
	}

	copied := make([]Record, len(rows))
	for i, rec := range rows {
		if rec == nil {
			return nil, fmt.Errorf("row %d is nil", i)
		}
		copied[i] = rec.clone()
	}

	return &Dataset{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    copied,
	}, nil
}

// Columns returns the column names in source order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// HasColumn reports whether name is part of the schema.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) Record {
	return d.rows[i].clone()
}

// Value returns the raw value of column col in row i.
func (d *Dataset) Value(i int, col string) (interface{}, bool) {
	v, ok := d.rows[i][col]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// missingColumns lists the required columns absent from the schema,
// deduplicated and in request order.
func (d *Dataset) missingColumns(required []string) []string {
	var missing []string
	seen := make(map[string]bool, len(required))
	for _, col := range required {
		if seen[col] {
			continue
		}
		seen[col] = true
		if !d.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
