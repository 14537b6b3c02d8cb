package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingValue marks a row whose required field is absent or null.
	ErrMissingValue = errors.New("missing value")
	// ErrNotNumeric marks a row whose required field cannot be read as a number.
	ErrNotNumeric = errors.New("value is not numeric")
)

// MissingColumnsError is returned when the dataset schema lacks columns an
// aggregation needs. No partial result accompanies it.
type MissingColumnsError struct {
	Request string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = "`" + c + "`"
	}
	if e.Request == "" {
		return fmt.Sprintf("missing required columns: %s", strings.Join(quoted, ", "))
	}
	return fmt.Sprintf("%s: missing required columns: %s", e.Request, strings.Join(quoted, ", "))
}

// InvalidValueError is returned under RejectInvalidRows for the first row
// whose value cannot be coerced.
type InvalidValueError struct {
	Request string
	Row     int
	Column  string
	Value   interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: %v (%T)", e.Request, e.Row, e.Column, e.Value, e.Value)
}

func (e *InvalidValueError) Unwrap() error { return ErrNotNumeric }

// IsMissingColumns reports whether err carries a MissingColumnsError and
// returns the missing column names.
func IsMissingColumns(err error) ([]string, bool) {
	var mc *MissingColumnsError
	if errors.As(err, &mc) {
		return mc.Columns, true
	}
	return nil, false
}

// valueError ties a row-level failure to the column that caused it.
type valueError struct {
	column string
	value  interface{}
	err    error
}

func (e *valueError) Error() string { return e.column + ": " + e.err.Error() }
func (e *valueError) Unwrap() error { return e.err }
