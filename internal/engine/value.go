package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueExpr extracts the numeric contribution of one row.
type ValueExpr struct {
	columns []string
	eval    func(Record) (decimal.Decimal, error)
}

// Columns lists the columns the expression reads.
func (v ValueExpr) Columns() []string { return append([]string(nil), v.columns...) }

// Eval computes the value for rec. Failures wrap ErrMissingValue or ErrNotNumeric.
func (v ValueExpr) Eval(rec Record) (decimal.Decimal, error) {
	if v.eval == nil {
		return decimal.Zero, fmt.Errorf("empty value expression: %w", ErrMissingValue)
	}
	return v.eval(rec)
}

// ColumnValue passes a numeric column through unchanged.
func ColumnValue(col string) ValueExpr {
	return ValueExpr{
		columns: []string{col},
		eval: func(rec Record) (decimal.Decimal, error) {
			return numericField(rec, col)
		},
	}
}

// ProductValue multiplies two numeric columns, e.g. quantity * price.
func ProductValue(a, b string) ValueExpr {
	return ValueExpr{
		columns: []string{a, b},
		eval: func(rec Record) (decimal.Decimal, error) {
			x, err := numericField(rec, a)
			if err != nil {
				return decimal.Zero, err
			}
			y, err := numericField(rec, b)
			if err != nil {
				return decimal.Zero, err
			}
			return x.Mul(y), nil
		},
	}
}

// Predicate is an optional row filter.
type Predicate struct {
	columns []string
	match   func(Record) bool
}

// Columns lists the columns the predicate reads.
func (p *Predicate) Columns() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.columns...)
}

// Match reports whether rec passes the filter. A nil predicate keeps every row.
func (p *Predicate) Match(rec Record) bool {
	if p == nil || p.match == nil {
		return true
	}
	return p.match(rec)
}

// Contains keeps rows whose col value is a string containing substr.
// The match is case-sensitive; missing and non-string values never match.
func Contains(col, substr string) *Predicate {
	return &Predicate{
		columns: []string{col},
		match: func(rec Record) bool {
			s, ok := rec[col].(string)
			return ok && strings.Contains(s, substr)
		},
	}
}

func numericField(rec Record, col string) (decimal.Decimal, error) {
	raw, ok := rec[col]
	if !ok || raw == nil {
		return decimal.Zero, &valueError{column: col, err: ErrMissingValue}
	}
	d, err := toDecimal(raw)
	if err != nil {
		return decimal.Zero, &valueError{column: col, value: raw, err: err}
	}
	return d, nil
}

// toDecimal coerces a cell to a decimal. NaN is an empty cell; infinities
// and unparsable strings are not numeric.
func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case float64:
		return fromFloat(val)
	case float32:
		return fromFloat(float64(val))
	case json.Number:
		return parseDecimal(val.String())
	case string:
		return parseDecimal(val)
	case bool:
		return decimal.Zero, ErrNotNumeric
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case rv.Kind() >= reflect.Uint && rv.Kind() <= reflect.Uint64:
		return decimal.RequireFromString(strconv.FormatUint(rv.Uint(), 10)), nil
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return fromFloat(rv.Float())
	}
	return decimal.Zero, ErrNotNumeric
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) {
		return decimal.Zero, ErrMissingValue
	}
	if math.IsInf(f, 0) {
		return decimal.Zero, ErrNotNumeric
	}
	return decimal.NewFromFloat(f), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrMissingValue
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// Accept what strconv does (e.g. "1e3", "+2.5") before giving up.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return decimal.Zero, ErrNotNumeric
		}
		return fromFloat(f)
	}
	return d, nil
}

// groupKey renders a grouping value. Integral floats print without a
// fractional part so 7 and 7.0 land in the same bucket.
func groupKey(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		if math.IsNaN(val) {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		if math.IsNaN(float64(val)) {
			return "", false
		}
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	default:
		return fmt.Sprint(val), true
	}
}
