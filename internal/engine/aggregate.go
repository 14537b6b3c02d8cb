package engine

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of groups kept when a request leaves Limit at zero.
const DefaultTopN = 10

// RowPolicy decides what happens to a row whose value is present but not numeric.
type RowPolicy int

const (
	// SkipInvalidRows drops the row from the sum and counts it in Result.Invalid.
	SkipInvalidRows RowPolicy = iota
	// RejectInvalidRows aborts the aggregation with an *InvalidValueError.
	RejectInvalidRows
)

func (p RowPolicy) String() string {
	switch p {
	case RejectInvalidRows:
		return "reject"
	default:
		return "skip"
	}
}

// Option configures a single aggregation run.
type Option func(*options)

type options struct {
	policy RowPolicy
}

// WithRowPolicy selects how wrong-typed values are handled.
func WithRowPolicy(p RowPolicy) Option {
	return func(o *options) { o.policy = p }
}

// Request describes one grouped aggregation.
type Request struct {
	Name   string
	Key    string
	Value  ValueExpr
	Filter *Predicate
	// Limit keeps the top N groups: 0 means DefaultTopN, negative keeps all.
	Limit int
}

// Row is one (key, total) pair of a result.
type Row struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// Result is the ranked outcome of a Request.
type Result struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
	// Groups is the number of distinct keys before truncation.
	Groups int `json:"groups"`
	// Eligible counts rows that contributed to a sum.
	Eligible int `json:"eligible"`
	// Filtered counts rows rejected by the filter.
	Filtered int `json:"filtered"`
	// Missing counts rows skipped for an absent key or value.
	Missing int `json:"missing"`
	// Invalid counts rows skipped for a non-numeric value.
	Invalid int `json:"invalid"`
}

// Empty reports whether no group was produced.
func (r Result) Empty() bool { return len(r.Rows) == 0 }

// Skipped is the row-level warning count.
func (r Result) Skipped() int { return r.Missing + r.Invalid }

// RequiredColumns lists every column the request reads.
func (req Request) RequiredColumns() []string {
	cols := []string{req.Key}
	cols = append(cols, req.Value.Columns()...)
	cols = append(cols, req.Filter.Columns()...)
	return cols
}

// Aggregate runs filter, group, sum, sort and truncate over ds.
//
// Columns are checked against the schema before any row is read; a missing
// column yields *MissingColumnsError and no result. Rows whose key or value is
// missing are skipped. Ties keep the order in which keys were first seen.
func Aggregate(ds *Dataset, req Request, opts ...Option) (Result, error) {
	o := options{policy: SkipInvalidRows}
	for _, opt := range opts {
		opt(&o)
	}

	if missing := ds.missingColumns(req.RequiredColumns()); len(missing) > 0 {
		return Result{}, &MissingColumnsError{Request: req.Name, Columns: missing}
	}

	res := Result{Name: req.Name}
	sums := make(map[string]decimal.Decimal)
	var order []string

	for i, rec := range ds.rows {
		if !req.Filter.Match(rec) {
			res.Filtered++
			continue
		}

		key, ok := groupKey(rec[req.Key])
		if !ok {
			res.Missing++
			continue
		}

		val, err := req.Value.Eval(rec)
		if err != nil {
			if errors.Is(err, ErrMissingValue) {
				res.Missing++
				continue
			}
			if o.policy == RejectInvalidRows {
				ive := &InvalidValueError{Request: req.Name, Row: i}
				var ve *valueError
				if errors.As(err, &ve) {
					ive.Column, ive.Value = ve.column, ve.value
				}
				return Result{}, ive
			}
			res.Invalid++
			continue
		}

		sum, seen := sums[key]
		if !seen {
			order = append(order, key)
		}
		sums[key] = sum.Add(val)
		res.Eligible++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]].GreaterThan(sums[order[j]])
	})

	res.Groups = len(order)
	limit := req.Limit
	if limit == 0 {
		limit = DefaultTopN
	}
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	res.Rows = make([]Row, len(order))
	for i, key := range order {
		res.Rows[i] = Row{Key: key, Total: sums[key].InexactFloat64()}
	}
	return res, nil
}
