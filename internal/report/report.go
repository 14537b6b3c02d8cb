package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/ingest"
)

// PreviewRows is the number of leading rows shown with a report.
const PreviewRows = 5

// Section statuses. NoData and Unavailable stay distinct so a caller can say
// "nothing matched" instead of "this file cannot be analysed".
const (
	StatusOK          = "ok"
	StatusNoData      = "no_data"
	StatusUnavailable = "unavailable"
)

// Config names the columns the three standard aggregations read.
type Config struct {
	KeyColumn       string
	QuantityColumn  string
	PriceColumn     string
	EventTypeColumn string
	ReturnMarker    string
	TopN            int
	Policy          engine.RowPolicy
}

// DefaultConfig matches the column names of a seller inventory export.
func DefaultConfig() Config {
	return Config{
		KeyColumn:       "SKU",
		QuantityColumn:  "quantity",
		PriceColumn:     "price",
		EventTypeColumn: "event_type",
		ReturnMarker:    "Return",
		TopN:            engine.DefaultTopN,
		Policy:          engine.SkipInvalidRows,
	}
}

// Section is one rendered aggregation.
type Section struct {
	Name           string       `json:"name"`
	Title          string       `json:"title"`
	KeyLabel       string       `json:"key_label"`
	Unit           string       `json:"unit"`
	Status         string       `json:"status"`
	Rows           []engine.Row `json:"rows"`
	Groups         int          `json:"groups"`
	Missing        int          `json:"missing"`
	Invalid        int          `json:"invalid"`
	Warning        string       `json:"warning,omitempty"`
	MissingColumns []string     `json:"missing_columns,omitempty"`
}

// Report is the full analysis of one dataset.
type Report struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	GeneratedAt time.Time       `json:"generated_at"`
	RowCount    int             `json:"row_count"`
	Columns     []string        `json:"columns"`
	Preview     []engine.Record `json:"preview"`
	Sections    []Section       `json:"sections"`
}

// Section returns the section with the given name.
func (r Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Build runs the revenue, stock and returns aggregations. Each runs on its
// own: a failure in one is reported in its section and the rest still complete.
func Build(ds *engine.Dataset, source string, cfg Config) Report {
	rep := Report{
		ID:          uuid.New().String(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		RowCount:    ds.Len(),
		Columns:     ds.Columns(),
		Preview:     ingest.Preview(ds, PreviewRows),
	}

	opts := []engine.Option{engine.WithRowPolicy(cfg.Policy)}

	revenue, err := engine.RevenueByKey(ds, cfg.KeyColumn, cfg.QuantityColumn, cfg.PriceColumn, cfg.TopN, opts...)
	rep.Sections = append(rep.Sections, newSection(cfg, engine.RevenueRequest, revenue, err))

	stock, err := engine.StockByKey(ds, cfg.KeyColumn, cfg.QuantityColumn, cfg.TopN, opts...)
	rep.Sections = append(rep.Sections, newSection(cfg, engine.StockRequest, stock, err))

	returns, err := engine.ReturnsByKey(ds, cfg.KeyColumn, cfg.QuantityColumn, cfg.EventTypeColumn, cfg.ReturnMarker, cfg.TopN, opts...)
	rep.Sections = append(rep.Sections, newSection(cfg, engine.ReturnsRequest, returns, err))

	return rep
}

func newSection(cfg Config, name string, res engine.Result, err error) Section {
	s := Section{
		Name:     name,
		Title:    title(name, cfg.TopN),
		KeyLabel: cfg.KeyColumn,
		Unit:     unit(name),
	}

	if err != nil {
		s.Status = StatusUnavailable
		var mc *engine.MissingColumnsError
		if errors.As(err, &mc) {
			s.MissingColumns = mc.Columns
			s.Warning = missingWarning(cfg, name, mc.Columns)
		} else {
			s.Warning = err.Error()
		}
		return s
	}

	s.Rows = res.Rows
	s.Groups = res.Groups
	s.Missing = res.Missing
	s.Invalid = res.Invalid
	if res.Empty() {
		s.Status = StatusNoData
		s.Warning = emptyWarning(name)
		return s
	}
	s.Status = StatusOK
	return s
}

func title(name string, topN int) string {
	if topN == 0 {
		topN = engine.DefaultTopN
	}
	switch name {
	case engine.RevenueRequest:
		if topN < 0 {
			return "All products by revenue"
		}
		return fmt.Sprintf("Top %d products by revenue", topN)
	case engine.StockRequest:
		if topN < 0 {
			return "Stock on hand per product"
		}
		return fmt.Sprintf("Stock on hand per product (top %d)", topN)
	default:
		if topN < 0 {
			return "All products with returns"
		}
		return fmt.Sprintf("Top %d products with the most returns", topN)
	}
}

func unit(name string) string {
	switch name {
	case engine.RevenueRequest:
		return "Revenue (€)"
	case engine.StockRequest:
		return "Stock (units)"
	default:
		return "Returns (units)"
	}
}

func missingWarning(cfg Config, name string, missing []string) string {
	var want []string
	switch name {
	case engine.RevenueRequest:
		want = []string{cfg.KeyColumn, cfg.QuantityColumn, cfg.PriceColumn}
	case engine.StockRequest:
		want = []string{cfg.KeyColumn, cfg.QuantityColumn}
	default:
		return fmt.Sprintf("No returns data found: the file has no %s column.", quoteJoin(missing))
	}
	return fmt.Sprintf("The file does not contain the expected columns. Make sure %s are present (missing: %s).",
		quoteJoin(want), quoteJoin(missing))
}

func emptyWarning(name string) string {
	if name == engine.ReturnsRequest {
		return "No returns found in this file."
	}
	return "No rows with usable values found."
}

func quoteJoin(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = "`" + c + "`"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	}
}
