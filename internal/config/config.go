package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"go-inventory-report/internal/engine"
	"go-inventory-report/internal/ingest"
	"go-inventory-report/internal/report"
)

// Config holds the settings shared by the CLI and the HTTP service.
type Config struct {
	Addr      string `env:"REPORT_ADDR" envDefault:":8080"`
	DBPath    string `env:"REPORT_DB_PATH" envDefault:"inventory_report.db"`
	ExportDir string `env:"REPORT_EXPORT_DIR" envDefault:"exports"`

	TopN            int    `env:"REPORT_TOP_N" envDefault:"10"`
	KeyColumn       string `env:"REPORT_KEY_COLUMN" envDefault:"SKU"`
	QuantityColumn  string `env:"REPORT_QUANTITY_COLUMN" envDefault:"quantity"`
	PriceColumn     string `env:"REPORT_PRICE_COLUMN" envDefault:"price"`
	EventTypeColumn string `env:"REPORT_EVENT_TYPE_COLUMN" envDefault:"event_type"`
	ReturnMarker    string `env:"REPORT_RETURN_MARKER" envDefault:"Return"`
	StrictRows      bool   `env:"REPORT_STRICT_ROWS" envDefault:"false"`

	Encoding string `env:"REPORT_ENCODING" envDefault:"iso-8859-1"`
	Lang     string `env:"REPORT_LANG" envDefault:"en"`

	MaxUploadBytes int64 `env:"REPORT_MAX_UPLOAD_BYTES" envDefault:"33554432"`
	MaxSessions    int   `env:"REPORT_MAX_SESSIONS" envDefault:"32"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfigFromArgs reads the environment, then lets flags in args
// override it. Callers may register their own flags on fs beforehand.
func ParseConfigFromArgs(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers flags for every field, using the current values as
// defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite database path")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "directory for export files")
	fs.IntVar(&c.TopN, "top", c.TopN, "rows per ranking (negative for all)")
	fs.StringVar(&c.KeyColumn, "key", c.KeyColumn, "product key column")
	fs.StringVar(&c.QuantityColumn, "quantity", c.QuantityColumn, "quantity column")
	fs.StringVar(&c.PriceColumn, "price", c.PriceColumn, "unit price column")
	fs.StringVar(&c.EventTypeColumn, "event-type", c.EventTypeColumn, "event type column")
	fs.StringVar(&c.ReturnMarker, "return-marker", c.ReturnMarker, "substring marking a return event")
	fs.BoolVar(&c.StrictRows, "strict", c.StrictRows, "fail on non-numeric values instead of skipping the row")
	fs.StringVar(&c.Encoding, "encoding", c.Encoding, "CSV text encoding")
	fs.StringVar(&c.Lang, "lang", c.Lang, "language tag for number formatting")
	fs.Int64Var(&c.MaxUploadBytes, "max-upload", c.MaxUploadBytes, "maximum upload size in bytes")
	fs.IntVar(&c.MaxSessions, "max-sessions", c.MaxSessions, "datasets kept in memory")
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	for name, v := range map[string]string{
		"key column":        c.KeyColumn,
		"quantity column":   c.QuantityColumn,
		"price column":      c.PriceColumn,
		"event type column": c.EventTypeColumn,
	} {
		if v == "" {
			return fmt.Errorf("invalid config: %s is empty", name)
		}
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid config: max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// Policy maps StrictRows to an engine row policy.
func (c Config) Policy() engine.RowPolicy {
	if c.StrictRows {
		return engine.RejectInvalidRows
	}
	return engine.SkipInvalidRows
}

// ReportConfig returns the column mapping for report.Build.
func (c Config) ReportConfig() report.Config {
	return report.Config{
		KeyColumn:       c.KeyColumn,
		QuantityColumn:  c.QuantityColumn,
		PriceColumn:     c.PriceColumn,
		EventTypeColumn: c.EventTypeColumn,
		ReturnMarker:    c.ReturnMarker,
		TopN:            c.TopN,
		Policy:          c.Policy(),
	}
}

// IngestOptions returns the parsing options for uploaded files.
func (c Config) IngestOptions(sheet string) ingest.Options {
	return ingest.Options{
		CSV:   ingest.CSVOptions{Encoding: c.Encoding},
		Sheet: sheet,
	}
}
