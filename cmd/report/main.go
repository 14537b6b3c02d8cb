package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-report/internal/config"
	"go-inventory-report/internal/export"
	"go-inventory-report/internal/ingest"
	"go-inventory-report/internal/model"
	"go-inventory-report/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("❌ %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	file := fs.String("file", "", "CSV or XLSX inventory export (path or http(s) URL)")
	sheet := fs.String("sheet", "", "workbook sheet (default first sheet)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	exportPath := fs.String("export", "", "also export the raw dataset to this .csv or .json file")

	cfg, err := config.ParseConfigFromArgs(fs, args)
	if err != nil {
		return err
	}
	if *file == "" {
		fs.Usage()
		return errors.New("-file is required")
	}

	ds, err := ingest.Load(ctx, *file, cfg.IngestOptions(*sheet))
	if err != nil {
		return err
	}

	rep := report.Build(ds, *file, cfg.ReportConfig())
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else if err := report.WriteText(stdout, rep, report.ParseLanguage(cfg.Lang)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if *exportPath != "" {
		res := export.ToFile(ds, *exportPath, model.ExportInfo{Source: *file})
		if !res.Success {
			return fmt.Errorf("export: %s", res.Error)
		}
	}
	return nil
}
