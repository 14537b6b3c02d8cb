package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-report/internal/api"
	"go-inventory-report/internal/api/handler"
	"go-inventory-report/internal/config"
	"go-inventory-report/internal/session"
	"go-inventory-report/internal/store"
	"go-inventory-report/pkg/router"
	"go-inventory-report/pkg/utils"
)

// @title Inventory Report API
// @version 1.0
// @description Upload inventory exports and rank products by revenue, stock on hand and returns.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.ParseConfigFromArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer db.Close()

	h := handler.New(cfg, session.NewRegistry(cfg.MaxSessions), db, utils.NewOutputManager(cfg.ExportDir))

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r, h)

	// Start server
	if err := r.Start(ctx, cfg.Addr); err != nil {
		log.Printf("❌ Server error: %v", err)
		db.Close()
		os.Exit(1)
	}
}
