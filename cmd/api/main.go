package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jihopark/moneydash/internal/asset"
	assetStore "github.com/jihopark/moneydash/internal/asset/store"
	"github.com/jihopark/moneydash/internal/auth"
	"github.com/jihopark/moneydash/internal/config"
	"github.com/jihopark/moneydash/internal/database"
	moneydashHttp "github.com/jihopark/moneydash/internal/http"
	assetHandler "github.com/jihopark/moneydash/internal/http/asset"
	authHandler "github.com/jihopark/moneydash/internal/http/authgate"
	importHandler "github.com/jihopark/moneydash/internal/http/importcsv"
	reportHandler "github.com/jihopark/moneydash/internal/http/report"
	spendingHandler "github.com/jihopark/moneydash/internal/http/spending"
	thoughtHandler "github.com/jihopark/moneydash/internal/http/thought"
	"github.com/jihopark/moneydash/internal/importer"
	"github.com/jihopark/moneydash/internal/spending"
	spendingStore "github.com/jihopark/moneydash/internal/spending/store"
	"github.com/jihopark/moneydash/internal/thought"
	thoughtStore "github.com/jihopark/moneydash/internal/thought/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cutover, err := cfg.Cutover()
	if err != nil {
		slog.Error("failed to parse cutover date", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		authService     = auth.NewService(cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
		assetService    = asset.NewService(assetStore.New(db))
		thoughtService  = thought.NewService(thoughtStore.New(db))
		spendingService = spending.NewService(spendingStore.New(db))
		importService   = importer.NewService()
	)

	var (
		authH     = authHandler.NewHandler(authService)
		assetH    = assetHandler.NewHandler(assetService)
		reportH   = reportHandler.NewHandler(assetService, cutover)
		thoughtH  = thoughtHandler.NewHandler(thoughtService)
		spendingH = spendingHandler.NewHandler(spendingService)
		importH   = importHandler.NewHandler(importService, assetService)
	)

	router := moneydashHttp.New(authService, authH, assetH, reportH, thoughtH, spendingH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
