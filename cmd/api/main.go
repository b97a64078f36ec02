package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	catalogStore "github.com/trenthp/raiderCompanion/internal/catalog/store"
	"github.com/trenthp/raiderCompanion/internal/config"
	"github.com/trenthp/raiderCompanion/internal/correction"
	correctionStore "github.com/trenthp/raiderCompanion/internal/correction/store"
	"github.com/trenthp/raiderCompanion/internal/database"
	"github.com/trenthp/raiderCompanion/internal/gamedata"
	companionHttp "github.com/trenthp/raiderCompanion/internal/http"
	catalogHandler "github.com/trenthp/raiderCompanion/internal/http/catalog"
	correctionHandler "github.com/trenthp/raiderCompanion/internal/http/correction"
	stashHandler "github.com/trenthp/raiderCompanion/internal/http/stash"
	importHandler "github.com/trenthp/raiderCompanion/internal/http/stashimport"
	"github.com/trenthp/raiderCompanion/internal/ocr"
	"github.com/trenthp/raiderCompanion/internal/ocr/tesseract"
	"github.com/trenthp/raiderCompanion/internal/stash"
	stashStore "github.com/trenthp/raiderCompanion/internal/stash/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		catalogService    = catalog.NewService(catalogStore.New(db))
		stashService      = stash.NewService(stashStore.New(db))
		correctionService = correction.NewService(correctionStore.New(db))
		gamedataService   = gamedata.NewService(catalogService, cfg.GameData.BaseURL, cfg.GameData.Token)
		pipeline          = ocr.NewPipeline(tesseract.New(cfg.OCR.Language), cfg.OCR.ConfidenceThreshold)
	)

	var (
		catalogH    = catalogHandler.NewHandler(catalogService, gamedataService)
		importH     = importHandler.NewHandler(pipeline, catalogService, cfg.OCR.ConfidenceThreshold, cfg.OCR.Timeout)
		stashH      = stashHandler.NewHandler(stashService)
		correctionH = correctionHandler.NewHandler(correctionService)
	)

	router := companionHttp.New(catalogH, importH, stashH, correctionH, []byte(cfg.Auth.Secret), cfg.Server.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
