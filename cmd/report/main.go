// Command report renders the funding dashboard to a standalone HTML file,
// for sharing the page without running the web server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"fundlens/internal/config"
	"fundlens/internal/dataset"
	"fundlens/internal/infrastructure"
	"fundlens/internal/services"
)

func main() {
	dataFile := flag.String("data", "", "path to the funding rounds workbook (defaults to the configured dataset)")
	outFile := flag.String("out", "dashboard.html", "output path for the rendered dashboard")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	path := cfg.DatasetPath()
	if *dataFile != "" {
		path = *dataFile
	}

	logger.Info("Rendering dashboard report",
		"dataset", path,
		"out", *outFile)

	store := dataset.NewStore(path, logger)
	dashboard := services.NewDashboardService(store, logger)

	if dir := filepath.Dir(*outFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("Failed to create output directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	f, err := os.Create(*outFile)
	if err != nil {
		logger.Error("Failed to create output file", "path", *outFile, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dashboard.RenderDashboard(context.Background(), f); err != nil {
		logger.Error("Failed to render dashboard", "error", err)
		os.Exit(1)
	}

	logger.Info("Dashboard report written", "path", *outFile)
}
