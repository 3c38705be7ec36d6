package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aarelaponin/archi-reports/internal/archimate"
	"github.com/aarelaponin/archi-reports/internal/export"
	"github.com/aarelaponin/archi-reports/internal/httpserver"
	"github.com/aarelaponin/archi-reports/internal/model"
	"github.com/aarelaponin/archi-reports/internal/report"
	"github.com/aarelaponin/archi-reports/internal/store"
	"golang.org/x/sync/errgroup"
)

// run analyzes the model file, renders the requested report, and optionally
// records the run and serves the result over HTTP.
func run(cfg appConfig) error {
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("reading model file: %w", err)
	}

	analyzer, err := archimate.NewAnalyzer(string(data))
	if err != nil {
		return err
	}
	result := analyzer.Analyze()

	var st *store.Store
	if cfg.DBPath != "" {
		st, err = store.NewStore(cfg.DBPath, cfg.QueryTimeout)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer st.Close()

		if _, err := st.SaveRun(cfg.File, result); err != nil {
			log.Printf("Warning: failed to record analysis run: %v", err)
		}
	}

	if err := generateReport(cfg, result); err != nil {
		return err
	}

	if cfg.Serve {
		return serveAPI(cfg, result, st)
	}
	return nil
}

func generateReport(cfg appConfig, result model.AnalysisResult) error {
	var exporter model.Exporter
	var csvExporter *export.CSVExporter
	if cfg.Format == "csv" {
		csvExporter = export.NewCSVExporter(fmt.Sprintf("report_%d", cfg.Report), cfg.OutputDir)
		exporter = csvExporter
	} else {
		exporter = export.NewConsoleExporter()
	}

	var rep model.Report
	if cfg.Report == 2 {
		rep = report.NewComponentServicesReport(exporter)
	} else {
		rep = report.NewProcessStatusReport(exporter, cfg.Served)
	}

	if err := rep.Generate(result); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	if csvExporter != nil {
		fmt.Printf("Report written to %s\n", csvExporter.LastPath())
	}
	return nil
}

// serveAPI blocks serving the analysis result until SIGINT/SIGTERM.
func serveAPI(cfg appConfig, result model.AnalysisResult, st *store.Store) error {
	var history httpserver.HistoryStore
	if st != nil {
		history = st
	}

	api := httpserver.NewServer(cfg.APIAddr, result, history)
	if err := api.Start(); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer api.Stop()

	fmt.Printf("Serving analysis API on http://%s (Ctrl+C to stop)\n", api.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	return g.Wait()
}
