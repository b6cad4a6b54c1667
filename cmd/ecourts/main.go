package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aakritidhardubey/ecourts-scraper/config"
	"github.com/aakritidhardubey/ecourts-scraper/extract"
	"github.com/aakritidhardubey/ecourts-scraper/models"
	"github.com/aakritidhardubey/ecourts-scraper/report"
	"github.com/aakritidhardubey/ecourts-scraper/scraper"
	"github.com/urfave/cli/v2"
)

// queryDateLayout is the DD-MM-YYYY form the portal's calendar uses.
const queryDateLayout = "02-01-2006"

func main() {
	app := &cli.App{
		Name:  "ecourts",
		Usage: "Search case status or download cause lists from the eCourts portal",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search for a specific case using its CNR number",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "cnr",
						Usage:    "CNR number of the case",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "download-pdf",
						Usage: "Download the final order PDF if available",
					},
				},
				Action: runSearch,
			},
			{
				Name:  "causelist",
				Usage: "Interactively download the entire cause list for a court",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "tomorrow",
						Usage: "Fetch tomorrow's list instead of today's",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to the court codes file",
						Value: "config.json",
					},
				},
				Action: runCauseList,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runSearch(c *cli.Context) error {
	cfg := config.Load()
	initLogger(cfg.Log)

	sess, err := scraper.NewSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	statusClass := "case_status_table"
	if len(cfg.Locator.StatusTableClasses) > 0 {
		statusClass = cfg.Locator.StatusTableClasses[0]
	}
	markup, err := sess.SearchCaseStatus(context.Background(), c.String("cnr"), statusClass)
	if err != nil {
		return err
	}

	doc, err := extract.ParseDocument(markup)
	if err != nil {
		return err
	}
	table, err := extract.LocateTable(doc, cfg.Locator.StatusTableClasses)
	if err != nil {
		return err
	}

	fields := extract.InterpretStatus(table)
	listing, listErr := extract.DetermineListing(fields, time.Now())
	if listErr != nil {
		// Malformed dates are reported, never fatal: the rest of the
		// details still print, with the determination left Unknown.
		slog.Warn("could not interpret the next hearing date", "error", listErr)
	}
	report.PrintCaseStatus(fields, listing)

	if c.Bool("download-pdf") {
		name, data, dlErr := sess.DownloadFinalOrder(context.Background())
		if dlErr != nil {
			slog.Warn("final order not downloaded", "error", dlErr)
			return nil
		}
		savedPath, saveErr := report.SaveOrderPDF(cfg.Output.OrdersDir, name, data)
		if saveErr != nil {
			return saveErr
		}
		fmt.Printf("PDF saved to: %s\n", savedPath)
	}
	return nil
}

func runCauseList(c *cli.Context) error {
	cfg := config.Load()
	initLogger(cfg.Log)

	court, err := config.LoadCourtConfig(c.String("config"))
	if err != nil {
		return models.NewScrapeError(models.ErrCodeInvalidInput,
			"court codes file is required for cause lists", err)
	}

	target := time.Now()
	if c.Bool("tomorrow") {
		target = target.AddDate(0, 0, 1)
	}
	queryDate := target.Format(queryDateLayout)

	sess, err := scraper.NewSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	result, err := sess.DownloadCauseList(context.Background(), court, queryDate, cfg.Locator)
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("The results table held no case rows.")
		return nil
	}

	savedPath, err := report.SaveCauseList(cfg.Output.CauseListDir, result, time.Now())
	if err != nil {
		return err
	}
	report.PrintCauseListSummary(result, savedPath)
	return nil
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
