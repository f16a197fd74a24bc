// backend-go/cmd/analytics/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/config"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/engine"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/service"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/storage"
	"github.com/andresuchdata/inventory-analytics/backend-go/pkg/logger"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "products",
			Usage:   "Path to a JSON file with the product catalog",
			EnvVars: []string{"ANALYTICS_PRODUCTS_FILE"},
		},
		&cli.StringFlag{
			Name:    "sales",
			Usage:   "Path to a JSON file with the sales history (optional)",
			EnvVars: []string{"ANALYTICS_SALES_FILE"},
		},
		&cli.StringFlag{
			Name:    "db-url",
			Usage:   "Load products and sales from Postgres instead of files",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.IntFlag{
			Name:  "time-range",
			Usage: "Analysis window in days",
			Value: engine.DefaultTimeRange,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for synthetic history generation (0 = wall clock)",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Write the JSON report to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "archive",
			Usage: "Upload the report to the configured S3-compatible archive",
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Run inventory analytics against a product catalog",
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Usage:  "Compute reorder recommendations",
				Flags:  commonFlags(),
				Action: runOperation("recommendations"),
			},
			{
				Name:   "forecast",
				Usage:  "Project 30-day demand per product",
				Flags:  commonFlags(),
				Action: runOperation("forecast"),
			},
			{
				Name:   "abc",
				Usage:  "Classify products into ABC revenue tiers",
				Flags:  commonFlags(),
				Action: runOperation("abc"),
			},
			{
				Name:   "performance",
				Usage:  "Compute catalog-wide performance metrics",
				Flags:  commonFlags(),
				Action: runOperation("performance"),
			},
			{
				Name:   "dashboard",
				Usage:  "Run all four analyses in one report",
				Flags:  commonFlags(),
				Action: runOperation("dashboard"),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("analytics run failed")
	}
}

func runOperation(op string) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx := c.Context

		req, err := loadRequest(ctx, c)
		if err != nil {
			return err
		}

		opts := engine.Options{}
		if seed := c.Int64("seed"); seed != 0 {
			opts.NewSampler = func() engine.Sampler { return engine.NewSampler(seed) }
		}
		analytics := service.NewAnalyticsService(engine.New(opts), cache.NewNoopAnalyticsCache())

		var report any
		switch op {
		case "recommendations":
			report, err = analytics.Recommendations(ctx, req)
		case "forecast":
			report, err = analytics.SalesForecast(ctx, req)
		case "abc":
			report, err = analytics.ABCAnalysis(ctx, req)
		case "performance":
			report, err = analytics.PerformanceMetrics(ctx, req)
		case "dashboard":
			report, err = analytics.Dashboard(ctx, req)
		default:
			return fmt.Errorf("unknown operation: %s", op)
		}
		if err != nil {
			return err
		}

		return writeReport(ctx, c, op, report)
	}
}

// loadRequest materializes the engine inputs from Postgres or JSON files.
func loadRequest(ctx context.Context, c *cli.Context) (domain.AnalyticsRequest, error) {
	req := domain.AnalyticsRequest{TimeRange: c.Int("time-range")}

	if dbURL := c.String("db-url"); dbURL != "" {
		db, err := postgres.NewDBFromURL(dbURL)
		if err != nil {
			return req, err
		}
		defer db.Close()

		repo := postgres.NewCatalogRepository(db)
		if req.Products, err = repo.ListProducts(ctx); err != nil {
			return req, err
		}

		since := time.Now().AddDate(0, 0, -req.TimeRange)
		if req.SalesHistory, err = repo.ListSales(ctx, since); err != nil {
			return req, err
		}
		return req, nil
	}

	productsPath := c.String("products")
	if productsPath == "" {
		return req, fmt.Errorf("either --products or --db-url is required")
	}
	if err := readJSONFile(productsPath, &req.Products); err != nil {
		return req, fmt.Errorf("failed to read products: %w", err)
	}

	if salesPath := c.String("sales"); salesPath != "" {
		if err := readJSONFile(salesPath, &req.SalesHistory); err != nil {
			return req, fmt.Errorf("failed to read sales history: %w", err)
		}
	}

	return req, nil
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func writeReport(ctx context.Context, c *cli.Context, op string, report any) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Log.Info().Str("path", out).Msg("report written")
	} else {
		fmt.Println(string(payload))
	}

	if c.Bool("archive") {
		archive, err := storage.NewMinioClient(config.Load().Archive)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("reports/%s/%s.json", op, time.Now().Format("20060102T150405"))
		if err := archive.UploadObject(ctx, key, payload); err != nil {
			return err
		}
		logger.Log.Info().Str("key", key).Msg("report archived")
	}

	return nil
}
