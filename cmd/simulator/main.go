package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ledgersim/deferral-backend/internal/adapter/console"
	"github.com/ledgersim/deferral-backend/internal/adapter/repository/inmemory"
	"github.com/ledgersim/deferral-backend/internal/usecase/amortization"
	"github.com/ledgersim/deferral-backend/internal/usecase/simulation"
)

// config holds the simulation parameters, loaded from the environment.
// Defaults reproduce a 5-year office renovation amortized monthly.
type config struct {
	AssetName    string
	TotalCost    decimal.Decimal
	PeriodCount  int
	StartDate    time.Time
	ExtraPeriods int
	ShowSchedule bool
}

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Wire adapters and use cases
	journalRepo := inmemory.NewJournalRepository()
	renderer := console.NewRenderer(os.Stdout)
	service := amortization.NewService(journalRepo, renderer)
	runner := simulation.NewRunner(service, journalRepo)

	logger.Info("starting amortization simulation",
		zap.String("asset", cfg.AssetName),
		zap.String("total_cost", cfg.TotalCost.StringFixed(2)),
		zap.Int("months", cfg.PeriodCount),
		zap.Time("start_date", cfg.StartDate),
	)

	ctx := context.Background()
	result, err := runner.Run(ctx, simulation.Input{
		Name:         cfg.AssetName,
		TotalCost:    cfg.TotalCost,
		PeriodCount:  cfg.PeriodCount,
		StartDate:    cfg.StartDate,
		ExtraPeriods: cfg.ExtraPeriods,
	})
	if err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	if cfg.ShowSchedule {
		fmt.Println()
		fmt.Println(">>> Planned schedule (derived, not replayed):")
		for _, period := range amortization.ProjectSchedule(result.Asset) {
			fmt.Printf("  %3d  %s  %12s  remaining %12s\n",
				period.Sequence,
				period.PeriodDate.Format("2006-01-02"),
				period.Amount.StringFixed(2),
				period.BookValueAfter.StringFixed(2),
			)
		}
	}

	fmt.Println()
	fmt.Printf("Total amortized:        %s\n", result.TotalAmortized.StringFixed(2))
	fmt.Printf("Final book value:       %s\n", result.FinalBookValue.StringFixed(2))
	fmt.Printf("Journal entries posted: %d\n", result.JournalEntries)

	logger.Info("simulation finished",
		zap.String("total_amortized", result.TotalAmortized.StringFixed(2)),
		zap.String("final_book_value", result.FinalBookValue.StringFixed(2)),
		zap.Int("journal_entries", result.JournalEntries),
		zap.String("status", string(result.Asset.CurrentStatus().Status)),
	)
}

func loadConfig() (*config, error) {
	totalCost, err := decimal.NewFromString(getEnv("TOTAL_COST", "120000.00"))
	if err != nil {
		return nil, fmt.Errorf("parse TOTAL_COST: %w", err)
	}

	periodCount, err := getEnvInt("AMORTIZATION_MONTHS", 60)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", getEnv("START_DATE", "2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("parse START_DATE: %w", err)
	}

	extraPeriods, err := getEnvInt("EXTRA_PERIODS", 2)
	if err != nil {
		return nil, err
	}

	return &config{
		AssetName:    getEnv("ASSET_NAME", "Office renovation"),
		TotalCost:    totalCost,
		PeriodCount:  periodCount,
		StartDate:    startDate,
		ExtraPeriods: extraPeriods,
		ShowSchedule: getEnv("SHOW_SCHEDULE", "false") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}
