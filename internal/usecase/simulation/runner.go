package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/deferral-backend/internal/calendar"
	"github.com/ledgersim/deferral-backend/internal/domain"
	"github.com/ledgersim/deferral-backend/internal/usecase/amortization"
)

// Input defines one full amortization lifecycle to replay
type Input struct {
	Name        string
	TotalCost   decimal.Decimal
	PeriodCount int
	StartDate   time.Time

	// ExtraPeriods is how many calls to make past the amortization period,
	// to exercise the terminal no-op state.
	ExtraPeriods int
}

// Result summarizes a completed replay
type Result struct {
	Asset          *domain.DeferredExpenseAsset
	Outcomes       []domain.AmortizationOutcome
	TotalAmortized decimal.Decimal
	FinalBookValue decimal.Decimal
	JournalEntries int
}

// Runner replays an asset's lifecycle: recognition, then one amortization
// call per month for the whole period plus any extra no-op periods.
type Runner struct {
	Service     *amortization.Service
	JournalRepo domain.JournalRepository
}

// NewRunner creates a new Runner instance
func NewRunner(service *amortization.Service, journalRepo domain.JournalRepository) *Runner {
	return &Runner{
		Service:     service,
		JournalRepo: journalRepo,
	}
}

// Run drives the asset period by period. The first period falls on the
// start date; every later one is the previous date advanced by one
// calendar month.
func (r *Runner) Run(ctx context.Context, input Input) (*Result, error) {
	asset, err := r.Service.Recognize(ctx, amortization.RecognizeInput{
		Name:        input.Name,
		TotalCost:   input.TotalCost,
		PeriodCount: input.PeriodCount,
		StartDate:   input.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("recognize asset: %w", err)
	}

	totalPeriods := input.PeriodCount + input.ExtraPeriods
	outcomes := make([]domain.AmortizationOutcome, 0, totalPeriods)

	current := input.StartDate
	for period := 0; period < totalPeriods; period++ {
		if period > 0 {
			current = calendar.AddMonths(current, 1)
		}

		outcome, err := r.Service.AmortizeForPeriod(ctx, asset, current)
		if err != nil {
			return nil, fmt.Errorf("amortize period %d: %w", period+1, err)
		}
		outcomes = append(outcomes, outcome)
	}

	entryCount, err := r.JournalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count journal entries: %w", err)
	}

	return &Result{
		Asset:          asset,
		Outcomes:       outcomes,
		TotalAmortized: asset.TotalAmortized(),
		FinalBookValue: asset.BookValue,
		JournalEntries: entryCount,
	}, nil
}
