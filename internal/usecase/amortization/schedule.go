package amortization

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgersim/deferral-backend/internal/calendar"
	"github.com/ledgersim/deferral-backend/internal/domain"
)

// PlannedPeriod represents one row of a projected amortization schedule
type PlannedPeriod struct {
	Sequence       int
	PeriodDate     time.Time
	Amount         decimal.Decimal
	BookValueAfter decimal.Decimal
}

// ProjectSchedule derives the full planned schedule for an asset without
// mutating it. The first period falls on the start date and each following
// period one calendar month later (month-end days clip, matching the dates
// an actual period-by-period run records). The final row absorbs the
// rounding residue, so the amounts always sum to the total cost exactly.
func ProjectSchedule(asset *domain.DeferredExpenseAsset) []PlannedPeriod {
	periods := make([]PlannedPeriod, 0, asset.PeriodCount)
	if !asset.PeriodicAmount.IsPositive() {
		return periods
	}

	remaining := asset.TotalCost
	date := asset.StartDate
	for seq := 1; remaining.IsPositive(); seq++ {
		amount := decimal.Min(remaining, asset.PeriodicAmount)
		remaining = remaining.Sub(amount)

		periods = append(periods, PlannedPeriod{
			Sequence:       seq,
			PeriodDate:     date,
			Amount:         amount,
			BookValueAfter: remaining,
		})
		date = calendar.AddMonths(date, 1)
	}
	return periods
}
