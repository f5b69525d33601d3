package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Construction-time validation errors
var (
	ErrInvalidPeriod = errors.New("amortization period must be a positive number of months")
	ErrNegativeCost  = errors.New("total cost cannot be negative")
)

// currencyPlaces is the fixed precision for monetary amounts
const currencyPlaces = 2

// Status represents the lifecycle state of a deferred expense asset
type Status string

const (
	StatusActive         Status = "ACTIVE"
	StatusFullyAmortized Status = "FULLY_AMORTIZED"
)

// DeferredExpenseAsset represents a long-term prepaid cost amortized
// straight-line over a fixed number of monthly periods.
// Name, TotalCost, PeriodCount, StartDate and PeriodicAmount are fixed at
// recognition; only BookValue and History change afterwards.
type DeferredExpenseAsset struct {
	ID             uuid.UUID
	Name           string
	TotalCost      decimal.Decimal
	PeriodCount    int
	StartDate      time.Time
	PeriodicAmount decimal.Decimal // per-period charge, rounded to currency precision
	BookValue      decimal.Decimal // remaining unamortized balance
	History        []AmortizationRecord
}

// AmortizationRecord is one applied period charge in the asset's history
type AmortizationRecord struct {
	PeriodDate         time.Time
	AmortizedAmount    decimal.Decimal
	RemainingBookValue decimal.Decimal
}

// AmortizationOutcome reports the result of a single amortization call.
// Applied is false when the asset was already fully amortized and the call
// was a no-op.
type AmortizationOutcome struct {
	Applied    bool
	PeriodDate time.Time
	Amount     decimal.Decimal
	BookValue  decimal.Decimal
}

// StatusReport is a point-in-time view of the asset's state
type StatusReport struct {
	Status    Status
	BookValue decimal.Decimal
}

// NewDeferredExpenseAsset performs initial recognition of a deferred expense.
// The periodic amount is TotalCost / PeriodCount rounded half away from zero
// to currency precision; the final period absorbs any rounding residue.
func NewDeferredExpenseAsset(name string, totalCost decimal.Decimal, periodCount int, startDate time.Time) (*DeferredExpenseAsset, error) {
	if periodCount <= 0 {
		return nil, ErrInvalidPeriod
	}
	if totalCost.IsNegative() {
		return nil, ErrNegativeCost
	}

	return &DeferredExpenseAsset{
		ID:             uuid.New(),
		Name:           name,
		TotalCost:      totalCost,
		PeriodCount:    periodCount,
		StartDate:      startDate,
		PeriodicAmount: totalCost.DivRound(decimal.NewFromInt(int64(periodCount)), currencyPlaces),
		BookValue:      totalCost,
		History:        []AmortizationRecord{},
	}, nil
}

// AmortizeForPeriod applies one period's charge against the book value.
// The charge is min(BookValue, PeriodicAmount), so the last non-zero period
// may differ from the fixed amount by the accumulated rounding residue.
// Once the book value reaches zero the call is an idempotent no-op.
//
// The period date is recorded for audit only; it never affects the amount,
// and chronological ordering of successive calls is the caller's concern.
func (a *DeferredExpenseAsset) AmortizeForPeriod(periodDate time.Time) AmortizationOutcome {
	if a.BookValue.LessThanOrEqual(decimal.Zero) {
		return AmortizationOutcome{
			Applied:    false,
			PeriodDate: periodDate,
			Amount:     decimal.Zero,
			BookValue:  a.BookValue,
		}
	}

	amount := decimal.Min(a.BookValue, a.PeriodicAmount)
	a.BookValue = a.BookValue.Sub(amount)

	a.History = append(a.History, AmortizationRecord{
		PeriodDate:         periodDate,
		AmortizedAmount:    amount,
		RemainingBookValue: a.BookValue,
	})

	return AmortizationOutcome{
		Applied:    true,
		PeriodDate: periodDate,
		Amount:     amount,
		BookValue:  a.BookValue,
	}
}

// CurrentStatus returns the asset's state without mutating it
func (a *DeferredExpenseAsset) CurrentStatus() StatusReport {
	status := StatusActive
	if !a.BookValue.IsPositive() {
		status = StatusFullyAmortized
	}
	return StatusReport{Status: status, BookValue: a.BookValue}
}

// TotalAmortized returns the sum of all applied period charges
func (a *DeferredExpenseAsset) TotalAmortized() decimal.Decimal {
	total := decimal.Zero
	for _, record := range a.History {
		total = total.Add(record.AmortizedAmount)
	}
	return total
}
