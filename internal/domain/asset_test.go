package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewDeferredExpenseAsset(t *testing.T) {
	tests := []struct {
		name         string
		totalCost    string
		periodCount  int
		wantErr      error
		wantPeriodic string
		wantStatus   Status
	}{
		{
			name:         "Even division leaves no residue",
			totalCost:    "120000.00",
			periodCount:  60,
			wantPeriodic: "2000.00",
			wantStatus:   StatusActive,
		},
		{
			name:         "Uneven division rounds half up to currency precision",
			totalCost:    "100.00",
			periodCount:  3,
			wantPeriodic: "33.33",
			wantStatus:   StatusActive,
		},
		{
			name:         "Single period amortizes the full cost at once",
			totalCost:    "4999.99",
			periodCount:  1,
			wantPeriodic: "4999.99",
			wantStatus:   StatusActive,
		},
		{
			name:         "Zero cost is fully amortized from the start",
			totalCost:    "0.00",
			periodCount:  12,
			wantPeriodic: "0.00",
			wantStatus:   StatusFullyAmortized,
		},
		{
			name:        "Zero period count is rejected",
			totalCost:   "100.00",
			periodCount: 0,
			wantErr:     ErrInvalidPeriod,
		},
		{
			name:        "Negative period count is rejected",
			totalCost:   "100.00",
			periodCount: -12,
			wantErr:     ErrInvalidPeriod,
		},
		{
			name:        "Negative cost is rejected",
			totalCost:   "-100.00",
			periodCount: 12,
			wantErr:     ErrNegativeCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totalCost, err := decimal.NewFromString(tt.totalCost)
			require.NoError(t, err)

			asset, err := NewDeferredExpenseAsset("Office renovation", totalCost, tt.periodCount, testStartDate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, asset)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Office renovation", asset.Name)
			assert.Equal(t, tt.periodCount, asset.PeriodCount)
			assert.Equal(t, testStartDate, asset.StartDate)
			assert.Equal(t, tt.wantPeriodic, asset.PeriodicAmount.StringFixed(2))
			assert.True(t, asset.BookValue.Equal(totalCost), "book value must start at total cost")
			assert.Empty(t, asset.History)
			assert.Equal(t, tt.wantStatus, asset.CurrentStatus().Status)
		})
	}
}

func TestAmortizeForPeriod_ExactSchedule(t *testing.T) {
	asset, err := NewDeferredExpenseAsset("Office renovation", decimal.RequireFromString("120000.00"), 60, testStartDate)
	require.NoError(t, err)

	// 60 even charges of 2000.00, then two no-op calls
	for i := 0; i < 62; i++ {
		outcome := asset.AmortizeForPeriod(testStartDate.AddDate(0, i, 0))
		if i < 60 {
			assert.True(t, outcome.Applied)
			assert.Equal(t, "2000.00", outcome.Amount.StringFixed(2))
		} else {
			assert.False(t, outcome.Applied)
			assert.Equal(t, "0.00", outcome.Amount.StringFixed(2))
		}
	}

	assert.Len(t, asset.History, 60)
	assert.Equal(t, "0.00", asset.BookValue.StringFixed(2))
	assert.Equal(t, "120000.00", asset.TotalAmortized().StringFixed(2))
	assert.Equal(t, StatusFullyAmortized, asset.CurrentStatus().Status)
}

func TestAmortizeForPeriod_ResidueAbsorption(t *testing.T) {
	asset, err := NewDeferredExpenseAsset("Patent filing", decimal.RequireFromString("100.00"), 3, testStartDate)
	require.NoError(t, err)

	first := asset.AmortizeForPeriod(testStartDate)
	assert.Equal(t, "33.33", first.Amount.StringFixed(2))
	assert.Equal(t, "66.67", first.BookValue.StringFixed(2))

	second := asset.AmortizeForPeriod(testStartDate.AddDate(0, 1, 0))
	assert.Equal(t, "33.33", second.Amount.StringFixed(2))
	assert.Equal(t, "33.34", second.BookValue.StringFixed(2))

	// The final charge absorbs the rounding residue: 33.34, not 33.33
	third := asset.AmortizeForPeriod(testStartDate.AddDate(0, 2, 0))
	assert.True(t, third.Applied)
	assert.Equal(t, "33.34", third.Amount.StringFixed(2))
	assert.Equal(t, "0.00", third.BookValue.StringFixed(2))

	assert.Equal(t, "100.00", asset.TotalAmortized().StringFixed(2))
	assert.Equal(t, StatusFullyAmortized, asset.CurrentStatus().Status)
}

func TestAmortizeForPeriod_FinalChargeShrinksWhenPeriodicRoundsUp(t *testing.T) {
	// 100 / 6 rounds up to 16.67; five charges leave only 16.65 for the last
	asset, err := NewDeferredExpenseAsset("Software license", decimal.RequireFromString("100.00"), 6, testStartDate)
	require.NoError(t, err)
	assert.Equal(t, "16.67", asset.PeriodicAmount.StringFixed(2))

	for i := 0; i < 5; i++ {
		outcome := asset.AmortizeForPeriod(testStartDate.AddDate(0, i, 0))
		assert.Equal(t, "16.67", outcome.Amount.StringFixed(2))
	}

	last := asset.AmortizeForPeriod(testStartDate.AddDate(0, 5, 0))
	assert.Equal(t, "16.65", last.Amount.StringFixed(2))
	assert.Equal(t, "0.00", asset.BookValue.StringFixed(2))
}

func TestAmortizeForPeriod_Invariants(t *testing.T) {
	// 100 / 7 rounds to 14.29, so termination needs ceil(100 / 14.29) = 7 calls
	asset, err := NewDeferredExpenseAsset("Leasehold improvement", decimal.RequireFromString("100.00"), 7, testStartDate)
	require.NoError(t, err)

	previous := asset.BookValue
	for i := 0; i < 7; i++ {
		asset.AmortizeForPeriod(testStartDate.AddDate(0, i, 0))

		// Conservation: book value plus everything amortized is the total cost
		assert.True(t, asset.BookValue.Add(asset.TotalAmortized()).Equal(asset.TotalCost),
			"conservation violated after period %d", i+1)

		// Book value never increases and never goes negative
		assert.True(t, asset.BookValue.LessThanOrEqual(previous))
		assert.False(t, asset.BookValue.IsNegative())
		previous = asset.BookValue
	}

	assert.Equal(t, "0.00", asset.BookValue.StringFixed(2))
}

func TestAmortizeForPeriod_TerminalStateIsIdempotent(t *testing.T) {
	asset, err := NewDeferredExpenseAsset("Office renovation", decimal.RequireFromString("50.00"), 2, testStartDate)
	require.NoError(t, err)

	asset.AmortizeForPeriod(testStartDate)
	asset.AmortizeForPeriod(testStartDate.AddDate(0, 1, 0))
	require.Equal(t, StatusFullyAmortized, asset.CurrentStatus().Status)

	historyLen := len(asset.History)
	for i := 0; i < 3; i++ {
		outcome := asset.AmortizeForPeriod(testStartDate.AddDate(0, 2+i, 0))
		assert.False(t, outcome.Applied)
		assert.True(t, outcome.BookValue.IsZero())
	}

	assert.Len(t, asset.History, historyLen)
	assert.Equal(t, "0.00", asset.BookValue.StringFixed(2))
}

func TestAmortizeForPeriod_ZeroCostAssetIsImmediatelyNoOp(t *testing.T) {
	asset, err := NewDeferredExpenseAsset("Empty prepayment", decimal.Zero, 12, testStartDate)
	require.NoError(t, err)

	outcome := asset.AmortizeForPeriod(testStartDate)
	assert.False(t, outcome.Applied)
	assert.Empty(t, asset.History)
	assert.Equal(t, StatusFullyAmortized, asset.CurrentStatus().Status)
}

func TestCurrentStatus_DoesNotMutate(t *testing.T) {
	asset, err := NewDeferredExpenseAsset("Office renovation", decimal.RequireFromString("100.00"), 4, testStartDate)
	require.NoError(t, err)

	before := asset.BookValue
	report := asset.CurrentStatus()
	assert.Equal(t, StatusActive, report.Status)
	assert.True(t, report.BookValue.Equal(before))
	assert.True(t, asset.BookValue.Equal(before))
	assert.Empty(t, asset.History)
}
