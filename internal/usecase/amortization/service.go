package amortization

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgersim/deferral-backend/internal/domain"
)

// RecognizeInput represents the input for recognizing a new deferred expense asset
type RecognizeInput struct {
	Name        string
	TotalCost   decimal.Decimal
	PeriodCount int
	StartDate   time.Time
}

// Service handles the bookkeeping side of a deferred expense asset's
// lifecycle: it posts journal entries for recognition and for each period
// charge, and publishes the matching events. The asset itself is owned by
// the caller.
type Service struct {
	JournalRepo domain.JournalRepository
	Publisher   domain.EventPublisher
}

// NewService creates a new Service instance
func NewService(journalRepo domain.JournalRepository, publisher domain.EventPublisher) *Service {
	return &Service{
		JournalRepo: journalRepo,
		Publisher:   publisher,
	}
}

// Recognize performs initial recognition of a deferred expense.
// Logic:
//  1. Construct the asset (validates period count and cost sign)
//  2. Post the recognition entry: Debit deferred expense, Credit cash
//  3. Publish the AssetRecognized event
//
// A zero-cost asset is recognized without a journal entry; no money moved.
func (s *Service) Recognize(ctx context.Context, input RecognizeInput) (*domain.DeferredExpenseAsset, error) {
	asset, err := domain.NewDeferredExpenseAsset(input.Name, input.TotalCost, input.PeriodCount, input.StartDate)
	if err != nil {
		return nil, err
	}

	if asset.TotalCost.IsPositive() {
		entry := recognitionEntry(asset)
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if err := s.JournalRepo.Append(ctx, entry); err != nil {
			return nil, err
		}
	}

	s.Publisher.AssetRecognized(ctx, domain.AssetRecognized{
		AssetID:        asset.ID,
		Name:           asset.Name,
		TotalCost:      asset.TotalCost,
		PeriodCount:    asset.PeriodCount,
		PeriodicAmount: asset.PeriodicAmount,
		StartDate:      asset.StartDate,
	})

	return asset, nil
}

// AmortizeForPeriod applies one period's amortization to the asset.
// When the charge is applied it posts the period entry (Debit administrative
// expense, Credit deferred expense) and publishes PeriodAmortized; when the
// asset is already fully amortized it publishes AmortizationSkipped and
// posts nothing.
func (s *Service) AmortizeForPeriod(ctx context.Context, asset *domain.DeferredExpenseAsset, periodDate time.Time) (domain.AmortizationOutcome, error) {
	outcome := asset.AmortizeForPeriod(periodDate)

	if !outcome.Applied {
		s.Publisher.AmortizationSkipped(ctx, domain.AmortizationSkipped{
			AssetID:    asset.ID,
			Name:       asset.Name,
			PeriodDate: periodDate,
		})
		return outcome, nil
	}

	entry := periodEntry(asset, outcome)
	if err := entry.Validate(); err != nil {
		return domain.AmortizationOutcome{}, err
	}
	if err := s.JournalRepo.Append(ctx, entry); err != nil {
		return domain.AmortizationOutcome{}, err
	}

	s.Publisher.PeriodAmortized(ctx, domain.PeriodAmortized{
		AssetID:            asset.ID,
		Name:               asset.Name,
		PeriodDate:         outcome.PeriodDate,
		Amount:             outcome.Amount,
		RemainingBookValue: outcome.BookValue,
	})

	return outcome, nil
}

// recognitionEntry builds the initial recognition journal entry:
// the full cost moves from cash onto the balance sheet.
func recognitionEntry(asset *domain.DeferredExpenseAsset) *domain.JournalEntry {
	entryID := uuid.New()
	return &domain.JournalEntry{
		ID:   entryID,
		Date: asset.StartDate,
		Memo: "Initial recognition: " + asset.Name,
		Lines: []domain.JournalLine{
			{
				ID:      uuid.New(),
				EntryID: entryID,
				Account: domain.AccountDeferredExpense,
				Side:    domain.SideDebit,
				Amount:  asset.TotalCost,
			},
			{
				ID:      uuid.New(),
				EntryID: entryID,
				Account: domain.AccountCash,
				Side:    domain.SideCredit,
				Amount:  asset.TotalCost,
			},
		},
	}
}

// periodEntry builds the journal entry for one applied period charge:
// part of the asset's book value becomes an expense.
func periodEntry(asset *domain.DeferredExpenseAsset, outcome domain.AmortizationOutcome) *domain.JournalEntry {
	entryID := uuid.New()
	return &domain.JournalEntry{
		ID:   entryID,
		Date: outcome.PeriodDate,
		Memo: "Monthly amortization: " + asset.Name,
		Lines: []domain.JournalLine{
			{
				ID:      uuid.New(),
				EntryID: entryID,
				Account: domain.AccountAdministrativeExpense,
				Side:    domain.SideDebit,
				Amount:  outcome.Amount,
			},
			{
				ID:      uuid.New(),
				EntryID: entryID,
				Account: domain.AccountDeferredExpense,
				Side:    domain.SideCredit,
				Amount:  outcome.Amount,
			},
		},
	}
}
