package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetRecognized is published once, at initial recognition of the asset
type AssetRecognized struct {
	AssetID        uuid.UUID
	Name           string
	TotalCost      decimal.Decimal
	PeriodCount    int
	PeriodicAmount decimal.Decimal
	StartDate      time.Time
}

// PeriodAmortized is published for every period charge actually applied
type PeriodAmortized struct {
	AssetID            uuid.UUID
	Name               string
	PeriodDate         time.Time
	Amount             decimal.Decimal
	RemainingBookValue decimal.Decimal
}

// AmortizationSkipped is published when an amortization call against a fully
// amortized asset is ignored. Informational only; nothing changed.
type AmortizationSkipped struct {
	AssetID    uuid.UUID
	Name       string
	PeriodDate time.Time
}

// EventPublisher receives structured amortization notifications.
// The core carries no presentation concerns; rendering the events for human
// consumption is entirely the subscriber's job.
type EventPublisher interface {
	AssetRecognized(ctx context.Context, event AssetRecognized)
	PeriodAmortized(ctx context.Context, event PeriodAmortized)
	AmortizationSkipped(ctx context.Context, event AmortizationSkipped)
}
