package console

import (
	"context"
	"fmt"
	"io"

	"github.com/ledgersim/deferral-backend/internal/domain"
)

// Renderer formats amortization events as human-readable journal entries.
// It is the presentation collaborator of the core, which only emits
// structured data.
type Renderer struct {
	Out io.Writer
}

// NewRenderer creates a new Renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

func (r *Renderer) AssetRecognized(_ context.Context, event domain.AssetRecognized) {
	fmt.Fprintf(r.Out, "--- Initial recognition: new long-term deferred expense ---\n")
	fmt.Fprintf(r.Out, "Expense name:         %s\n", event.Name)
	fmt.Fprintf(r.Out, "Total cost:           %s\n", event.TotalCost.StringFixed(2))
	fmt.Fprintf(r.Out, "Amortization period:  %d months\n", event.PeriodCount)
	fmt.Fprintf(r.Out, "Monthly amortization: %s\n", event.PeriodicAmount.StringFixed(2))
	fmt.Fprintf(r.Out, "Journal entry:\n")
	fmt.Fprintf(r.Out, "  Debit:  long-term deferred expense - %s  %s\n", event.Name, event.TotalCost.StringFixed(2))
	fmt.Fprintf(r.Out, "  Credit: cash  %s\n", event.TotalCost.StringFixed(2))
	fmt.Fprintln(r.Out, divider)
}

func (r *Renderer) PeriodAmortized(_ context.Context, event domain.PeriodAmortized) {
	fmt.Fprintf(r.Out, "--- Amortization for %s ---\n", event.PeriodDate.Format("2006-01"))
	fmt.Fprintf(r.Out, "Journal entry:\n")
	fmt.Fprintf(r.Out, "  Debit:  administrative expense  %s\n", event.Amount.StringFixed(2))
	fmt.Fprintf(r.Out, "  Credit: long-term deferred expense - %s  %s\n", event.Name, event.Amount.StringFixed(2))
	fmt.Fprintf(r.Out, "Remaining book value: %s\n", event.RemainingBookValue.StringFixed(2))
	fmt.Fprintln(r.Out, divider)
}

func (r *Renderer) AmortizationSkipped(_ context.Context, event domain.AmortizationSkipped) {
	fmt.Fprintf(r.Out, "(%s) %s is fully amortized; nothing to do.\n", event.PeriodDate.Format("2006-01-02"), event.Name)
}

const divider = "----------------------------------------"

var _ domain.EventPublisher = (*Renderer)(nil)
