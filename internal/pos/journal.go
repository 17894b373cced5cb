package pos

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/app/models"
	"github.com/shashiranjanraj/tokri/pkg/event"
)

// EventSaleCompleted is fired by the terminal after every successful
// checkout. The payload is the *models.Receipt.
const EventSaleCompleted = "sale.completed"

// Journal accumulates the session's sales for the exit summary. It hangs off
// the event bus rather than being called directly, so other listeners — a
// receipt printer, say — could hook the same event without touching the
// checkout path.
type Journal struct {
	sales     int
	itemsSold int
	revenue   decimal.Decimal
	off       func()
}

// NewJournal registers a sale listener and returns the journal.
func NewJournal() *Journal {
	j := &Journal{revenue: decimal.Zero}
	j.off = event.Listen(EventSaleCompleted, func(payload any) {
		r, ok := payload.(*models.Receipt)
		if !ok {
			return
		}
		j.record(r)
	})
	return j
}

// Close detaches the journal from the event bus. Sales completed afterwards
// belong to the next session's journal, not this one.
func (j *Journal) Close() {
	j.off()
}

func (j *Journal) record(r *models.Receipt) {
	j.sales++
	j.revenue = j.revenue.Add(r.Total)
	for _, l := range r.Lines {
		j.itemsSold += l.Qty
	}
}

// Sales is the number of completed checkouts.
func (j *Journal) Sales() int { return j.sales }

// ItemsSold is the total unit count across all completed checkouts.
func (j *Journal) ItemsSold() int { return j.itemsSold }

// Revenue is the summed total of all completed checkouts.
func (j *Journal) Revenue() decimal.Decimal { return j.revenue }
