package models

import "github.com/shopspring/decimal"

// CartLine reserves units of a product for one cart. Name and Price are
// snapshots taken when the line was created: later catalogue changes never
// reprice a cart. Qty is always at least 1 — a line that drops to zero is
// removed, not kept around empty.
type CartLine struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Qty       int
}

// Subtotal is quantity times the snapshot price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// ReceiptLine is one sold line on a finalised receipt.
type ReceiptLine struct {
	Name      string
	Qty       int
	LineTotal decimal.Decimal
}

// Receipt records a completed sale: what was sold, what it cost, what the
// customer paid and what they got back.
type Receipt struct {
	Lines   []ReceiptLine
	Total   decimal.Decimal
	Payment decimal.Decimal
	Change  decimal.Decimal
}
