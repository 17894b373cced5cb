package models

import "github.com/shopspring/decimal"

// Product is a sellable item in the session catalogue.
// Stock counts the units still available for reservation; it is the only
// field that changes after creation.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Stock int
}

// InStock reports whether the product has units available for reservation.
func (p Product) InStock() bool { return p.Stock > 0 }
