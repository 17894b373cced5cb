package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/app/models"
	"github.com/shashiranjanraj/tokri/app/repositories"
	"github.com/shashiranjanraj/tokri/pkg/collection"
)

// Session owns one checkout counter's state: the catalogue it sells from and
// the cart being built against it. Every engine operation hangs off Session,
// so all state is explicit — no package globals.
//
// The invariant every operation preserves: for each product,
// stock + reserved cart quantity == the stock the product was created with.
// Each operation validates fully before touching anything, so a rejected
// call leaves catalogue and cart exactly as they were.
//
// Sessions are single-actor. Nothing here is safe for concurrent use; a
// networked front-end would need its own locking or a per-session writer.
type Session struct {
	id      string
	catalog *repositories.CatalogRepository
	cart    []models.CartLine
}

// NewSession starts an empty-cart session over the given catalogue.
func NewSession(catalog *repositories.CatalogRepository) *Session {
	return &Session{id: uuid.NewString(), catalog: catalog}
}

// ID is the session's correlation id, used only for log lines.
func (s *Session) ID() string { return s.id }

// Products returns the catalogue in display order.
func (s *Session) Products() []models.Product { return s.catalog.All() }

// CartLines returns a copy of the cart in insertion order.
func (s *Session) CartLines() []models.CartLine {
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartEmpty reports whether the cart holds no lines.
func (s *Session) CartEmpty() bool { return len(s.cart) == 0 }

// CartTotal sums line subtotals using the prices snapshotted at add time.
func (s *Session) CartTotal() decimal.Decimal {
	return collection.Reduce(s.cart, decimal.Zero,
		func(acc decimal.Decimal, l models.CartLine) decimal.Decimal {
			return acc.Add(l.Subtotal())
		})
}

// AddToCart reserves qty units of the product at the given 1-based catalogue
// index. If the cart already holds a line for that product the quantities
// merge; otherwise a new line is appended with the product's name and price
// snapshotted.
func (s *Session) AddToCart(index, qty int) (models.CartLine, error) {
	product, err := s.catalog.ByIndex(index)
	if err != nil {
		return models.CartLine{}, fmt.Errorf("%w: no product at %d", ErrInvalidSelection, index)
	}
	if !product.InStock() {
		return models.CartLine{}, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
	}
	if qty < 1 || qty > product.Stock {
		return models.CartLine{}, fmt.Errorf("%w: got %d, valid range 1-%d", ErrInvalidQuantity, qty, product.Stock)
	}

	product.Stock -= qty
	if line := s.findLine(product.ID); line != nil {
		line.Qty += qty
		return *line, nil
	}
	line := models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
	}
	s.cart = append(s.cart, line)
	return line, nil
}

// UpdateQuantity sets the line at the given 1-based cart index to an absolute
// quantity, drawing from or returning stock to cover the difference. The
// ceiling is line.Qty + product.Stock — everything reachable by returning the
// reservation and redrawing. Zero is rejected: removing a line is
// RemoveFromCart's job, never an update side effect.
func (s *Session) UpdateQuantity(index, newQty int) (models.CartLine, error) {
	if index < 1 || index > len(s.cart) {
		return models.CartLine{}, fmt.Errorf("%w: no cart item at %d", ErrInvalidSelection, index)
	}
	line := &s.cart[index-1]

	product, err := s.catalog.FindByID(line.ProductID)
	if err != nil {
		return models.CartLine{}, fmt.Errorf("%w: product %d", ErrDataIntegrity, line.ProductID)
	}

	available := line.Qty + product.Stock
	if newQty < 1 || newQty > available {
		return models.CartLine{}, fmt.Errorf("%w: got %d, valid range 1-%d", ErrInvalidQuantity, newQty, available)
	}

	diff := newQty - line.Qty
	product.Stock -= diff
	line.Qty = newQty
	return *line, nil
}

// RemoveFromCart deletes the line at the given 1-based cart index and returns
// its units to the product's stock. If the product has vanished from the
// catalogue the removal still goes through — cart cleanup must not be blocked
// by catalogue corruption — but the units are dropped and the returned error
// is ErrDataIntegrity so the caller can report them.
func (s *Session) RemoveFromCart(index int) (models.CartLine, error) {
	if index < 1 || index > len(s.cart) {
		return models.CartLine{}, fmt.Errorf("%w: no cart item at %d", ErrInvalidSelection, index)
	}
	line := s.cart[index-1]
	s.cart = append(s.cart[:index-1], s.cart[index:]...)

	product, err := s.catalog.FindByID(line.ProductID)
	if err != nil {
		return line, fmt.Errorf("%w: product %d, %d unit(s) dropped", ErrDataIntegrity, line.ProductID, line.Qty)
	}
	product.Stock += line.Qty
	return line, nil
}

// Checkout finalises the cart against a payment amount and returns the
// receipt. Sold stock is not returned to the catalogue — the units left it
// for good when they were reserved. A checkout on an empty cart reports
// ErrEmptyCart and does nothing.
func (s *Session) Checkout(payment decimal.Decimal) (*models.Receipt, error) {
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	total := s.CartTotal()
	if payment.LessThan(total) {
		return nil, fmt.Errorf("%w: total %s, offered %s", ErrInsufficientPayment, total, payment)
	}

	receipt := &models.Receipt{
		Lines: collection.Map(s.cart, func(l models.CartLine) models.ReceiptLine {
			return models.ReceiptLine{Name: l.Name, Qty: l.Qty, LineTotal: l.Subtotal()}
		}),
		Total:   total,
		Payment: payment,
		Change:  payment.Sub(total),
	}
	s.cart = nil
	return receipt, nil
}

// findLine returns a pointer to the cart line holding productID, or nil.
// Linear scan, same reasoning as the catalogue.
func (s *Session) findLine(productID int) *models.CartLine {
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			return &s.cart[i]
		}
	}
	return nil
}
