package services

// Internal tests: the data-integrity paths need a cart line pointing at a
// product id the catalogue has never seen, which the public API can't
// produce (products are never deleted).

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tokri/app/models"
	"github.com/shashiranjanraj/tokri/app/repositories"
)

func corruptedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(repositories.Default())
	s.cart = append(s.cart, models.CartLine{
		ProductID: 99,
		Name:      "Ghost",
		Price:     decimal.RequireFromString("1.00"),
		Qty:       3,
	})
	return s
}

func TestUpdateQuantity_MissingProduct(t *testing.T) {
	s := corruptedSession(t)

	_, err := s.UpdateQuantity(1, 2)
	assert.ErrorIs(t, err, ErrDataIntegrity)

	// The line must survive untouched.
	require.Len(t, s.cart, 1)
	assert.Equal(t, 3, s.cart[0].Qty)
}

func TestRemoveFromCart_MissingProduct(t *testing.T) {
	s := corruptedSession(t)

	// The removal succeeds even though the stock cannot be returned.
	line, err := s.RemoveFromCart(1)
	assert.ErrorIs(t, err, ErrDataIntegrity)
	assert.Equal(t, 3, line.Qty)
	assert.Empty(t, s.cart)

	// No catalogue product gained the dropped units.
	want := map[int]int{1: 20, 2: 15, 3: 10}
	for _, p := range s.Products() {
		assert.Equal(t, want[p.ID], p.Stock, "product %d stock changed", p.ID)
	}
}
