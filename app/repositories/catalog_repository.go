package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/app/models"
)

var (
	// ErrInvalidInput rejects a malformed product definition during setup.
	ErrInvalidInput = errors.New("invalid product definition")

	// ErrNotFound means no product matches the given id or index.
	ErrNotFound = errors.New("product not found")
)

// CatalogRepository is the in-memory ordered product store for one session.
// Products are created once during setup and never deleted or restocked;
// display indices are 1-based positions into creation order.
//
// Lookups are linear scans. Session catalogues are tiny and short-lived, so
// an id index would buy nothing.
type CatalogRepository struct {
	products []models.Product
}

// NewCatalogRepository returns an empty catalogue.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Default returns the sample catalogue used when setup produces no products.
func Default() *CatalogRepository {
	r := NewCatalogRepository()
	for _, p := range []struct {
		name  string
		price string
		stock int
	}{
		{"Bread", "3.50", 20},
		{"Milk", "6.20", 15},
		{"Eggs", "9.90", 10},
	} {
		// Inputs are fixed and valid, the error path is unreachable.
		_, _ = r.Create(p.name, decimal.RequireFromString(p.price), p.stock)
	}
	return r
}

// Create validates and appends a product, assigning the next sequential id.
func (r *CatalogRepository) Create(name string, price decimal.Decimal, stock int) (models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return models.Product{}, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if !price.IsPositive() {
		return models.Product{}, fmt.Errorf("%w: price must be greater than zero, got %s", ErrInvalidInput, price)
	}
	if stock < 0 {
		return models.Product{}, fmt.Errorf("%w: stock must not be negative, got %d", ErrInvalidInput, stock)
	}

	p := models.Product{
		ID:    len(r.products) + 1,
		Name:  name,
		Price: price,
		Stock: stock,
	}
	r.products = append(r.products, p)
	return p, nil
}

// FindByID returns a pointer to the stored product so the caller can adjust
// its stock in place.
func (r *CatalogRepository) FindByID(id int) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ByIndex resolves a 1-based display index into creation order.
func (r *CatalogRepository) ByIndex(index int) (*models.Product, error) {
	if index < 1 || index > len(r.products) {
		return nil, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	return &r.products[index-1], nil
}

// All returns a copy of the catalogue in display order.
func (r *CatalogRepository) All() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Len returns the number of products.
func (r *CatalogRepository) Len() int { return len(r.products) }

// Empty reports whether the catalogue holds no products.
func (r *CatalogRepository) Empty() bool { return len(r.products) == 0 }
