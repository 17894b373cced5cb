package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tokri/app/repositories"
)

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	r := repositories.NewCatalogRepository()

	a, err := r.Create("Bread", decimal.RequireFromString("3.50"), 20)
	require.NoError(t, err)
	b, err := r.Create("Milk", decimal.RequireFromString("6.20"), 15)
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 2, r.Len())
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	r := repositories.NewCatalogRepository()

	cases := []struct {
		name  string
		price string
		stock int
	}{
		{"", "3.50", 5},
		{"   ", "3.50", 5},
		{"Bread", "0", 5},
		{"Bread", "-1.00", 5},
		{"Bread", "3.50", -1},
	}

	for _, tc := range cases {
		_, err := r.Create(tc.name, decimal.RequireFromString(tc.price), tc.stock)
		assert.ErrorIs(t, err, repositories.ErrInvalidInput,
			"name=%q price=%s stock=%d", tc.name, tc.price, tc.stock)
	}
	assert.True(t, r.Empty(), "rejected definitions must not be stored")
}

func TestFindByID(t *testing.T) {
	r := repositories.Default()

	p, err := r.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Milk", p.Name)

	_, err = r.FindByID(42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestByIndex(t *testing.T) {
	r := repositories.Default()

	p, err := r.ByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "Bread", p.Name)

	for _, index := range []int{0, -1, 4} {
		_, err := r.ByIndex(index)
		assert.ErrorIs(t, err, repositories.ErrNotFound, "index %d", index)
	}
}

func TestDefault_SampleCatalogue(t *testing.T) {
	r := repositories.Default()
	products := r.All()

	require.Len(t, products, 3)
	assert.Equal(t, "Bread", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("3.50")))
	assert.Equal(t, 20, products[0].Stock)
	assert.Equal(t, "Milk", products[1].Name)
	assert.Equal(t, "Eggs", products[2].Name)
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := repositories.Default()

	out := r.All()
	out[0].Stock = 0

	p, err := r.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Stock, "mutating the snapshot must not touch the store")
}
