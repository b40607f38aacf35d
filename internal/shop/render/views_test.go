package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamisthub/storefront/internal/shop"
)

func product(id int64, name string, price float64) shop.Product {
	return shop.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: shop.CategoryGifts,
		Images:   []string{"first.jpg", "second.jpg"},
	}
}

func TestFeaturedTakesFirstThreeInCatalogOrder(t *testing.T) {
	items := []shop.Product{
		product(1, "A", 10), product(2, "B", 20),
		product(3, "C", 30), product(4, "D", 40),
	}
	cards := Featured(items)
	require.Len(t, cards, 3)
	assert.Equal(t, "A", cards[0].Name)
	assert.Equal(t, "C", cards[2].Name)

	assert.Len(t, Featured(items[:2]), 2)
	assert.Empty(t, Featured(nil))
}

func TestShopRendersAllWithFormattedPrices(t *testing.T) {
	cards := Shop([]shop.Product{product(1, "Vase", 3500)})
	require.Len(t, cards, 1)
	assert.Equal(t, "₹3,500", cards[0].PriceLabel)
	assert.Equal(t, "first.jpg", cards[0].Image, "primary image is the first one")
}

func TestCartViewEmptyStateIsDistinct(t *testing.T) {
	view := Cart(nil)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Lines)
	assert.Empty(t, view.TotalLabel)
}

func TestCartViewTotals(t *testing.T) {
	view := Cart([]shop.Product{product(1, "A", 100), product(2, "B", 250)})
	require.False(t, view.Empty)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 0, view.Lines[0].Index)
	assert.Equal(t, 1, view.Lines[1].Index)
	assert.Equal(t, "₹350", view.SubtotalLabel)
	assert.Equal(t, "₹350", view.TotalLabel)
	assert.Equal(t, "Free", view.ShippingLabel)
}

func TestCheckoutViewRedirectsOnEmptyCart(t *testing.T) {
	view := Checkout(nil)
	assert.Equal(t, "cart", view.RedirectTo)
	assert.Empty(t, view.Lines)
}

func TestCheckoutViewTotalEqualsSubtotal(t *testing.T) {
	view := Checkout([]shop.Product{product(1, "A", 450), product(2, "B", 750)})
	assert.Empty(t, view.RedirectTo)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, view.SubtotalLabel, view.TotalLabel)
	assert.Equal(t, "₹1,200", view.TotalLabel)
}

func TestAdminTableRowsKeyedByID(t *testing.T) {
	rows := AdminTable([]shop.Product{product(7, "Candle", 450)})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(7), rows[0].ID)
	assert.Equal(t, "₹450", rows[0].PriceLabel)
	assert.Equal(t, shop.CategoryGifts, rows[0].Category)
}
