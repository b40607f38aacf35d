package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamisthub/storefront/internal/shop/store"
)

func TestCartAddThenRemoveRestoresEmpty(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	require.NoError(t, cart.Load())

	cart.Add(giftProduct(1, "Candle", 450))
	require.Equal(t, 1, cart.Count())

	cart.RemoveAt(0)
	assert.Equal(t, 0, cart.Count())
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
}

func TestCartTotal(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	cart.Add(giftProduct(1, "A", 100))
	cart.Add(giftProduct(2, "B", 250))
	assert.InDelta(t, 350, cart.Total(), 1e-9)
}

func TestCartAllowsDuplicates(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	p := giftProduct(1, "Candle", 450)
	cart.Add(p)
	cart.Add(p)
	assert.Equal(t, 2, cart.Count())
	assert.InDelta(t, 900, cart.Total(), 1e-9)
}

func TestCartRemoveAtIsPositionalAndStable(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	cart.Add(giftProduct(1, "A", 10))
	cart.Add(giftProduct(2, "B", 20))
	cart.Add(giftProduct(3, "C", 30))

	cart.RemoveAt(1)
	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "C", items[1].Name)

	// repeated single-position removals drain front to back
	cart.RemoveAt(0)
	cart.RemoveAt(0)
	assert.Equal(t, 0, cart.Count())
}

func TestCartRemoveAtOutOfRangeIsNoOp(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	cart.Add(giftProduct(1, "A", 10))

	cart.RemoveAt(-1)
	cart.RemoveAt(1)
	cart.RemoveAt(99)
	assert.Equal(t, 1, cart.Count())
}

func TestCartEntriesAreSnapshots(t *testing.T) {
	cart := NewCart(store.NewMemStore())
	p := giftProduct(1, "Candle", 450)
	cart.Add(p)

	// a later catalog edit must not reach items already in the cart
	p.Name = "Renamed"
	p.Price = 999
	p.Images[0] = "https://example.com/other.jpg"

	got := cart.Items()[0]
	assert.Equal(t, "Candle", got.Name)
	assert.InDelta(t, 450, got.Price, 1e-9)
	assert.Equal(t, "https://example.com/img.jpg", got.Images[0])
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	st := store.NewMemStore()

	cart := NewCart(st)
	cart.Add(giftProduct(1, "Candle", 450))
	cart.Add(giftProduct(2, "Vase", 750))

	reloaded := NewCart(st)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 2, reloaded.Count())
	assert.Equal(t, "Candle", reloaded.Items()[0].Name)

	reloaded.Clear()
	again := NewCart(st)
	require.NoError(t, again.Load())
	assert.Equal(t, 0, again.Count())
}
