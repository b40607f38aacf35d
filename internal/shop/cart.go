package shop

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/shop/store"
)

// Cart is the ordered list of product snapshots a shopper intends to
// buy. Entries are full copies taken at add time: a later catalog edit
// never changes an item already in the cart. Duplicates are allowed and
// removal is positional.
type Cart struct {
	store store.Store
	items []Product
}

func NewCart(st store.Store) *Cart {
	return &Cart{store: st}
}

// Load reads the persisted cart record. A missing record is an empty cart.
func (c *Cart) Load() error {
	data, found, err := c.store.ReadRecord(store.RecordCart)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}
	if !found || len(data) == 0 {
		c.items = nil
		return nil
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return errors.Wrap(err, "decode cart record")
	}
	return nil
}

// Add appends a snapshot of the product and persists.
func (c *Cart) Add(p Product) {
	c.items = append(c.items, p.Clone())
	c.persist()
}

// RemoveAt removes the entry at the given 0-based position and persists.
// An out-of-range index is a silent no-op; the sequence is never
// corrupted and repeated single-position removals stay stable.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.persist()
}

// Total sums entry prices. Shipping is always free, so this is both
// subtotal and total.
func (c *Cart) Total() float64 {
	var sum float64
	for _, p := range c.items {
		sum += p.Price
	}
	return sum
}

// Clear empties the cart and persists, called after a successful
// checkout handoff.
func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

// Count backs the cart badge shown on every page.
func (c *Cart) Count() int {
	return len(c.items)
}

// Items returns snapshot copies in cart order.
func (c *Cart) Items() []Product {
	out := make([]Product, len(c.items))
	for i, p := range c.items {
		out[i] = p.Clone()
	}
	return out
}

func (c *Cart) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		zap.L().Error("encode cart record", zap.Error(err))
		return
	}
	if err := c.store.WriteRecord(store.RecordCart, data); err != nil {
		zap.L().Error("persist cart record", zap.Error(err))
	}
}
