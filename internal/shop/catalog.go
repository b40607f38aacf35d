package shop

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Catalog is the in-memory mirror of the data source's product records.
// It is refreshed from the source rather than patched optimistically:
// create/update responses may differ from what was sent (server-assigned
// ids, trimmed fields), so after every mutation the session re-loads.
type Catalog struct {
	source DataSource
	items  []Product
	byID   map[int64]int
}

func NewCatalog(source DataSource) *Catalog {
	return &Catalog{source: source, byID: map[int64]int{}}
}

// Load populates the catalog from the data source. A source failure
// degrades to an empty catalog so pages still render; the error is
// logged and returned for callers that want to surface it.
func (c *Catalog) Load(ctx context.Context) error {
	items, err := c.source.List(ctx)
	if err != nil {
		zap.L().Error("catalog load failed, rendering empty catalog", zap.Error(err))
		c.items = nil
		c.byID = map[int64]int{}
		return err
	}
	c.items = items
	c.byID = make(map[int64]int, len(items))
	for i, p := range items {
		c.byID[p.ID] = i
	}
	return nil
}

// Refresh re-runs Load. Called after every admin mutation so the cache
// reflects durable state.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// FindByID returns a copy of the matching product or ErrNotFound.
func (c *Catalog) FindByID(id int64) (Product, error) {
	if i, ok := c.byID[id]; ok {
		return c.items[i].Clone(), nil
	}
	return Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
}

// Items returns the catalog in source order. Entries are copies, safe
// for the caller to hold.
func (c *Catalog) Items() []Product {
	out := make([]Product, len(c.items))
	for i, p := range c.items {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
