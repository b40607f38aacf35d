package shop

import "context"

// DataSource is the CRUD contract both storefront backends implement:
// the remote REST API and the local key-value store. Cart math,
// migration and rendering live once in this package; only the source
// differs between modes.
type DataSource interface {
	// List returns the full catalog. Remote sources order newest first;
	// the local source keeps insertion order.
	List(ctx context.Context) ([]Product, error)
	// Get returns the product with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (Product, error)
	// Create validates the draft, assigns an identifier and stores it.
	Create(ctx context.Context, draft Draft) (Product, error)
	// Replace overwrites the mutable fields of an existing product,
	// preserving its identity. ErrNotFound when the id misses.
	Replace(ctx context.Context, id int64, draft Draft) (Product, error)
	// Delete removes a product. ErrNotFound when the id misses.
	Delete(ctx context.Context, id int64) error
}
