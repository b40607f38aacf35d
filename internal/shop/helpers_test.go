package shop

import (
	"context"

	"github.com/pkg/errors"
)

// fakeSource is an in-memory DataSource for exercising the session
// pieces without a store or network.
type fakeSource struct {
	items   []Product
	listErr error
}

func (f *fakeSource) List(ctx context.Context) ([]Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]Product, len(f.items))
	for i, p := range f.items {
		out[i] = p.Clone()
	}
	return out, nil
}

func (f *fakeSource) Get(ctx context.Context, id int64) (Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
}

func (f *fakeSource) Create(ctx context.Context, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	p := Product{ID: nextID(f.items)}
	draft.apply(&p)
	f.items = append(f.items, p)
	return p.Clone(), nil
}

func (f *fakeSource) Replace(ctx context.Context, id int64, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			draft.apply(&f.items[i])
			return f.items[i].Clone(), nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
}

func (f *fakeSource) Delete(ctx context.Context, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "product %d", id)
}

func giftProduct(id int64, name string, price float64) Product {
	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: CategoryGifts,
		Images:   []string{"https://example.com/img.jpg"},
	}
}
