package shop

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/shop/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LocalSource serves the CRUD contract from the session's own key-value
// store, the mode the storefront runs in without a backend. It migrates
// previously persisted records on first read and seeds the default
// catalog when the products record is empty or missing.
type LocalSource struct {
	store    store.Store
	migrated bool
}

func NewLocalSource(st store.Store) *LocalSource {
	return &LocalSource{store: st}
}

func (s *LocalSource) List(ctx context.Context) ([]Product, error) {
	return s.readCatalog()
}

func (s *LocalSource) Get(ctx context.Context, id int64) (Product, error) {
	items, err := s.readCatalog()
	if err != nil {
		return Product{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
}

func (s *LocalSource) Create(ctx context.Context, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	items, err := s.readCatalog()
	if err != nil {
		return Product{}, err
	}
	p := Product{ID: nextID(items)}
	draft.apply(&p)
	items = append(items, p)
	if err := s.writeCatalog(items); err != nil {
		return Product{}, err
	}
	return p.Clone(), nil
}

func (s *LocalSource) Replace(ctx context.Context, id int64, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	items, err := s.readCatalog()
	if err != nil {
		return Product{}, err
	}
	for i := range items {
		if items[i].ID == id {
			draft.apply(&items[i])
			if err := s.writeCatalog(items); err != nil {
				return Product{}, err
			}
			return items[i].Clone(), nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
}

func (s *LocalSource) Delete(ctx context.Context, id int64) error {
	items, err := s.readCatalog()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, p := range items {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "product %d", id)
	}
	return s.writeCatalog(kept)
}

// nextID allocates max(existing ids)+1, or 1 on an empty catalog.
func nextID(items []Product) int64 {
	var max int64
	for _, p := range items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// readCatalog loads the products record, running the one-shot schema
// migration and writing it back only when the migration changed
// anything. An empty or missing record at load time gets the default
// seed set; a catalog emptied later stays empty.
func (s *LocalSource) readCatalog() ([]Product, error) {
	data, found, err := s.store.ReadRecord(store.RecordProducts)
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}
	if !found || len(data) == 0 {
		if s.migrated {
			return nil, nil
		}
		seed := DefaultCatalog()
		if err := s.writeCatalog(seed); err != nil {
			return nil, err
		}
		zap.L().Info("seeded default catalog", zap.Int("count", len(seed)))
		s.migrated = true
		return seed, nil
	}

	var raw []store.RawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}
	if len(raw) == 0 {
		if s.migrated {
			return nil, nil
		}
		seed := DefaultCatalog()
		if err := s.writeCatalog(seed); err != nil {
			return nil, err
		}
		s.migrated = true
		return seed, nil
	}

	if !s.migrated {
		migrated, changed := store.Migrate(raw)
		if changed {
			out, err := json.Marshal(migrated)
			if err != nil {
				return nil, errors.Wrap(ErrTransport, err.Error())
			}
			if err := s.store.WriteRecord(store.RecordProducts, out); err != nil {
				return nil, errors.Wrap(ErrTransport, err.Error())
			}
			zap.L().Info("migrated catalog records", zap.Int("count", len(migrated)))
		}
		raw = migrated
		s.migrated = true
	}

	return decodeRaw(raw)
}

func (s *LocalSource) writeCatalog(items []Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(ErrTransport, err.Error())
	}
	if err := s.store.WriteRecord(store.RecordProducts, data); err != nil {
		return errors.Wrap(ErrTransport, err.Error())
	}
	return nil
}

func decodeRaw(raw []store.RawProduct) ([]Product, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}
	var items []Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}
	return items, nil
}
