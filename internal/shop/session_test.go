package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamisthub/storefront/internal/shop/store"
)

func newTestSession(t *testing.T, items []Product) *Session {
	t.Helper()
	s := NewSession(Options{
		Store:         store.NewMemStore(),
		Source:        &fakeSource{items: items},
		WhatsAppPhone: "917845818017",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	})
	s.Start(context.Background())
	return s
}

func TestDispatchCartActions(t *testing.T) {
	s := newTestSession(t, []Product{giftProduct(1, "A", 100), giftProduct(2, "B", 250)})

	s.Dispatch(ActionCartAdd, int64(1))
	s.Dispatch(ActionCartAdd, int64(2))
	assert.Equal(t, 2, s.Cart().Count())
	assert.InDelta(t, 350, s.Cart().Total(), 1e-9)

	s.Dispatch(ActionCartRemove, 0)
	require.Equal(t, 1, s.Cart().Count())
	assert.Equal(t, "B", s.Cart().Items()[0].Name)

	s.Dispatch(ActionCartClear)
	assert.Equal(t, 0, s.Cart().Count())
}

func TestAddToCartMissingProductIsSilentNoOp(t *testing.T) {
	s := newTestSession(t, []Product{giftProduct(1, "A", 100)})
	s.Dispatch(ActionCartAdd, int64(42))
	assert.Equal(t, 0, s.Cart().Count())
}

func TestDispatchAdminEditorFlow(t *testing.T) {
	s := newTestSession(t, []Product{giftProduct(1, "A", 100)})

	s.Dispatch(ActionAdminNew)
	assert.Equal(t, EditorNew, s.Editor().Mode())

	s.Dispatch(ActionAdminSave, ProductForm{
		Name: "B", Price: 20, Category: CategoryDecors, ImageInput: "b.jpg",
	})
	assert.Equal(t, EditorClosed, s.Editor().Mode())
	assert.Equal(t, 2, s.Catalog().Len())
}

func TestDispatchSaveFailureNotifiesAndKeepsEditorOpen(t *testing.T) {
	var notes []string
	s := NewSession(Options{
		Store:    store.NewMemStore(),
		Source:   &fakeSource{},
		Notifier: func(level, message string) { notes = append(notes, level+": "+message) },
	})
	s.Start(context.Background())

	s.Dispatch(ActionAdminNew)
	s.Dispatch(ActionAdminSave, ProductForm{Name: "", Category: CategoryGifts, ImageInput: "x.jpg"})

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "error")
	assert.Equal(t, EditorNew, s.Editor().Mode())
}

func TestDispatchDeleteConfirmFlow(t *testing.T) {
	s := newTestSession(t, []Product{giftProduct(1, "A", 100), giftProduct(2, "B", 200)})

	s.Dispatch(ActionDelete, int64(1))
	assert.Equal(t, 2, s.Catalog().Len(), "initial click never deletes")

	s.Dispatch(ActionDeleteConfirm)
	assert.Equal(t, 1, s.Catalog().Len())
}

func TestSessionStartWithFailingSourceStillRenders(t *testing.T) {
	s := NewSession(Options{
		Store:  store.NewMemStore(),
		Source: &fakeSource{listErr: ErrTransport},
	})
	s.Start(context.Background())
	assert.Equal(t, 0, s.Catalog().Len())
	assert.NotNil(t, s.Catalog().Items())
}

func TestAdminGate(t *testing.T) {
	s := newTestSession(t, nil)

	assert.False(t, s.IsAdmin())
	assert.False(t, s.AdminLogin("admin", "wrong"))
	assert.False(t, s.IsAdmin())

	assert.True(t, s.AdminLogin("admin", "admin123"))
	assert.True(t, s.IsAdmin())

	s.AdminLogout()
	assert.False(t, s.IsAdmin())
}
