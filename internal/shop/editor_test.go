package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditorFixture(t *testing.T, items []Product) (*Editor, *fakeSource, *Catalog) {
	t.Helper()
	src := &fakeSource{items: items}
	catalog := NewCatalog(src)
	require.NoError(t, catalog.Load(context.Background()))
	return NewEditor(src, catalog), src, catalog
}

func TestEditorOpenEditPrefillsForm(t *testing.T) {
	p := giftProduct(5, "Candle", 450)
	p.Images = []string{"a.jpg", "b.jpg"}
	p.Description = "smells nice"
	editor, _, _ := newEditorFixture(t, []Product{p})

	editor.OpenEdit(5)
	require.Equal(t, EditorEdit, editor.Mode())
	form := editor.Form()
	assert.Equal(t, "Candle", form.Name)
	assert.InDelta(t, 450, form.Price, 1e-9)
	assert.Equal(t, CategoryGifts, form.Category)
	assert.Equal(t, "smells nice", form.Description)
	assert.Equal(t, "a.jpg, b.jpg", form.ImageInput)
}

func TestEditorOpenEditMissingProductAbortsToClosed(t *testing.T) {
	editor, _, _ := newEditorFixture(t, []Product{giftProduct(1, "A", 10)})
	editor.OpenEdit(42)
	assert.Equal(t, EditorClosed, editor.Mode())
}

func TestEditorSaveNewAllocatesNextID(t *testing.T) {
	editor, src, catalog := newEditorFixture(t, []Product{giftProduct(1, "A", 10), giftProduct(3, "B", 20)})

	editor.OpenNew()
	editor.SetForm(ProductForm{
		Name: "C", Price: 30, Category: CategoryDecors,
		ImageInput: "c.jpg",
	})
	require.NoError(t, editor.Save(context.Background()))

	assert.Equal(t, EditorClosed, editor.Mode())
	require.Len(t, src.items, 3)
	assert.Equal(t, int64(4), src.items[2].ID)
	// cache refreshed from durable state
	assert.Equal(t, 3, catalog.Len())
}

func TestEditorSaveEditReplacesInPlace(t *testing.T) {
	editor, src, _ := newEditorFixture(t, []Product{giftProduct(1, "Old", 10)})

	editor.OpenEdit(1)
	form := editor.Form()
	form.Name = "New"
	form.Price = 99
	editor.SetForm(form)
	require.NoError(t, editor.Save(context.Background()))

	require.Len(t, src.items, 1)
	assert.Equal(t, int64(1), src.items[0].ID)
	assert.Equal(t, "New", src.items[0].Name)
}

func TestEditorSaveValidationFailureKeepsEditorOpen(t *testing.T) {
	editor, _, _ := newEditorFixture(t, nil)

	editor.OpenNew()
	editor.SetForm(ProductForm{Name: "", Price: 10, Category: CategoryGifts, ImageInput: "x.jpg"})
	err := editor.Save(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, EditorNew, editor.Mode(), "editor stays open so the operator can correct input")
}

func TestEditorSaveEmptyImageInputDefaultsToPlaceholder(t *testing.T) {
	editor, src, _ := newEditorFixture(t, nil)

	editor.OpenNew()
	editor.SetForm(ProductForm{Name: "Bare", Price: 5, Category: CategoryGifts})
	require.NoError(t, editor.Save(context.Background()))
	require.Len(t, src.items, 1)
	assert.Equal(t, []string{PlaceholderImage}, src.items[0].Images)
}

func TestSplitImageList(t *testing.T) {
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, SplitImageList(" a.jpg , b.jpg ,, "))
	assert.Equal(t, []string{PlaceholderImage}, SplitImageList("  "))
	assert.Equal(t, []string{PlaceholderImage}, SplitImageList(""))
	assert.Equal(t, []string{"one.png"}, SplitImageList("one.png"))
}

func TestDeleteConfirmationStateMachine(t *testing.T) {
	editor, src, catalog := newEditorFixture(t, []Product{giftProduct(1, "A", 10), giftProduct(2, "B", 20)})

	// initial click only arms the dialog
	editor.RequestDelete(1)
	assert.Equal(t, int64(1), editor.PendingDelete())
	require.Len(t, src.items, 2)

	// cancel disarms without deleting
	editor.CancelDelete()
	assert.Zero(t, editor.PendingDelete())
	require.NoError(t, editor.ConfirmDelete(context.Background()))
	require.Len(t, src.items, 2)

	// confirm fires the delete and refreshes
	editor.RequestDelete(1)
	require.NoError(t, editor.ConfirmDelete(context.Background()))
	assert.Zero(t, editor.PendingDelete())
	require.Len(t, src.items, 1)
	assert.Equal(t, 1, catalog.Len())
}

func TestDeleteMissingProductReturnsNotFound(t *testing.T) {
	editor, src, _ := newEditorFixture(t, []Product{giftProduct(1, "A", 10)})

	editor.RequestDelete(99)
	err := editor.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	// dialog closed regardless of outcome, catalog untouched
	assert.Zero(t, editor.PendingDelete())
	assert.Len(t, src.items, 1)
}
