package shop

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PlaceholderImage is substituted when an operator saves a product
// without any image URLs.
const PlaceholderImage = "https://via.placeholder.com/300"

type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorNew
	EditorEdit
)

// ProductForm carries the editor's field values. Images arrive as one
// comma-separated text input, split on save.
type ProductForm struct {
	Name        string  `json:"name" form:"name"`
	Price       float64 `json:"price" form:"price"`
	Category    string  `json:"category" form:"category"`
	Description string  `json:"description" form:"description"`
	ImageInput  string  `json:"image_input" form:"image_input"`
}

// Editor is the per-session product-edit state machine:
//
//	Closed -> Open(new|edit) -> Closed
//
// plus the separate two-step delete confirmation:
//
//	Idle -> PendingDelete(id) -> Idle
//
// There is one editor per session, never two concurrent ones.
type Editor struct {
	source  DataSource
	catalog *Catalog

	mode          EditorMode
	editingID     int64
	form          ProductForm
	pendingDelete int64
}

func NewEditor(source DataSource, catalog *Catalog) *Editor {
	return &Editor{source: source, catalog: catalog}
}

func (e *Editor) Mode() EditorMode  { return e.mode }
func (e *Editor) Form() ProductForm { return e.form }
func (e *Editor) EditingID() int64  { return e.editingID }

// OpenNew opens the editor with blank fields and the default category.
func (e *Editor) OpenNew() {
	e.mode = EditorNew
	e.editingID = 0
	e.form = ProductForm{Category: CategoryGifts}
}

// OpenEdit prefills the form from the catalog. A missing id aborts back
// to Closed without surfacing anything; it means a stale admin table.
func (e *Editor) OpenEdit(id int64) {
	p, err := e.catalog.FindByID(id)
	if err != nil {
		zap.L().Warn("edit requested for missing product", zap.Int64("id", id))
		e.Close()
		return
	}
	e.mode = EditorEdit
	e.editingID = p.ID
	e.form = ProductForm{
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		ImageInput:  strings.Join(p.Images, ", "),
	}
}

func (e *Editor) Close() {
	e.mode = EditorClosed
	e.editingID = 0
	e.form = ProductForm{}
}

// SetForm replaces the working field values while the editor is open.
func (e *Editor) SetForm(form ProductForm) {
	if e.mode == EditorClosed {
		return
	}
	e.form = form
}

// Save validates and persists the current form: Replace for an edit
// session, Create for a new one. On success the editor closes and the
// catalog refreshes from durable state. Validation and transport
// failures leave the editor open so the operator can correct the input.
func (e *Editor) Save(ctx context.Context) error {
	if e.mode == EditorClosed {
		return nil
	}
	draft := Draft{
		Name:        strings.TrimSpace(e.form.Name),
		Price:       e.form.Price,
		Category:    e.form.Category,
		Description: e.form.Description,
		Images:      SplitImageList(e.form.ImageInput),
	}

	var err error
	if e.mode == EditorEdit {
		_, err = e.source.Replace(ctx, e.editingID, draft)
	} else {
		_, err = e.source.Create(ctx, draft)
	}
	if err != nil {
		return err
	}

	e.Close()
	return e.catalog.Refresh(ctx)
}

// RequestDelete arms the confirmation dialog. Nothing is deleted until
// ConfirmDelete runs.
func (e *Editor) RequestDelete(id int64) {
	e.pendingDelete = id
}

// CancelDelete disarms the confirmation dialog.
func (e *Editor) CancelDelete() {
	e.pendingDelete = 0
}

// PendingDelete returns the armed id, 0 when idle.
func (e *Editor) PendingDelete() int64 {
	return e.pendingDelete
}

// ConfirmDelete fires the armed delete. The confirmation state resets
// whatever the outcome; a miss comes back as ErrNotFound rather than
// being swallowed.
func (e *Editor) ConfirmDelete(ctx context.Context) error {
	id := e.pendingDelete
	e.pendingDelete = 0
	if id == 0 {
		return nil
	}
	if err := e.source.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete product %d", id)
	}
	return e.catalog.Refresh(ctx)
}

// SplitImageList turns the comma-separated image input into a trimmed,
// non-empty ordered list, falling back to a single placeholder URL.
func SplitImageList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if url := strings.TrimSpace(part); url != "" {
			out = append(out, url)
		}
	}
	if len(out) == 0 {
		return []string{PlaceholderImage}
	}
	return out
}
