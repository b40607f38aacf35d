package shop

import (
	"context"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/shop/store"
)

// Named actions the dispatcher understands. The UI binds buttons to
// these instead of calling session methods directly, so the core runs
// and tests without any rendering surface.
const (
	ActionCartAdd       = "cart.add"
	ActionCartRemove    = "cart.remove"
	ActionCartClear     = "cart.clear"
	ActionAdminNew      = "admin.new"
	ActionAdminEdit     = "admin.edit"
	ActionAdminSave     = "admin.save"
	ActionAdminClose    = "admin.close"
	ActionDelete        = "admin.delete"
	ActionDeleteConfirm = "admin.delete.confirm"
	ActionDeleteCancel  = "admin.delete.cancel"
)

// Notifier surfaces a blocking operator notification; the UI decides
// how (alert box, toast). The default logs through zap.
type Notifier func(level, message string)

// Options wires a session together.
type Options struct {
	Store         store.Store
	Source        DataSource
	WhatsAppPhone string
	AdminUsername string
	AdminPassword string
	Mailer        Mailer
	Notifier      Notifier
}

// Session is the single-owner application state for one storefront
// instance: store, data source, catalog cache, cart and editor. All
// mutations run on dispatched events, one at a time; there is no
// background work.
type Session struct {
	store   store.Store
	source  DataSource
	catalog *Catalog
	cart    *Cart
	editor  *Editor
	bus     EventBus.Bus

	whatsappPhone string
	adminUsername string
	adminPassword string
	mailer        Mailer
	notify        Notifier

	ctx context.Context
}

func NewSession(opts Options) *Session {
	catalog := NewCatalog(opts.Source)
	s := &Session{
		store:         opts.Store,
		source:        opts.Source,
		catalog:       catalog,
		cart:          NewCart(opts.Store),
		editor:        NewEditor(opts.Source, catalog),
		bus:           EventBus.New(),
		whatsappPhone: opts.WhatsAppPhone,
		adminUsername: opts.AdminUsername,
		adminPassword: opts.AdminPassword,
		mailer:        opts.Mailer,
		notify:        opts.Notifier,
		ctx:           context.Background(),
	}
	if s.notify == nil {
		s.notify = func(level, message string) {
			zap.L().Info("notification", zap.String("level", level), zap.String("message", message))
		}
	}
	s.bindActions()
	return s
}

// Start loads persisted state: the cart record and the catalog. The
// local source runs its one-shot schema migration inside the first
// load, before anything renders.
func (s *Session) Start(ctx context.Context) {
	s.ctx = ctx
	if err := s.cart.Load(); err != nil {
		zap.L().Error("cart load failed, starting empty", zap.Error(err))
	}
	// a load failure already degraded the catalog to empty and logged
	_ = s.catalog.Load(ctx)
	zap.L().Info("shop session started",
		zap.Int("catalog", s.catalog.Len()),
		zap.Int("cart", s.cart.Count()))
}

func (s *Session) Catalog() *Catalog { return s.catalog }
func (s *Session) Cart() *Cart      { return s.cart }
func (s *Session) Editor() *Editor  { return s.editor }

// Dispatch publishes a named action. Handlers run synchronously on the
// calling goroutine, matching the single-threaded event model.
func (s *Session) Dispatch(action string, args ...interface{}) {
	s.bus.Publish(action, args...)
}

func (s *Session) bindActions() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(s.bus.Subscribe(ActionCartAdd, func(id int64) { s.AddToCart(id) }))
	must(s.bus.Subscribe(ActionCartRemove, func(index int) { s.cart.RemoveAt(index) }))
	must(s.bus.Subscribe(ActionCartClear, func() { s.cart.Clear() }))
	must(s.bus.Subscribe(ActionAdminNew, func() { s.editor.OpenNew() }))
	must(s.bus.Subscribe(ActionAdminEdit, func(id int64) { s.editor.OpenEdit(id) }))
	must(s.bus.Subscribe(ActionAdminClose, func() { s.editor.Close() }))
	must(s.bus.Subscribe(ActionAdminSave, func(form ProductForm) {
		s.editor.SetForm(form)
		if err := s.SaveProduct(); err != nil {
			s.notify("error", "Error saving product: "+err.Error())
		}
	}))
	must(s.bus.Subscribe(ActionDelete, func(id int64) { s.editor.RequestDelete(id) }))
	must(s.bus.Subscribe(ActionDeleteCancel, func() { s.editor.CancelDelete() }))
	must(s.bus.Subscribe(ActionDeleteConfirm, func() {
		if err := s.DeleteProduct(); err != nil {
			s.notify("error", "Failed to delete product: "+err.Error())
		}
	}))
}

// AddToCart snapshots the catalog product into the cart. A stale id is
// a silent no-op per the cart error contract: it signals an outdated
// catalog reference, not an operator mistake.
func (s *Session) AddToCart(id int64) {
	p, err := s.catalog.FindByID(id)
	if err != nil {
		zap.L().Debug("add to cart skipped, product missing", zap.Int64("id", id))
		return
	}
	s.cart.Add(p)
}

// SaveProduct runs the editor save against the data source. The editor
// keeps its session open on failure so the operator can fix the input.
func (s *Session) SaveProduct() error {
	return s.editor.Save(s.ctx)
}

// DeleteProduct fires the armed delete. The confirmation dialog closes
// regardless of outcome.
func (s *Session) DeleteProduct() error {
	return s.editor.ConfirmDelete(s.ctx)
}

// AdminLogin is the trivial credential gate of the storefront: matching
// credentials set the persisted isAdmin flag. Not a real auth model and
// documented as such.
func (s *Session) AdminLogin(username, password string) bool {
	if username != s.adminUsername || password != s.adminPassword {
		return false
	}
	if err := s.store.WriteRecord(store.RecordAdmin, []byte("true")); err != nil {
		zap.L().Error("persist admin flag", zap.Error(err))
	}
	return true
}

func (s *Session) AdminLogout() {
	if err := s.store.DeleteRecord(store.RecordAdmin); err != nil {
		zap.L().Error("clear admin flag", zap.Error(err))
	}
}

func (s *Session) IsAdmin() bool {
	_, found, err := s.store.ReadRecord(store.RecordAdmin)
	if err != nil {
		zap.L().Error("read admin flag", zap.Error(err))
		return false
	}
	return found
}
