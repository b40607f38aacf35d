// Package storeapi mounts a shop session behind JSON view endpoints:
// one GET per page returning the shaped view data, one POST per user
// action. It is a thin binding over the session's dispatcher; all
// storefront logic lives in internal/shop.
package storeapi

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/shamisthub/storefront/internal/shop"
	"github.com/shamisthub/storefront/internal/shop/render"
	"github.com/shamisthub/storefront/internal/webserver"
)

type handler struct {
	// the shop core is single-threaded by contract; HTTP is not, so
	// dispatches are serialized here at the binding layer
	mu      sync.Mutex
	session *shop.Session
}

// Init registers the storefront routes on the web server.
func Init(session *shop.Session) {
	h := &handler{session: session}
	e := webserver.Echo()

	views := e.Group("/views")
	views.GET("/home", h.homeView)
	views.GET("/shop", h.shopView)
	views.GET("/cart", h.cartView)
	views.GET("/checkout", h.checkoutView)
	views.GET("/admin", h.adminView)

	actions := e.Group("/shop")
	actions.POST("/login", h.login)
	actions.POST("/logout", h.logout)
	actions.POST("/cart/add", h.cartAdd)
	actions.POST("/cart/remove", h.cartRemove)
	actions.POST("/checkout", h.checkout)
	actions.POST("/admin/editor/open", h.editorOpen)
	actions.POST("/admin/editor/save", h.editorSave)
	actions.POST("/admin/editor/close", h.editorClose)
	actions.POST("/admin/delete", h.deleteRequest)
	actions.POST("/admin/delete/confirm", h.deleteConfirm)
	actions.POST("/admin/delete/cancel", h.deleteCancel)
}

// badge is attached to every view; the cart count shows on all pages.
func (h *handler) badge() map[string]interface{} {
	return map[string]interface{}{"cart_count": h.session.Cart().Count()}
}

func (h *handler) homeView(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"featured": render.Featured(h.session.Catalog().Items()),
		"badge":    h.badge(),
	})
}

func (h *handler) shopView(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": render.Shop(h.session.Catalog().Items()),
		"badge":    h.badge(),
	})
}

func (h *handler) cartView(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"cart":  render.Cart(h.session.Cart().Items()),
		"badge": h.badge(),
	})
}

func (h *handler) checkoutView(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	view := render.Checkout(h.session.Cart().Items())
	if view.RedirectTo != "" {
		return c.JSON(http.StatusSeeOther, view)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"checkout": view,
		"badge":    h.badge(),
	})
}

func (h *handler) adminView(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.session.IsAdmin() {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"redirect_to": "login"})
	}
	editor := h.session.Editor()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products":       render.AdminTable(h.session.Catalog().Items()),
		"editor_mode":    editor.Mode(),
		"editor_form":    editor.Form(),
		"pending_delete": editor.PendingDelete(),
	})
}

func (h *handler) login(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var payload struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse credentials"})
	}
	if !h.session.AdminLogin(payload.Username, payload.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"message": "Invalid credentials!"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"redirect_to": "admin"})
}

func (h *handler) logout(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.AdminLogout()
	return c.JSON(http.StatusOK, map[string]interface{}{"redirect_to": "login"})
}

func (h *handler) cartAdd(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var payload struct {
		ID int64 `json:"id" form:"id"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse request"})
	}
	// a stale id is a silent no-op by contract
	h.session.Dispatch(shop.ActionCartAdd, payload.ID)
	return c.JSON(http.StatusOK, h.badge())
}

func (h *handler) cartRemove(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var payload struct {
		Index int `json:"index" form:"index"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse request"})
	}
	h.session.Dispatch(shop.ActionCartRemove, payload.Index)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"cart":  render.Cart(h.session.Cart().Items()),
		"badge": h.badge(),
	})
}

func (h *handler) checkout(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var details shop.CustomerDetails
	if err := c.Bind(&details); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse checkout form"})
	}
	result, err := h.session.Checkout(details)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": err.Error()})
	}
	if result.RedirectTo != "" {
		return c.JSON(http.StatusSeeOther, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *handler) editorOpen(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var payload struct {
		ID int64 `json:"id" form:"id"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse request"})
	}
	if payload.ID > 0 {
		h.session.Dispatch(shop.ActionAdminEdit, payload.ID)
	} else {
		h.session.Dispatch(shop.ActionAdminNew)
	}
	editor := h.session.Editor()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"editor_mode": editor.Mode(),
		"editor_form": editor.Form(),
	})
}

func (h *handler) editorSave(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var form shop.ProductForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse product form"})
	}
	h.session.Editor().SetForm(form)
	if err := h.session.SaveProduct(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, shop.ErrValidation) {
			status = http.StatusBadRequest
		}
		// editor session stays open so the operator can correct input
		return c.JSON(status, map[string]interface{}{"message": "Error saving product: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": render.AdminTable(h.session.Catalog().Items()),
	})
}

func (h *handler) editorClose(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.Dispatch(shop.ActionAdminClose)
	return c.JSON(http.StatusOK, map[string]interface{}{"editor_mode": shop.EditorClosed})
}

func (h *handler) deleteRequest(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var payload struct {
		ID int64 `json:"id" form:"id"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "unable to parse request"})
	}
	h.session.Dispatch(shop.ActionDelete, payload.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{"pending_delete": payload.ID})
}

func (h *handler) deleteConfirm(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.DeleteProduct(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, shop.ErrNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]interface{}{"message": "Failed to delete product: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": render.AdminTable(h.session.Catalog().Items()),
	})
}

func (h *handler) deleteCancel(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.Dispatch(shop.ActionDeleteCancel)
	return c.JSON(http.StatusOK, map[string]interface{}{"pending_delete": 0})
}
