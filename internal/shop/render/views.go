// Package render shapes catalog and cart state into the view models the
// pages draw from. Markup itself lives with whatever front end mounts
// these; everything here is a pure transformation.
package render

import (
	"github.com/shamisthub/storefront/internal/shop"
	"github.com/shamisthub/storefront/pkg/currency"
)

const featuredCount = 3

// ProductCard is one tile on the home and shop grids.
type ProductCard struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	PriceLabel  string   `json:"price_label"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func card(p shop.Product) ProductCard {
	return ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		PriceLabel:  currency.Format(p.Price),
		Image:       p.PrimaryImage(),
		Images:      p.Images,
		Category:    p.Category,
		Description: p.Description,
	}
}

// Featured returns the first three catalog entries in catalog order.
func Featured(items []shop.Product) []ProductCard {
	n := len(items)
	if n > featuredCount {
		n = featuredCount
	}
	out := make([]ProductCard, 0, n)
	for _, p := range items[:n] {
		out = append(out, card(p))
	}
	return out
}

// Shop returns the full catalog as cards.
func Shop(items []shop.Product) []ProductCard {
	out := make([]ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, card(p))
	}
	return out
}

// CartLine is one row of the cart table, removable by position.
type CartLine struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	PriceLabel string `json:"price_label"`
}

// CartView renders either the distinct empty state or the table plus
// summary. Shipping is always free, so total equals subtotal.
type CartView struct {
	Empty         bool       `json:"empty"`
	Lines         []CartLine `json:"lines"`
	SubtotalLabel string     `json:"subtotal_label,omitempty"`
	ShippingLabel string     `json:"shipping_label,omitempty"`
	TotalLabel    string     `json:"total_label,omitempty"`
}

func Cart(items []shop.Product) CartView {
	if len(items) == 0 {
		return CartView{Empty: true}
	}
	view := CartView{
		Lines:         make([]CartLine, 0, len(items)),
		ShippingLabel: "Free",
	}
	var total float64
	for i, p := range items {
		total += p.Price
		view.Lines = append(view.Lines, CartLine{
			Index:      i,
			Name:       p.Name,
			Image:      p.PrimaryImage(),
			PriceLabel: currency.Format(p.Price),
		})
	}
	view.SubtotalLabel = currency.Format(total)
	view.TotalLabel = currency.Format(total)
	return view
}

// SummaryLine is one entry of the checkout order summary.
type SummaryLine struct {
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
}

// CheckoutView either redirects (empty cart never renders checkout) or
// shows the order summary. Total is identical to subtotal: no discount
// or tax lines exist.
type CheckoutView struct {
	RedirectTo    string        `json:"redirect_to,omitempty"`
	Lines         []SummaryLine `json:"lines,omitempty"`
	SubtotalLabel string        `json:"subtotal_label,omitempty"`
	TotalLabel    string        `json:"total_label,omitempty"`
}

func Checkout(items []shop.Product) CheckoutView {
	if len(items) == 0 {
		return CheckoutView{RedirectTo: "cart"}
	}
	view := CheckoutView{Lines: make([]SummaryLine, 0, len(items))}
	var total float64
	for _, p := range items {
		total += p.Price
		view.Lines = append(view.Lines, SummaryLine{
			Name:       p.Name,
			PriceLabel: currency.Format(p.Price),
		})
	}
	view.SubtotalLabel = currency.Format(total)
	view.TotalLabel = currency.Format(total)
	return view
}

// AdminRow is one line of the admin product table; edit and delete
// actions key off the id.
type AdminRow struct {
	ID         int64  `json:"id"`
	Image      string `json:"image"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	Category   string `json:"category"`
}

func AdminTable(items []shop.Product) []AdminRow {
	out := make([]AdminRow, 0, len(items))
	for _, p := range items {
		out = append(out, AdminRow{
			ID:         p.ID,
			Image:      p.PrimaryImage(),
			Name:       p.Name,
			PriceLabel: currency.Format(p.Price),
			Category:   p.Category,
		})
	}
	return out
}
