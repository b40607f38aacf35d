// Package shop implements the storefront session core: catalog cache,
// cart, admin editor and checkout handoff, all running against a
// pluggable CRUD data source.
package shop

import (
	"strings"

	"github.com/pkg/errors"
)

// Product categories form a closed set.
const (
	CategoryGifts  = "Gifts"
	CategoryDecors = "Decors"
)

// Product is a sellable catalog item. Every product the session renders
// carries at least one image and a category from the fixed set.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Clone returns a deep copy. Cart entries are snapshots, so later
// catalog edits must never reach through a shared slice.
func (p Product) Clone() Product {
	cp := p
	cp.Images = make([]string, len(p.Images))
	copy(cp.Images, p.Images)
	return cp
}

// PrimaryImage is the first image, the one product cards render.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Draft is a product without an identifier, the create/replace payload.
// Identifiers are assigned by the data source.
type Draft struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Validate enforces the catalog invariants the persistence layer insists
// on: a name, a non-negative price, a known category and at least one image.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.Wrap(ErrValidation, "name is required")
	}
	if d.Price < 0 {
		return errors.Wrap(ErrValidation, "price must be non-negative")
	}
	if d.Category != CategoryGifts && d.Category != CategoryDecors {
		return errors.Wrapf(ErrValidation, "unknown category %q", d.Category)
	}
	if len(d.Images) == 0 {
		return errors.Wrap(ErrValidation, "at least one image is required")
	}
	for _, img := range d.Images {
		if strings.TrimSpace(img) == "" {
			return errors.Wrap(ErrValidation, "image url must not be blank")
		}
	}
	return nil
}

// apply copies the draft's mutable fields onto an existing product,
// preserving its identity.
func (d Draft) apply(p *Product) {
	p.Name = d.Name
	p.Price = d.Price
	p.Category = d.Category
	p.Description = d.Description
	p.Images = make([]string, len(d.Images))
	copy(p.Images, d.Images)
}

// DefaultCatalog is the seed set a fresh local-mode store starts with.
func DefaultCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Scented Candle Gift Set", Price: 450, Category: CategoryGifts,
			Description: "Set of three soy wax candles in lavender, rose and sandalwood.",
			Images:      []string{"https://images.shamisthub.in/products/candle-set.jpg"}},
		{ID: 2, Name: "Handmade Chocolate Hamper", Price: 899, Category: CategoryGifts,
			Description: "Assorted artisanal chocolates in a jute gift hamper.",
			Images:      []string{"https://images.shamisthub.in/products/chocolate-hamper.jpg"}},
		{ID: 3, Name: "Dried Flower Bouquet", Price: 650, Category: CategoryGifts,
			Description: "Everlasting bouquet of dried pampas and lavender.",
			Images:      []string{"https://images.shamisthub.in/products/dried-bouquet.jpg"}},
		{ID: 4, Name: "Macrame Wall Hanging", Price: 1200, Category: CategoryDecors,
			Description: "Hand-knotted cotton macrame, 90cm drop.",
			Images:      []string{"https://images.shamisthub.in/products/macrame.jpg"}},
		{ID: 5, Name: "Ceramic Bud Vase", Price: 750, Category: CategoryDecors,
			Description: "Matte-glazed stoneware vase for single stems.",
			Images:      []string{"https://images.shamisthub.in/products/bud-vase.jpg"}},
		{ID: 6, Name: "Fairy Light Mason Jar", Price: 350, Category: CategoryDecors,
			Description: "Warm-white LED string lights in a sealed mason jar.",
			Images:      []string{"https://images.shamisthub.in/products/fairy-jar.jpg"}},
	}
}
