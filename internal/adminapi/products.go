package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/domain"
	"github.com/shamisthub/storefront/internal/webserver"
)

// productPayload is the create/update body. Pointer fields distinguish
// "absent" from "zero" so update keeps replace semantics: unspecified
// fields retain their prior values.
type productPayload struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

// registerProductRoutes registers the product CRUD endpoints. Reads are
// public, mutations require an operator session or bearer token.
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	// the storefront asks for the whole catalog newest first; cached in
	// redis when available since it backs every page render
	if page <= 0 && pageSize <= 0 {
		if rows, ok := cachedProductList(c); ok {
			return paged(c, rows, int64(len(rows)), 1, len(rows))
		}
		var rows []domain.Product
		if err := GetDB(c).Order("created_at DESC").Find(&rows).Error; err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
		}
		storeProductListCache(c, rows)
		return paged(c, rows, int64(len(rows)), 1, len(rows))
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 20
	}

	db := GetDB(c).Model(&domain.Product{})
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	var rows []domain.Product
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

// validateImages trims and drops empty entries; at least one must remain.
func validateImages(images []string) ([]string, bool) {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if v := strings.TrimSpace(img); v != "" {
			out = append(out, v)
		}
	}
	return out, len(out) > 0
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "Name is required", nil)
	}
	if payload.Price != nil && *payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "Price must be non-negative", nil)
	}
	if !domain.ValidCategory(payload.Category) {
		return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "Category must be 'Gifts' or 'Decors'", nil)
	}
	images, valid := validateImages(payload.Images)
	if !valid {
		return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "At least one image is required", nil)
	}

	now := time.Now()
	p := domain.Product{
		Name:      payload.Name,
		Category:  payload.Category,
		Images:    domain.StringList(images),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.Description != nil {
		p.Description = *payload.Description
	}
	if err := GetDB(c).Create(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	invalidateProductListCache(c)
	zap.L().Info("product created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	// replace semantics: only supplied fields overwrite
	if name := strings.TrimSpace(payload.Name); name != "" {
		p.Name = name
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "Price must be non-negative", nil)
		}
		p.Price = *payload.Price
	}
	if payload.Category != "" {
		if !domain.ValidCategory(payload.Category) {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "Category must be 'Gifts' or 'Decors'", nil)
		}
		p.Category = payload.Category
	}
	if payload.Description != nil {
		p.Description = *payload.Description
	}
	if payload.Images != nil {
		images, valid := validateImages(payload.Images)
		if !valid {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILURE", "At least one image is required", nil)
		}
		p.Images = domain.StringList(images)
	}
	p.UpdatedAt = time.Now()

	if err := GetDB(c).Save(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	invalidateProductListCache(c)
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	// a miss is reported, not silently ignored
	res := GetDB(c).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	invalidateProductListCache(c)
	zap.L().Info("product deleted", zap.Int64("id", id))
	return ok(c, map[string]interface{}{"id": id})
}
