package adminapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/shamisthub/storefront/internal/domain"
)

type productExportRow struct {
	ID          int64   `csv:"id"`
	Name        string  `csv:"name"`
	Price       float64 `csv:"price"`
	Category    string  `csv:"category"`
	Description string  `csv:"description"`
	Images      string  `csv:"images"`
	CreatedAt   string  `csv:"created_at"`
}

// exportProducts streams the catalog as CSV for offline bookkeeping.
func exportProducts(c echo.Context) error {
	var products []domain.Product
	if err := GetDB(c).Order("created_at DESC").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	rows := make([]productExportRow, 0, len(products))
	for _, p := range products {
		images, _ := json.MarshalToString([]string(p.Images))
		rows = append(rows, productExportRow{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			Description: p.Description,
			Images:      images,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to render export", err.Error())
	}

	filename := fmt.Sprintf("catalog-%s.csv", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
