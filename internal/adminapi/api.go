// Package adminapi exposes the storefront REST API: public catalog
// reads, operator-gated catalog mutations and operator auth.
package adminapi

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shamisthub/storefront/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Init registers all API routes. Call after webserver.Init.
func Init() {
	registerAuthRoutes()
	registerProductRoutes()
}

func GetDB(c echo.Context) *gorm.DB {
	return webserver.AppCtx(c).DB()
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"data": data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"error": apiError{Code: code, Message: message, Detail: detail},
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":     rows,
		"total":    total,
		"page":     page,
		"per_page": pageSize,
	})
}

// parsePagination reads page/pageSize query params, zero when absent.
func parsePagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return page, pageSize
}
