package adminapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/domain"
	"github.com/shamisthub/storefront/internal/webserver"
)

const productListCacheKey = "storefront:products:list"

// cachedProductList serves the full newest-first catalog from redis.
// Misses and a disabled cache both report ok=false.
func cachedProductList(c echo.Context) ([]domain.Product, bool) {
	rdb := webserver.AppCtx(c).Redis()
	if rdb == nil {
		return nil, false
	}
	data, err := rdb.Get(c.Request().Context(), productListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []domain.Product
	if err := json.Unmarshal(data, &rows); err != nil {
		zap.L().Warn("corrupt product list cache entry, dropping", zap.Error(err))
		rdb.Del(c.Request().Context(), productListCacheKey)
		return nil, false
	}
	return rows, true
}

func storeProductListCache(c echo.Context, rows []domain.Product) {
	rdb := webserver.AppCtx(c).Redis()
	if rdb == nil {
		return
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	ttl := time.Duration(webserver.AppCtx(c).Config().Redis.TTLSec) * time.Second
	if err := rdb.Set(c.Request().Context(), productListCacheKey, data, ttl).Err(); err != nil {
		zap.L().Warn("product list cache store failed", zap.Error(err))
	}
}

// invalidateProductListCache runs after every catalog mutation.
func invalidateProductListCache(c echo.Context) {
	rdb := webserver.AppCtx(c).Redis()
	if rdb == nil {
		return
	}
	if err := rdb.Del(c.Request().Context(), productListCacheKey).Err(); err != nil {
		zap.L().Warn("product list cache invalidation failed", zap.Error(err))
	}
}
