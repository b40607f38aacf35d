package app

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shamisthub/storefront/internal/domain"
	"github.com/shamisthub/storefront/internal/shop"
	"github.com/shamisthub/storefront/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// checkSuper makes sure the default store operator exists and is usable.
func (a *Application) checkSuper() {
	superUsername := a.appConfig.Shop.AdminUsername
	defaultPassword := a.appConfig.Shop.AdminPassword

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default operator password", zap.Error(err))
		return
	}

	var operator domain.SysOpr
	err = a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.NextID(),
			Realname:  "store administrator",
			Email:     "N/A",
			Username:  superUsername,
			Password:  string(hashed),
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default operator", zap.Error(err))
		} else {
			zap.L().Info("initialized default operator account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query default operator", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetLevel := !strings.EqualFold(operator.Level, "super")
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)

	if !resetPassword && !resetLevel && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = string(hashed)
	}
	if resetLevel {
		updates["level"] = "super"
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair default operator account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default operator account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("levelReset", resetLevel),
		zap.Bool("statusEnabled", resetStatus))
}

// defaultSettings are created once when missing.
var defaultSettings = []domain.SysConfig{
	{Sort: 1, Type: "shop", Name: "title", Value: "ShamistHub", Remark: "Store display name"},
	{Sort: 2, Type: "shop", Name: "currency_symbol", Value: "₹", Remark: "Display currency symbol"},
	{Sort: 3, Type: "shop", Name: "featured_count", Value: "3", Remark: "Products on the home page"},
}

func (a *Application) checkSettings() {
	for _, setting := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", setting.Type, setting.Name).
			Count(&count)
		if count == 0 {
			setting.ID = common.NextID()
			a.gormDB.Create(&setting)
			zap.L().Info("initialized config",
				zap.String("key", setting.Type+"."+setting.Name),
				zap.String("default", setting.Value))
		}
	}
}

// checkCatalogSeed loads the default product set into an empty catalog
// so a fresh install renders a populated store.
func (a *Application) checkCatalogSeed() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}
	for _, p := range shop.DefaultCatalog() {
		row := domain.Product{
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			Description: p.Description,
			Images:      domain.StringList(p.Images),
		}
		if err := a.gormDB.Create(&row).Error; err != nil {
			zap.L().Error("failed to seed product", zap.String("name", p.Name), zap.Error(err))
		}
	}
	zap.L().Info("seeded default catalog", zap.Int("count", len(shop.DefaultCatalog())))
}
