package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/shamisthub/storefront/internal/domain"
	"github.com/shamisthub/storefront/internal/webserver"
)

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/login", login)
	webserver.PubPOST("/auth/logout", logout)
}

// login checks operator credentials, marks the session and issues a
// bearer token for API clients.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username and password are required", nil)
	}

	var operator domain.SysOpr
	if err := GetDB(c).Where("username = ?", payload.Username).First(&operator).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(payload.Password)); err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
	}

	token, err := webserver.CreateToken(operator.Username, operator.Level)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}
	if err := webserver.SetAdminSession(c, operator.Username); err != nil {
		zap.L().Warn("failed to persist operator session", zap.Error(err))
	}

	GetDB(c).Model(&domain.SysOpr{}).Where("id = ?", operator.ID).
		Update("last_login", time.Now())

	zap.L().Info("operator logged in", zap.String("username", operator.Username))
	return ok(c, map[string]interface{}{
		"username": operator.Username,
		"level":    operator.Level,
		"token":    token,
	})
}

func logout(c echo.Context) error {
	if err := webserver.ClearAdminSession(c); err != nil {
		zap.L().Warn("failed to clear operator session", zap.Error(err))
	}
	return ok(c, map[string]interface{}{"logout": true})
}
