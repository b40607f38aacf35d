package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"

	"github.com/shamisthub/storefront/internal/app"
)

const (
	sessionName     = "storefront_session"
	sessionAdminKey = "isAdmin"
	appCtxKey       = "appctx"
)

var server *WebServer

// WebServer wraps the echo instance and the two API groups: public
// reads and the operator-gated mutations.
type WebServer struct {
	appCtx    app.AppContext
	root      *echo.Echo
	api       *echo.Group
	adminApi  *echo.Group
	jwtSecret []byte
}

// Init builds the package-level server. Handlers register themselves
// afterwards through the Api* helpers.
func Init(appCtx app.AppContext) *WebServer {
	cfg := appCtx.Config()

	sessionSecret := cfg.Web.SessionSecret
	if sessionSecret == "" {
		sessionSecret = random.String(32)
		zap.L().Warn("web session secret not configured, using a random one; sessions will not survive restarts")
	}
	jwtSecret := cfg.Web.JwtSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32)
		zap.L().Warn("web jwt secret not configured, using a random one; issued tokens will not survive restarts")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appCtxKey, appCtx)
			return next(c)
		}
	})

	s := &WebServer{
		appCtx:    appCtx,
		root:      e,
		jwtSecret: []byte(jwtSecret),
	}
	s.api = e.Group("/api")
	// mutations accept either an operator session or a bearer token;
	// the jwt check is skipped when the session flag is present
	s.adminApi = e.Group("/api", echojwt.WithConfig(echojwt.Config{
		SigningKey: s.jwtSecret,
		Skipper:    HasAdminSession,
	}))

	server = s
	return s
}

// Listen blocks serving HTTP until the server stops.
func Listen() error {
	cfg := server.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("starting web server on %s", addr)
	err := server.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// Echo exposes the root instance for page-level route groups.
func Echo() *echo.Echo {
	return server.root
}

// Public read endpoints.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// Public POST (login).
func PubPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// Operator-gated mutations.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.adminApi.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.adminApi.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.adminApi.DELETE(path, h)
}

// AppCtx pulls the application context injected by middleware.
func AppCtx(c echo.Context) app.AppContext {
	return c.Get(appCtxKey).(app.AppContext)
}

// CreateToken issues a bearer token for API clients of the operator
// endpoints.
func CreateToken(username, level string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   username,
		"level": level,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(server.jwtSecret)
}

// SetAdminSession marks the operator session after a successful login.
func SetAdminSession(c echo.Context, username string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: 86400, HttpOnly: true}
	sess.Values[sessionAdminKey] = username
	return sess.Save(c.Request(), c.Response())
}

func ClearAdminSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, sessionAdminKey)
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	return sess.Save(c.Request(), c.Response())
}

// HasAdminSession reports whether the request carries a logged-in
// operator session.
func HasAdminSession(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	_, ok := sess.Values[sessionAdminKey]
	return ok
}
