package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/slalom/capabilities-system/internal/api/handler"
	"github.com/slalom/capabilities-system/internal/api/middleware"
	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
	"github.com/slalom/capabilities-system/internal/infrastructure/http/handlers"
)

// Deps bundles the collaborators the router wires into handlers. The
// services are constructed once at startup and shared by all requests.
type Deps struct {
	AuthService       ports.AuthService
	CapabilityService ports.CapabilityService
	Health            *handlers.ReadinessHandler
	Logger            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("capabilities"))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	capabilityHandler := handler.NewCapabilityHandler(deps.CapabilityService)
	authMiddleware := middleware.Auth(deps.AuthService)
	leadOnly := middleware.RBAC(domain.RolePracticeLead, domain.RoleAdmin)

	// The web UI used to live at the root; the catalog is the next best landing spot.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/capabilities")
	})

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Capability routes ---
	e.GET("/capabilities", capabilityHandler.List)
	e.POST("/capabilities/:name/register", capabilityHandler.Register, authMiddleware, leadOnly)
	e.DELETE("/capabilities/:name/unregister", capabilityHandler.Unregister, authMiddleware, leadOnly)
	e.POST("/capabilities/:name/request", capabilityHandler.Request)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", deps.Health.Readiness)     // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
