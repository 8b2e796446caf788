package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/slalom/capabilities-system/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Reports the credential store population and, when an audit stream is
// configured, Redis connectivity. The catalog is in-process, so there is
// no datastore to check.
type ReadinessHandler struct {
	store ports.CredentialStore
	redis *redis.Client // nil when the audit stream is disabled
}

func NewReadinessHandler(store ports.CredentialStore, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		store: store,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Users  int    `json:"users,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Credential store population ---
	// An empty store is still "up", but worth surfacing: every
	// authenticated operation will be rejected until users are loaded.
	if n := h.store.Count(); n == 0 {
		deps["credential_store"] = dependencyStatus{Status: "empty"}
	} else {
		deps["credential_store"] = dependencyStatus{Status: "ok", Users: n}
	}

	// --- Redis ping (audit stream, optional) ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
