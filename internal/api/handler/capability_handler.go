package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slalom/capabilities-system/internal/api/metrics"
	"github.com/slalom/capabilities-system/internal/api/middleware"
	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
)

// CapabilityHandler handles HTTP requests for the capability catalog.
type CapabilityHandler struct {
	service ports.CapabilityService
}

func NewCapabilityHandler(service ports.CapabilityService) *CapabilityHandler {
	return &CapabilityHandler{service: service}
}

// List returns the full catalog including rosters.
//
// @Summary      List all capabilities
// @Tags         capabilities
// @Produce      json
// @Success      200  {object}  map[string]domain.Capability
// @Router       /capabilities [get]
func (h *CapabilityHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Register adds a consultant to a capability roster (practice lead/admin only).
//
// @Summary      Register a consultant for a capability
// @Tags         capabilities
// @Produce      json
// @Security     BearerAuth
// @Param        name   path      string  true  "Capability name"
// @Param        email  query     string  true  "Consultant email"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /capabilities/{name}/register [post]
func (h *CapabilityHandler) Register(c echo.Context) error {
	name := c.Param("name")
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	actor := middleware.UserFromContext(c)
	if actor == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if err := h.service.Register(c.Request().Context(), name, email, actor); err != nil {
		metrics.RosterMutationsTotal.WithLabelValues("register", mutationResult(err)).Inc()
		return mutationError(c, err)
	}

	metrics.RosterMutationsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Registered %s for %s", email, name),
	})
}

// Unregister removes a consultant from a capability roster (practice
// lead/admin only). The consultant email travels as a query parameter to
// stay compatible with existing clients.
//
// @Summary      Unregister a consultant from a capability
// @Tags         capabilities
// @Produce      json
// @Security     BearerAuth
// @Param        name   path      string  true  "Capability name"
// @Param        email  query     string  true  "Consultant email"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /capabilities/{name}/unregister [delete]
func (h *CapabilityHandler) Unregister(c echo.Context) error {
	name := c.Param("name")
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	actor := middleware.UserFromContext(c)
	if actor == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if err := h.service.Unregister(c.Request().Context(), name, email, actor); err != nil {
		metrics.RosterMutationsTotal.WithLabelValues("unregister", mutationResult(err)).Inc()
		return mutationError(c, err)
	}

	metrics.RosterMutationsTotal.WithLabelValues("unregister", "success").Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// Request submits a self-service registration request. No approval
// workflow exists behind this endpoint; it only acknowledges.
//
// @Summary      Request registration for a capability
// @Tags         capabilities
// @Produce      json
// @Param        name   path      string  true  "Capability name"
// @Param        email  query     string  true  "Consultant email"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /capabilities/{name}/request [post]
func (h *CapabilityHandler) Request(c echo.Context) error {
	name := c.Param("name")
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	if err := h.service.RequestRegistration(c.Request().Context(), name, email); err != nil {
		return mutationError(c, err)
	}

	metrics.RegistrationRequestsTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Registration request submitted for %s in %s. Awaiting practice lead approval.", email, name),
	})
}

// mutationError maps registry errors to their HTTP responses.
func mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrCapabilityNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "capability not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions for this practice area"})
	case errors.Is(err, domain.ErrAlreadyRegistered), errors.Is(err, domain.ErrNotRegistered):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return err
}

// mutationResult labels a registry error for metrics.
func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapabilityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrAlreadyRegistered), errors.Is(err, domain.ErrNotRegistered):
		return "conflict"
	}
	return "error"
}
