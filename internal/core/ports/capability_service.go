package ports

import (
	"context"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

type CapabilityService interface {
	// List returns a snapshot of the full catalog keyed by capability name.
	List(ctx context.Context) map[string]*domain.Capability
	// Register appends a consultant to a capability's roster.
	Register(ctx context.Context, capabilityName, email string, actor *domain.User) error
	// Unregister removes a consultant from a capability's roster.
	Unregister(ctx context.Context, capabilityName, email string, actor *domain.User) error
	// RequestRegistration is the unauthenticated self-service entry point.
	// It validates the capability exists but performs no mutation; approval
	// workflow integration never landed, so it only acknowledges.
	RequestRegistration(ctx context.Context, capabilityName, email string) error
}
