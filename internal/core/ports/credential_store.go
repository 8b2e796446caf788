package ports

import (
	"context"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

// CredentialStore defines the interface for looking up user credentials.
// Implementations are read-only: the user set is fixed at startup.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Count() int
}
