package ports

import (
	"context"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies the password and returns a signed bearer token
	// together with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate validates a bearer token and resolves its subject
	// against the credential store.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
