package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
)

// AuthService implements login and bearer-token authentication.
type AuthService struct {
	store     ports.CredentialStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(store ports.CredentialStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// HashPassword produces a salted bcrypt hash of the plaintext password.
// Hashing the same password twice yields different strings; both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A malformed hash is treated as a non-match, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		// Unknown users and bad passwords are indistinguishable to the caller.
		return "", nil, domain.ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate validates the token signature and expiry, then requires the
// subject to still exist in the credential store.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.validateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// validateToken returns the embedded subject only if the signature checks
// out against the process-wide secret, the algorithm is the expected HS256,
// the token has not expired, and a subject claim is present.
func (s *AuthService) validateToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
