// Package store provides the file-backed credential store and the
// capability catalog loader. Both are read once at startup; nothing in
// this package writes back to disk.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

// usersDocument is the on-disk shape of the credential store: a JSON
// object with a top-level list of user records.
type usersDocument struct {
	PracticeLeads []userRecord `json:"practice_leads"`
}

type userRecord struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"password_hash"`
	Role          string   `json:"role"`
	PracticeAreas []string `json:"practice_areas"`
	FullName      string   `json:"full_name"`
}

// FileCredentialStore holds the users loaded from the JSON document.
// Read-only after construction, so lookups need no locking.
type FileCredentialStore struct {
	users map[string]*domain.User
}

// LoadCredentialStore reads the users file. A missing file yields an
// empty store (every authenticated operation will then fail with 401);
// a present but malformed file is a startup error.
func LoadCredentialStore(path string, logger zerolog.Logger) (*FileCredentialStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("users file not found, starting with empty credential store")
			return &FileCredentialStore{users: map[string]*domain.User{}}, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var doc usersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse users file %s: %w", path, err)
	}

	users := make(map[string]*domain.User, len(doc.PracticeLeads))
	for _, rec := range doc.PracticeLeads {
		users[rec.Username] = &domain.User{
			Username:      rec.Username,
			Email:         rec.Email,
			Role:          domain.Role(rec.Role),
			PracticeAreas: rec.PracticeAreas,
			FullName:      rec.FullName,
			PasswordHash:  rec.PasswordHash,
		}
	}

	logger.Info().Int("users", len(users)).Str("path", path).Msg("credential store loaded")
	return &FileCredentialStore{users: users}, nil
}

func (s *FileCredentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Count returns the number of loaded users.
func (s *FileCredentialStore) Count() int {
	return len(s.users)
}
