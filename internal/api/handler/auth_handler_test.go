package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

type stubAuthService struct {
	user *domain.User
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.user != nil && username == s.user.Username && password == "pass123" {
		return "issued-token", s.user, nil
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token == "issued-token" && s.user != nil {
		return s.user, nil
	}
	return nil, domain.ErrInvalidToken
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	lead := &domain.User{
		Username:      "jane.doe",
		Email:         "jane.doe@slalom.com",
		Role:          domain.RolePracticeLead,
		PracticeAreas: []string{"Technology"},
		FullName:      "Jane Doe",
		PasswordHash:  "ignored",
	}
	h := NewAuthHandler(&stubAuthService{user: lead})

	c, rec := newAuthTestContext(t, `{"username":"jane.doe","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Username      string   `json:"username"`
			Email         string   `json:"email"`
			Role          string   `json:"role"`
			PracticeAreas []string `json:"practice_areas"`
			FullName      string   `json:"full_name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "issued-token" {
		t.Fatalf("expected issued token, got %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp.TokenType)
	}
	if resp.User.Username != "jane.doe" || resp.User.Role != "practice_lead" || resp.User.FullName != "Jane Doe" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("password hash must never be serialized: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_BadPassword(t *testing.T) {
	lead := &domain.User{Username: "jane.doe"}
	h := NewAuthHandler(&stubAuthService{user: lead})

	c, rec := newAuthTestContext(t, `{"username":"jane.doe","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "access_token") {
		t.Fatalf("no token must be issued on failed login: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(t, `{"username":"jane.doe"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	lead := &domain.User{
		Username:      "jane.doe",
		Email:         "jane.doe@slalom.com",
		Role:          domain.RolePracticeLead,
		PracticeAreas: []string{"Technology"},
		FullName:      "Jane Doe",
	}
	h := NewAuthHandler(&stubAuthService{user: lead})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", lead)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"username":"jane.doe"`) {
		t.Fatalf("unexpected profile payload: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Successfully logged out") {
		t.Fatalf("unexpected logout payload: %s", rec.Body.String())
	}
}
