package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	oauthFn    func(ctx context.Context, profile ports.OAuthProfile) (string, *domain.User, error)
	resetReqs  []string
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) LoginOAuth(ctx context.Context, profile ports.OAuthProfile) (string, *domain.User, error) {
	return s.oauthFn(ctx, profile)
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, email string) error {
	s.resetReqs = append(s.resetReqs, email)
	return nil
}

func (s *stubAuthService) CompletePasswordReset(context.Context, string, string) error {
	return nil
}

type stubOAuthProvider struct {
	exchangeFn func(ctx context.Context, code string) (*ports.OAuthProfile, error)
}

func (p *stubOAuthProvider) AuthURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (p *stubOAuthProvider) Exchange(ctx context.Context, code string) (*ports.OAuthProfile, error) {
	return p.exchangeFn(ctx, code)
}

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected response user: %+v", resp.User)
	}
	if resp.Token != "" {
		t.Fatal("register must not issue a token")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{}, nil)

	c, _ := jsonContext(e, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"abc"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := jsonContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_OAuthStart_SetsStateCookie(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, &stubOAuthProvider{})

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.OAuthStart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	var state string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == oauthStateCookie {
			state = ck.Value
		}
	}
	if state == "" {
		t.Fatal("state cookie not set")
	}
	if loc := rec.Header().Get(echo.HeaderLocation); !strings.Contains(loc, state) {
		t.Fatalf("redirect %q does not carry state %q", loc, state)
	}
}

func TestAuthHandler_OAuthStart_NotConfigured(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, nil)

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/google", nil), httptest.NewRecorder())
	err := h.OAuthStart(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestAuthHandler_OAuthCallback_Success(t *testing.T) {
	e := echo.New()

	stub := &stubAuthService{
		oauthFn: func(_ context.Context, profile ports.OAuthProfile) (string, *domain.User, error) {
			if profile.Email != "alice@example.com" {
				t.Fatalf("unexpected profile: %+v", profile)
			}
			return "oauth-token", &domain.User{ID: "u1", Email: profile.Email}, nil
		},
	}
	provider := &stubOAuthProvider{
		exchangeFn: func(_ context.Context, code string) (*ports.OAuthProfile, error) {
			if code != "code123" {
				t.Fatalf("unexpected code %q", code)
			}
			return &ports.OAuthProfile{Subject: "sub1", Email: "alice@example.com", Name: "Alice"}, nil
		},
	}
	h := NewAuthHandler(stub, provider)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=code123&state=st1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "st1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.OAuthCallback(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "oauth-token") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_OAuthCallback_StateMismatch(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, &stubOAuthProvider{})

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=code123&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "st1"})
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.OAuthCallback(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_RequestReset_NonRevealing(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{}
	h := NewAuthHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodPost, "/auth/reset", `{"email":"nobody@example.com"}`)
	if err := h.RequestReset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "If this email exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(stub.resetReqs) != 1 || stub.resetReqs[0] != "nobody@example.com" {
		t.Fatalf("reset request not forwarded: %v", stub.resetReqs)
	}
}
