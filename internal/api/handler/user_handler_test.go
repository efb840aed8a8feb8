package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/api/middleware"
	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	profileFn  func(ctx context.Context, userID string) (*domain.User, error)
	updateFn   func(ctx context.Context, userID string, input ports.UpdateUserInput) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubUserService) Update(ctx context.Context, userID string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "ildevert" || input.Role != domain.RoleAdmin {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Username: input.Username, Email: input.Email, Role: input.Role, PasswordHash: "bcrypt-hash"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/users/register",
		`{"username":"ildevert","email":"ildevert@gmail.com","password":"auroredivine","role":"ADMIN"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "ildevert" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	// The hash must never serialize, under any key.
	for k := range resp {
		if strings.Contains(strings.ToLower(k), "password") {
			t.Fatalf("password leaked under key %q", k)
		}
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	// password and role missing.
	c, _ := jsonRequest(e, http.MethodPost, "/users/register",
		`{"username":"ildevert","email":"ildevert@gmail.com"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestUserHandler_Register_ShortUsername(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/users/register",
		`{"username":"ab","email":"a@b.com","password":"x","role":"CUSTOMER"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/users/register",
		`{"username":"ildevert","email":"ildevert@gmail.com","password":"x","role":"ADMIN"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "ildevert@gmail.com" || password != "auroredivine" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/users/login",
		`{"email":"ildevert@gmail.com","password":"auroredivine"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// A successful login returns 201, matching the original contract.
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/users/login",
		`{"email":"john.doe@gmail.com","password":"john1234"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: "u1", Username: "ildevert", Email: "ildevert@gmail.com", Role: domain.RoleAdmin, PasswordHash: "hash"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/users/me", "")
	c.Set(middleware.ContextKeyUserID, "u1")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "ildevert" || resp["email"] != "ildevert@gmail.com" || resp["role"] != "ADMIN" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password present in profile")
	}
}

func TestUserHandler_Me_NoAuthContext(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubUserService{})

	c, _ := jsonRequest(e, http.MethodGet, "/users/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUserHandler_Update_SparseFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, input ports.UpdateUserInput) (*domain.User, error) {
			if input.Email == nil || *input.Email != "new@example.com" {
				t.Fatalf("email not forwarded: %+v", input)
			}
			if input.Username != nil || input.Password != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.User{ID: userID, Username: "ildevert", Email: *input.Email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := jsonRequest(e, http.MethodPatch, "/users/me", `{"email":"new@example.com"}`)
	c.Set(middleware.ContextKeyUserID, "u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
