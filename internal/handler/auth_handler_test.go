package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive-backend/internal/auth"
	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/service"
	"github.com/taskhive/taskhive-backend/internal/testutil"
)

func newAuthHandler() (*AuthHandler, *testutil.MockUserRepository, *auth.TokenManager) {
	userRepo := testutil.NewMockUserRepository()
	hasher := auth.NewPasswordHasher(bcryptTestCost)
	tokens := auth.NewTokenManager("test-secret")
	authService := service.NewAuthService(userRepo, hasher, tokens)
	return NewAuthHandler(authService), userRepo, tokens
}

// bcryptTestCost keeps hashing fast in tests
const bcryptTestCost = 4

func TestRegister_Success(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAuthHandler()

	reqBody := `{"email": "alice@example.com", "password": "s3cret", "name": "Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got %s", response.Email)
	}
	if response.Name == nil || *response.Name != "Alice" {
		t.Errorf("Expected name 'Alice', got %v", response.Name)
	}

	// The password hash must never leak into the response
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Errorf("Response leaked password material: %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAuthHandler()

	reqBody := `{"email": "alice@example.com", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAuthHandler()

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password": "s3cret"}`},
		{"missing password", `{"email": "alice@example.com"}`},
		{"blank email", `{"email": "   ", "password": "s3cret"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			if err := handler.Register(e.NewContext(req, rec)); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	e := echo.New()
	handler, _, tokens := newAuthHandler()

	reqBody := `{"email": "alice@example.com", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	// The returned token must round-trip to the same user
	userID, err := tokens.Verify(response.Token)
	if err != nil {
		t.Fatalf("Issued token failed verification: %v", err)
	}
	if userID.String() != response.User.ID {
		t.Errorf("Token user %s does not match response user %s", userID, response.User.ID)
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAuthHandler()

	reqBody := `{"email": "alice@example.com", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cases := []struct {
		name string
		body string
	}{
		{"unknown email", `{"email": "nobody@example.com", "password": "s3cret"}`},
		{"wrong password", `{"email": "alice@example.com", "password": "wrong"}`},
	}

	var bodies []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			if err := handler.Login(e.NewContext(req, rec)); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", rec.Code)
			}
			bodies = append(bodies, rec.Body.String())
		})
	}

	if len(bodies) == 2 && bodies[0] != bodies[1] {
		t.Errorf("Unknown email and wrong password responses differ:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestMe_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo, _ := newAuthHandler()

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", CreatedAt: time.Now()}
	userRepo.AddUser(user)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, user.ID)

	if err := handler.Me(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != user.ID.String() {
		t.Errorf("Expected user %s, got %s", user.ID, response.ID)
	}
}
