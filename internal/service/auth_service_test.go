package service

import (
	"errors"
	"testing"

	"github.com/taskhive/taskhive-backend/internal/auth"
	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/testutil"
)

func newAuthService() (*AuthService, *testutil.MockUserRepository) {
	userRepo := testutil.NewMockUserRepository()
	hasher := auth.NewPasswordHasher(4) // min cost keeps tests fast
	tokens := auth.NewTokenManager("test-secret")
	return NewAuthService(userRepo, hasher, tokens), userRepo
}

func TestRegister_Success(t *testing.T) {
	authService, _ := newAuthService()

	name := "Alice"
	user, err := authService.Register(RegisterInput{
		Email:    "alice@x.com",
		Password: "pw1",
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Email != "alice@x.com" {
		t.Errorf("Expected email 'alice@x.com', got %s", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "pw1" {
		t.Error("Expected a one-way hash, not the plaintext password")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected createdAt to be set")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	authService, _ := newAuthService()

	if _, err := authService.Register(RegisterInput{Email: "alice@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := authService.Register(RegisterInput{Email: "alice@x.com", Password: "other"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	authService, _ := newAuthService()

	if _, err := authService.Register(RegisterInput{Email: "", Password: "pw1"}); !errors.Is(err, domain.ErrEmailRequired) {
		t.Errorf("Expected ErrEmailRequired, got %v", err)
	}
	if _, err := authService.Register(RegisterInput{Email: "  ", Password: "pw1"}); !errors.Is(err, domain.ErrEmailRequired) {
		t.Errorf("Expected ErrEmailRequired for blank email, got %v", err)
	}
	if _, err := authService.Register(RegisterInput{Email: "alice@x.com", Password: ""}); !errors.Is(err, domain.ErrPasswordRequired) {
		t.Errorf("Expected ErrPasswordRequired, got %v", err)
	}
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	authService, _ := newAuthService()

	user, err := authService.Register(RegisterInput{Email: "alice@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	result, err := authService.Login("alice@x.com", "pw1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("Expected a token")
	}
	if result.User.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, result.User.ID)
	}

	userID, err := authService.Verify(result.Token)
	if err != nil {
		t.Fatalf("Expected token to verify, got %v", err)
	}
	if userID != user.ID {
		t.Errorf("Expected token to decode to %s, got %s", user.ID, userID)
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	authService, _ := newAuthService()

	if _, err := authService.Register(RegisterInput{Email: "alice@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Unknown email and wrong password must yield the identical error so
	// callers cannot enumerate users.
	_, unknownErr := authService.Login("nobody@x.com", "pw1")
	_, wrongErr := authService.Login("alice@x.com", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("Expected identical errors, got %q vs %q", unknownErr, wrongErr)
	}
}

func TestVerify_GarbageToken(t *testing.T) {
	authService, _ := newAuthService()

	if _, err := authService.Verify("garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
