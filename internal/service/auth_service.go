package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/auth"
	"github.com/taskhive/taskhive-backend/internal/domain"
)

// AuthService handles registration, credential verification and bearer
// tokens.
type AuthService struct {
	userRepo domain.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput holds the input for registering a user
type RegisterInput struct {
	Email    string
	Password string
	Name     *string
}

// LoginResult holds the issued token and the authenticated user
type LoginResult struct {
	Token string
	User  *domain.User
}

// Register creates a new user with a salted one-way password hash. The
// plaintext password is never stored and no secret material is returned;
// the caller must authenticate separately.
func (s *AuthService) Register(input RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, domain.ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user, err := s.userRepo.Create(&domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to issue token")
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("User logged in")
	return &LoginResult{Token: token, User: user}, nil
}

// Verify validates a bearer token and returns the embedded user id.
func (s *AuthService) Verify(token string) (uuid.UUID, error) {
	return s.tokens.Verify(token)
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}
