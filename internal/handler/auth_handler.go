package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/middleware"
	"github.com/taskhive/taskhive-backend/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.authService.Register(service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "email", Message: "Email is required"},
			})
		case errors.Is(err, domain.ErrPasswordRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "password", Message: "Password is required"},
			})
		case errors.Is(err, domain.ErrEmailTaken):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "email", Message: "Email is already registered"},
			})
		}
		log.Error().Err(err).Msg("Failed to register user")
		return NewInternalError(c, "Failed to register user")
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Identical response for unknown email and wrong password
			return NewUnauthorizedError(c, "Invalid credentials")
		}
		log.Error().Err(err).Msg("Failed to log in user")
		return NewInternalError(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.GetUserID(c)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get user")
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
