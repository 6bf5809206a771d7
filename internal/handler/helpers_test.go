package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive-backend/internal/middleware"
)

// setupAuthContext injects an authenticated user ID into the request context,
// mimicking what the auth middleware does after token validation.
func setupAuthContext(c echo.Context, userID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}
