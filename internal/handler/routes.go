package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, taskHandler *TaskHandler, listHandler *ListHandler, workspaceHandler *WorkspaceHandler) {
	api := e.Group("/api")

	// Auth routes. Register and login are public but rate limited per
	// client IP to damp credential stuffing.
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(rateLimiter))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware.Authenticate())

	// Task routes (protected)
	tasks := api.Group("/tasks")
	tasks.Use(authMiddleware.Authenticate())
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// List routes (protected)
	lists := api.Group("/lists")
	lists.Use(authMiddleware.Authenticate())
	lists.POST("", listHandler.CreateList)
	lists.GET("", listHandler.GetLists)
	lists.GET("/:id", listHandler.GetList)
	lists.PUT("/:id", listHandler.UpdateList)
	lists.DELETE("/:id", listHandler.DeleteList)

	// Workspace routes (protected)
	workspaces := api.Group("/workspaces")
	workspaces.Use(authMiddleware.Authenticate())
	workspaces.POST("", workspaceHandler.CreateWorkspace)
	workspaces.GET("", workspaceHandler.GetWorkspaces)
	workspaces.GET("/:id", workspaceHandler.GetWorkspace)
	workspaces.PUT("/:id", workspaceHandler.UpdateWorkspace)
	workspaces.DELETE("/:id", workspaceHandler.DeleteWorkspace)
	workspaces.POST("/:id/members", workspaceHandler.AddMember)
	workspaces.DELETE("/:id/members/:memberId", workspaceHandler.RemoveMember)
}
