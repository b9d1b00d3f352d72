package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "project-hub.com/project-hub/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RequestLogger())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/health", h.Health)

	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.GetUser)
	e.DELETE("/users/:id", h.DeleteUser)
	e.POST("/users/:id/profile", h.CreateProfile)
	e.GET("/users/:id/profile", h.GetProfile)
	e.PUT("/users/:id/profile", h.UpdateProfile)
	e.GET("/users/:id/notifications", h.ListUserNotifications)

	e.POST("/projects", h.CreateProject)
	e.GET("/projects", h.ListProjects)
	e.GET("/projects/:id", h.GetProject)
	e.PUT("/projects/:id", h.UpdateProject)
	e.DELETE("/projects/:id", h.DeleteProject)
	e.PUT("/projects/:id/status", h.ChangeProjectStatus)
	e.GET("/projects/:id/status-logs", h.ListProjectStatusLogs)
	e.PUT("/projects/:id/members", h.SetProjectMembers)
	e.POST("/projects/:id/tasks", h.CreateTask)
	e.GET("/projects/:id/tasks", h.ListProjectTasks)
	e.GET("/projects/:id/whiteboard", h.GetWhiteboard)
	e.PUT("/projects/:id/whiteboard", h.SaveWhiteboard)

	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.PUT("/tasks/:id/status", h.ChangeTaskStatus)
	e.PUT("/tasks/:id/assignees", h.SetTaskAssignees)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.POST("/notifications", h.CreateNotification)
	e.POST("/notifications/:id/read", h.MarkNotificationRead)

	adminGroup := e.Group("/admin")
	adminGroup.GET("/profiles", h.AdminProfiles)
	adminGroup.GET("/projects", h.AdminProjects)
}
