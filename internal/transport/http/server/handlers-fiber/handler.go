// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Swayam792/Bugwise-Backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the service layer over HTTP.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes mounts every API route on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")

	v1.Post("/users", h.RegisterUser)
	v1.Get("/users/:email", h.GetUser)

	v1.Post("/organizations", h.CreateOrganization)
	v1.Get("/organizations", h.ListOrganizations)
	v1.Get("/organizations/:id", h.GetOrganization)
	v1.Post("/organizations/:id/members", h.AddOrganizationMembers)
	v1.Get("/organizations/:id/developers", h.ListOrganizationDevelopers)
	v1.Get("/organizations/:id/statistics", h.GetOrganizationStats)

	v1.Post("/projects", h.CreateProject)
	v1.Get("/projects/:id", h.GetProject)
	v1.Get("/organizations/:id/projects", h.ListProjects)
	v1.Post("/projects/:id/users", h.AssignProjectUsers)
	v1.Get("/projects/:id/statistics", h.GetProjectStats)

	v1.Post("/bugs", h.CreateBug)
	v1.Get("/bugs", h.ListBugsForUser)
	v1.Get("/bugs/statistics", h.GetBugStatisticsForUser)
	v1.Get("/bugs/:id", h.GetBug)
	v1.Put("/bugs/:id", h.UpdateBug)
	v1.Put("/bugs/:id/status", h.UpdateBugStatus)
	v1.Put("/bugs/:id/assign", h.AssignBugToDevelopers)
	v1.Get("/bugs/:id/analysis", h.AnalyzeBug)
	v1.Get("/projects/:id/bugs", h.SearchBugsInProject)
	v1.Get("/projects/:id/bugs/assigned", h.ListAssignedBugs)
	v1.Get("/projects/:id/bugs/statistics", h.GetBugStatistics)
	v1.Post("/projects/:id/bugs/reindex", h.ReindexProject)
	v1.Post("/bugs/reindex", h.ReindexAll)

	v1.Post("/bugs/:id/comments", h.AddComment)
	v1.Get("/bugs/:id/comments", h.ListComments)
	v1.Put("/comments/:id", h.UpdateComment)
	v1.Delete("/comments/:id", h.DeleteComment)

	v1.Get("/notifications", h.ListNotifications)
	v1.Get("/notifications/unread-count", h.UnreadNotificationCount)
	v1.Put("/notifications/:id/read", h.MarkNotificationRead)
	v1.Put("/notifications/read-all", h.MarkAllNotificationsRead)
}
