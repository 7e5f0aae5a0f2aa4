package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateProject creates a project inside an organization.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	project, err := h.uc.CreateProject(c.Context(), actor, entities.Project{
		Name:           body.Name,
		Description:    body.Description,
		OrganizationID: body.OrganizationID,
		ManagerID:      body.ManagerID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOProject(*project))
}

// GetProject returns one project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.uc.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// ListProjects lists an organization's projects.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ProjectsByOrganization(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	res := make([]dto.Project, 0, len(projects))
	for _, p := range projects {
		res = append(res, mapper.ToDTOProject(p))
	}
	return c.Status(http.StatusOK).JSON(res)
}

// AssignProjectUsers adds users to the project membership.
func (h *Handler) AssignProjectUsers(c *fiber.Ctx) error {
	var body dto.AssignUsersRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.AssignUsersToProject(c.Context(), c.Params("id"), body.UserEmails); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetProjectStats returns bug counters for a project.
func (h *Handler) GetProjectStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetProjectStats(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProjectStats(stats))
}
