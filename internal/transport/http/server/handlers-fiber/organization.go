package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateOrganization creates an organization with the actor as admin.
func (h *Handler) CreateOrganization(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.CreateOrganizationRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	org, err := h.uc.CreateOrganization(c.Context(), actor, entities.Organization{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOOrganization(*org))
}

// GetOrganization returns one organization by id.
func (h *Handler) GetOrganization(c *fiber.Ctx) error {
	org, err := h.uc.GetOrganization(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrganization(*org))
}

// ListOrganizations lists the acting user's organizations.
func (h *Handler) ListOrganizations(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	orgs, err := h.uc.OrganizationsForUser(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	res := make([]dto.Organization, 0, len(orgs))
	for _, o := range orgs {
		res = append(res, mapper.ToDTOOrganization(o))
	}
	return c.Status(http.StatusOK).JSON(res)
}

// AddOrganizationMembers enrolls users into an organization.
func (h *Handler) AddOrganizationMembers(c *fiber.Ctx) error {
	var body dto.AddMembersRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.AddOrganizationMembers(c.Context(), c.Params("id"), body.MemberEmails); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetOrganizationStats returns counters for an organization.
func (h *Handler) GetOrganizationStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetOrganizationStats(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrganizationStats(stats))
}
