package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser creates an account.
func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var body dto.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.RegisterUser(c.Context(), mapper.FromDTORegisterUser(body), body.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOUser(*user))
}

// GetUser returns an account by email.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.GetUserByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*user))
}

// ListOrganizationDevelopers lists active developers of an organization.
func (h *Handler) ListOrganizationDevelopers(c *fiber.Ctx) error {
	devs, err := h.uc.OrganizationDevelopers(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	res := make([]dto.User, 0, len(devs))
	for _, d := range devs {
		res = append(res, mapper.ToDTOUser(d))
	}
	return c.Status(http.StatusOK).JSON(res)
}
