package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// AddComment stores a comment on a bug.
func (h *Handler) AddComment(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	comment, err := h.uc.AddComment(c.Context(), actor, c.Params("id"), body.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOComment(*comment))
}

// ListComments lists a bug's comments oldest first.
func (h *Handler) ListComments(c *fiber.Ctx) error {
	comments, err := h.uc.CommentsForBug(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOComments(comments))
}

// UpdateComment rewrites a comment's content. Author only.
func (h *Handler) UpdateComment(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	comment, err := h.uc.EditComment(c.Context(), c.Params("id"), actor, body.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOComment(*comment))
}

// DeleteComment removes a comment. Author only.
func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	if err := h.uc.DeleteComment(c.Context(), c.Params("id"), actor); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
