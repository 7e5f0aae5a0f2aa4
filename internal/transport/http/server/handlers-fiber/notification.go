package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications lists the acting user's notifications newest first.
func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	notifications, err := h.uc.NotificationsForUser(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTONotifications(notifications))
}

// UnreadNotificationCount reports the acting user's unread count.
func (h *Handler) UnreadNotificationCount(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	count, err := h.uc.UnreadNotificationCount(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.UnreadCountResponse{Unread: count})
}

// MarkNotificationRead marks one notification as read.
func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.uc.MarkNotificationRead(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// MarkAllNotificationsRead marks all the actor's notifications as read.
func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	if err := h.uc.MarkAllNotificationsRead(c.Context(), actor); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
