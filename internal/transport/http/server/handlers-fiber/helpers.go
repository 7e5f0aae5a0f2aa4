package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	body := dto.ErrorBody{Code: dto.INTERNAL, Message: "internal error"}

	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body = dto.ErrorBody{Code: dto.VALIDATIONFAILED, Message: verr.Error(), Fields: verr.Fields}
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		body = dto.ErrorBody{Code: dto.VALIDATIONFAILED, Message: err.Error()}
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		body = dto.ErrorBody{Code: dto.PERMISSIONDENIED, Message: err.Error()}
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrOrganizationNotFound),
		errors.Is(err, entities.ErrBugNotFound),
		errors.Is(err, entities.ErrCommentNotFound),
		errors.Is(err, entities.ErrNotificationNotFound):
		status = http.StatusNotFound
		body = dto.ErrorBody{Code: dto.NOTFOUND, Message: err.Error()}
	case errors.Is(err, entities.ErrUserExists), errors.Is(err, entities.ErrOrganizationExists):
		status = http.StatusConflict
		body = dto.ErrorBody{Code: dto.CONFLICT, Message: err.Error()}
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: body})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: dto.ErrorBody{Code: dto.VALIDATIONFAILED, Message: msg},
	})
}

// actorEmail returns the acting user's email injected by the Actor
// middleware, or an empty string when the header was absent.
func actorEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(middleware.ActorKey).(string)
	return email
}

func requireActor(c *fiber.Ctx) (string, bool) {
	email := actorEmail(c)
	return email, email != ""
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
