package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// HeaderUserEmail identifies the acting user on every request.
// Authentication happens upstream; the gateway injects this header.
const HeaderUserEmail = "X-User-Email"

// ActorKey is the fiber.Ctx.Locals key holding the actor email.
const ActorKey = "actorEmail"

// Actor extracts the acting user's email into the request context.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if email := c.Get(HeaderUserEmail); email != "" {
			c.Locals(ActorKey, email)
		}
		return c.Next()
	}
}
