package session

import (
	"github.com/gofiber/fiber/v2"
)

const clientIDKey = "session_client_id"

// Middleware ensures every request carries a valid client id, issuing a
// fresh signed cookie when the incoming one is absent or tampered with.
func Middleware(codec *CookieCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(codec.Name()); raw != "" {
			if sid, err := codec.Parse(raw); err == nil {
				c.Locals(clientIDKey, sid)
				return c.Next()
			}
		}

		sid, signed, expiresAt, err := codec.Issue()
		if err != nil {
			return err
		}
		c.Cookie(&fiber.Cookie{
			Name:     codec.Name(),
			Value:    signed,
			Expires:  expiresAt,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(clientIDKey, sid)
		return c.Next()
	}
}

// ClientIDFromContext retrieves the client id set by Middleware.
func ClientIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(clientIDKey)
	if val == nil {
		return "", false
	}
	sid, ok := val.(string)
	return sid, ok && sid != ""
}
