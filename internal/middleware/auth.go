package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/pkg/utils"
)

// AuthRequired rejects requests without a valid bearer token. Every failure
// mode returns the same opaque 401 body; the distinct reason goes to the log
// so the response can not be used as a token oracle.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "malformed authorization header")
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return unauthorized(c, "token rejected: "+err.Error())
		}

		c.Locals("user_id", claims.UserID)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, reason string) error {
	log.Printf("auth: %s %s: %s", c.Method(), c.Path(), reason)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid or expired token",
	})
}
