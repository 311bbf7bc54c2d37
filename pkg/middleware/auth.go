// Package middleware provides the JWT guard and the role check used by the
// mutating routes.
package middleware

import (
	"errors"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtProtected verifies the bearer token and stores it in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
}

// RequireRole rejects requests whose verified token does not carry the
// role. Runs after JwtProtected.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
		}
		if !hasRole(claims, role) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"status": "error", "message": "Insufficient role"})
		}
		return c.Next()
	}
}

func hasRole(claims jwt.MapClaims, role string) bool {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return false
	}
	for _, r := range raw {
		if s, ok := r.(string); ok && s == role {
			return true
		}
	}
	return false
}
