package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/ridebite/backend/internal/config"
	"github.com/ridebite/backend/internal/dto"
)

// JWTProtected rejects requests without a valid bearer token. The parsed
// token lands in c.Locals("user") for the route guard.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:    true,
				Message:  "Unauthorized: invalid or expired token",
				Redirect: loginRedirect(c),
			})
		},
	})
}
