package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ridebite/backend/internal/dto"
	"github.com/ridebite/backend/internal/identity"
	"github.com/ridebite/backend/internal/session"
)

const sessionUserKey = "session_user"

// Guard gates protected routes on session state. Each request maps onto
// the session guard machine: loading while the first session-resolution
// pass is pending, redirect for anonymous or revoked callers, allow once
// the profile is resolved. Admin routes treat a non-admin as anonymous.
type Guard struct {
	manager  *session.Manager
	resolver *session.Resolver
	tokens   *identity.TokenService
}

func NewGuard(manager *session.Manager, resolver *session.Resolver, tokens *identity.TokenService) *Guard {
	return &Guard{manager: manager, resolver: resolver, tokens: tokens}
}

// Protected admits any authenticated user. Expects JWTProtected upstream.
func (g *Guard) Protected() fiber.Handler {
	return g.handler("")
}

// AdminOnly admits only users whose profile role is admin.
func (g *Guard) AdminOnly() fiber.Handler {
	return g.handler(session.RoleAdmin)
}

func (g *Guard) handler(required session.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := session.GuardInput{
			Initializing: g.manager.Initializing(),
			User:         g.resolve(c),
		}

		switch session.EvaluateRole(in, required) {
		case session.DecisionLoading:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Session is being restored, try again shortly",
			})
		case session.DecisionRedirect:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:    true,
				Message:  "Unauthorized",
				Redirect: loginRedirect(c),
			})
		default:
			c.Locals(sessionUserKey, in.User)
			return c.Next()
		}
	}
}

// resolve turns the request's verified token into a session user, or nil
// for anonymous and revoked callers.
func (g *Guard) resolve(c *fiber.Ctx) *session.User {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	if !g.tokens.Active(c.Context(), claims) {
		return nil
	}
	ident, err := identity.IdentityFromClaims(claims)
	if err != nil {
		return nil
	}
	return g.resolver.Resolve(c.Context(), ident)
}

// CurrentUser returns the resolved session user set by the guard.
func CurrentUser(c *fiber.Ctx) *session.User {
	user, _ := c.Locals(sessionUserKey).(*session.User)
	return user
}

func loginRedirect(c *fiber.Ctx) string {
	return "/login?next=" + url.QueryEscape(c.OriginalURL())
}
