package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/dto"
	"github.com/ridebite/backend/internal/identity"
	"github.com/ridebite/backend/internal/middleware"
	"github.com/ridebite/backend/internal/session"
)

type AuthHandler struct {
	manager  *session.Manager
	provider *identity.Provider
	tokens   *identity.TokenService
}

func NewAuthHandler(manager *session.Manager, provider *identity.Provider, tokens *identity.TokenService) *AuthHandler {
	return &AuthHandler{manager: manager, provider: provider, tokens: tokens}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.manager.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return authFailure(c, fiber.StatusBadRequest, err, session.MsgSignupFailed)
	}

	token, err := h.tokens.Issue(c.Context(), user)
	if err != nil {
		slog.Error("token issue failed after signup", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Data: dto.AuthResponse{Token: token, User: user},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.manager.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return authFailure(c, fiber.StatusUnauthorized, err, session.MsgLoginFailed)
	}

	token, err := h.tokens.Issue(c.Context(), user)
	if err != nil {
		slog.Error("token issue failed after login", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.DataResponse{
		Data: dto.AuthResponse{Token: token, User: user},
	})
}

// Logout revokes every active token of the caller and, when the caller
// owns the provider session, terminates it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	accountID, err := uuid.Parse(user.ID)
	if err == nil {
		if err := h.provider.Revoke(c.Context(), accountID); err != nil {
			slog.Error("token revocation failed", "user_id", user.ID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: session.MsgLogoutFailed,
			})
		}
	}

	if cur := h.manager.CurrentUser(); cur != nil && cur.ID == user.ID {
		if err := h.manager.Logout(c.Context()); err != nil {
			return authFailure(c, fiber.StatusInternalServerError, err, session.MsgLogoutFailed)
		}
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me returns the caller's resolved session user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(dto.DataResponse{Data: user})
}

// authFailure renders an AuthError's user-facing message; anything else
// falls back to the operation's generic message.
func authFailure(c *fiber.Ctx, status int, err error, fallback string) error {
	message := fallback
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		message = authErr.Message
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}
