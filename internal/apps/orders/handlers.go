package orders

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/dto"
	"github.com/ridebite/backend/internal/identity"
	"github.com/ridebite/backend/internal/middleware"
)

// Handler handles HTTP requests for checkout and order history.
type Handler struct {
	service *Service
	tokens  *identity.TokenService
}

func NewHandler(service *Service, tokens *identity.TokenService) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// Place handles POST /api/orders. Checkout works for guests; when the
// caller sends a valid bearer token the order is attached to the account.
func (h *Handler) Place(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	confirmation, err := h.service.Place(&req, h.callerAccount(c))
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: confirmation})
}

// Get handles GET /api/orders/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	confirmation, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Order not found",
			})
		}
		return serverError(c, "Failed to load order")
	}
	return c.JSON(dto.DataResponse{Data: confirmation})
}

// ListMine handles GET /api/orders (authenticated; dashboard history).
func (h *Handler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	accountID, err := uuid.Parse(user.ID)
	if err != nil {
		return badRequest(c, "Invalid account id")
	}

	orders, err := h.service.ListForAccount(accountID)
	if err != nil {
		return serverError(c, "Failed to load orders")
	}
	return c.JSON(dto.DataResponse{Data: orders})
}

// callerAccount extracts the account behind an optional bearer token.
func (h *Handler) callerAccount(c *fiber.Ctx) *uuid.UUID {
	header := c.Get(fiber.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}
	ident, err := h.tokens.Parse(c.Context(), raw)
	if err != nil {
		return nil
	}
	accountID, err := uuid.Parse(ident.ID)
	if err != nil {
		return nil
	}
	return &accountID
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}
