package food

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/dto"
)

// Handler handles HTTP requests for restaurants and menus.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListRestaurants handles GET /api/restaurants
func (h *Handler) ListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.ListRestaurants()
	if err != nil {
		return serverError(c, "Failed to load restaurants")
	}
	return c.JSON(dto.DataResponse{Data: restaurants})
}

// GetRestaurant handles GET /api/restaurants/:id
func (h *Handler) GetRestaurant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	restaurant, err := h.service.GetRestaurant(id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c, "Restaurant not found")
	}
	if err != nil {
		return serverError(c, "Failed to load restaurant")
	}
	return c.JSON(dto.DataResponse{Data: restaurant})
}

// GetMenu handles GET /api/restaurants/:id/menu
func (h *Handler) GetMenu(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	items, err := h.service.Menu(id)
	if err != nil {
		return serverError(c, "Failed to load menu")
	}
	return c.JSON(dto.DataResponse{Data: items})
}

// ListMenuItems handles GET /api/menu-items
func (h *Handler) ListMenuItems(c *fiber.Ctx) error {
	items, err := h.service.ListMenuItems()
	if err != nil {
		return serverError(c, "Failed to load menu items")
	}
	return c.JSON(dto.DataResponse{Data: items})
}

// CreateRestaurant handles POST /api/restaurants (admin)
func (h *Handler) CreateRestaurant(c *fiber.Ctx) error {
	var restaurant Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.CreateRestaurant(&restaurant); err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: restaurant})
}

// DeleteRestaurant handles DELETE /api/restaurants/:id (admin)
func (h *Handler) DeleteRestaurant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}
	if err := h.service.DeleteRestaurant(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Restaurant not found")
		}
		return serverError(c, "Failed to delete restaurant")
	}
	return c.JSON(fiber.Map{"message": "Restaurant deleted"})
}

// CreateMenuItem handles POST /api/menu-items (admin)
func (h *Handler) CreateMenuItem(c *fiber.Ctx) error {
	var item MenuItem
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.CreateMenuItem(&item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Restaurant not found")
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: item})
}

// DeleteMenuItem handles DELETE /api/menu-items/:id (admin)
func (h *Handler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid menu item id")
	}
	if err := h.service.DeleteMenuItem(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Menu item not found")
		}
		return serverError(c, "Failed to delete menu item")
	}
	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}
