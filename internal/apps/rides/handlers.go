package rides

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/dto"
)

// Handler handles HTTP requests for ride booking and the rider roster.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Book handles POST /api/rides
func (h *Handler) Book(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ride, err := h.service.Book(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: ride})
}

// ListRides handles GET /api/rides (admin)
func (h *Handler) ListRides(c *fiber.Ctx) error {
	rides, err := h.service.ListRides()
	if err != nil {
		return serverError(c, "Failed to load rides")
	}
	return c.JSON(dto.DataResponse{Data: rides})
}

// ListRiders handles GET /api/raiders (admin)
func (h *Handler) ListRiders(c *fiber.Ctx) error {
	riders, err := h.service.ListRiders()
	if err != nil {
		return serverError(c, "Failed to load riders")
	}
	return c.JSON(dto.DataResponse{Data: riders})
}

// CreateRider handles POST /api/raiders (admin)
func (h *Handler) CreateRider(c *fiber.Ctx) error {
	var rider Rider
	if err := c.BodyParser(&rider); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.CreateRider(&rider); err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: rider})
}

// UpdateRider handles PUT /api/raiders/:id (admin)
func (h *Handler) UpdateRider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid rider id")
	}

	var body struct {
		Name     *string  `json:"name"`
		Email    *string  `json:"email"`
		Phone    *string  `json:"phone"`
		Status   *string  `json:"status"`
		IsActive *bool    `json:"isActive"`
		Vehicle  *Vehicle `json:"vehicle"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.Status != nil {
		switch *body.Status {
		case RiderAvailable, RiderOnDelivery, RiderOffline:
			updates["status"] = *body.Status
		default:
			return badRequest(c, "status must be one of: available, on-delivery, offline")
		}
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if body.Vehicle != nil {
		updates["vehicle_type"] = body.Vehicle.Type
		updates["vehicle_plate_number"] = body.Vehicle.PlateNumber
		updates["vehicle_color"] = body.Vehicle.Color
	}

	rider, err := h.service.UpdateRider(id, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Rider not found")
		}
		return serverError(c, "Failed to update rider")
	}
	return c.JSON(dto.DataResponse{Data: rider})
}

// DeleteRider handles DELETE /api/raiders/:id (admin)
func (h *Handler) DeleteRider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid rider id")
	}
	if err := h.service.DeleteRider(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Rider not found")
		}
		return serverError(c, "Failed to delete rider")
	}
	return c.JSON(fiber.Map{"message": "Rider deleted"})
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
