package rides

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridebite/backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for ride booking.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "rides" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Ride{},
		&Rider{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/rides", handler.Book)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db))

	router.Get("/rides", handler.ListRides)
	router.Get("/raiders", handler.ListRiders)
	router.Post("/raiders", handler.CreateRider)
	router.Put("/raiders/:id", handler.UpdateRider)
	router.Delete("/raiders/:id", handler.DeleteRider)
}
