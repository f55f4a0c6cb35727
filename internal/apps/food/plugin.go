package food

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridebite/backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the food marketplace.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "food" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Restaurant{},
		&MenuItem{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db))

	router.Get("/restaurants", handler.ListRestaurants)
	router.Get("/restaurants/:id", handler.GetRestaurant)
	router.Get("/restaurants/:id/menu", handler.GetMenu)
	router.Get("/menu-items", handler.ListMenuItems)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/restaurants", handler.CreateRestaurant)
	router.Delete("/restaurants/:id", handler.DeleteRestaurant)
	router.Post("/menu-items", handler.CreateMenuItem)
	router.Delete("/menu-items/:id", handler.DeleteMenuItem)
}
