package orders

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridebite/backend/internal/config"
	"github.com/ridebite/backend/internal/identity"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for checkout and order
// history.
type Plugin struct {
	tokens *identity.TokenService
}

func New(tokens *identity.TokenService) *Plugin {
	return &Plugin{tokens: tokens}
}

func (p *Plugin) ID() string { return "orders" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Order{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db), p.tokens)

	router.Post("/orders", handler.Place)
	router.Get("/orders/:id", handler.Get)
}

func (p *Plugin) RegisterProtectedRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := NewHandler(NewService(db), p.tokens)

	router.Get("/orders", handler.ListMine)
}
