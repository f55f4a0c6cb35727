package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridebite/backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every app area (food, rides, orders) must
// implement.
type Plugin interface {
	// ID returns the unique app-area identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts public routes on the given Fiber group. The
	// group is already prefixed with /api.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with admin-only route registration. The
// router passed in has JWT and admin-role middleware applied.
type AdminPlugin interface {
	Plugin

	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// ProtectedPlugin extends Plugin with routes for any authenticated user.
// The router passed in has JWT and session-guard middleware applied.
type ProtectedPlugin interface {
	Plugin

	RegisterProtectedRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
