package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ridebite/backend/internal/apps"
	"github.com/ridebite/backend/internal/config"
	"github.com/ridebite/backend/internal/handlers"
	"github.com/ridebite/backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	guard *middleware.Guard,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Session endpoints (JWT required) - applied per route so the public
	// auth routes above stay reachable without a token
	api.Post("/auth/logout", middleware.JWTProtected(cfg), guard.Protected(), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), guard.Protected(), authHandler.Me)

	// Public plugin routes must be registered before the guarded groups
	// below: group middleware in Fiber matches by path prefix, so anything
	// mounted on /api after a guarded group would inherit its JWT check.
	// A matched public route terminates before the guards run.
	for _, p := range plugins {
		p.RegisterRoutes(api, db, cfg)
	}

	// Authenticated routes before admin routes, for the same ordering
	// reason: a signed-in non-admin has to reach these without passing the
	// admin gate.
	protected := api.Group("", middleware.JWTProtected(cfg), guard.Protected())
	for _, p := range plugins {
		if pp, ok := p.(apps.ProtectedPlugin); ok {
			pp.RegisterProtectedRoutes(protected, db, cfg)
		}
	}

	admin := api.Group("", middleware.JWTProtected(cfg), guard.AdminOnly())
	for _, p := range plugins {
		if ap, ok := p.(apps.AdminPlugin); ok {
			ap.RegisterAdminRoutes(admin, db, cfg)
		}
	}
}
