package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "raporku_backend/internals/features/users/auth/controller"
	"raporku_backend/internals/middlewares"
	authMiddleware "raporku_backend/internals/middlewares/auth"
)

// AuthRoutes
// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// endpoint yang butuh token
	private := g.Group("", authMiddleware.AuthMiddleware())
	private.Post("/register", ctrl.Register)
	private.Get("/me", ctrl.Me)
}
