package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementController "raporku_backend/internals/features/school/achievements/controller"
)

// RegisterAchievementAdminRoutes
// Base: /api/a/achievements
func RegisterAchievementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := achievementController.NewAchievementController(db)

	g := r.Group("/achievements")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// RegisterAchievementUserRoutes
// Base: /api/u/achievements (read-only)
func RegisterAchievementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := achievementController.NewAchievementController(db)

	g := r.Group("/achievements")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
