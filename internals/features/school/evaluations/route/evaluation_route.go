package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationController "raporku_backend/internals/features/school/evaluations/controller"
)

// RegisterEvaluationAdminRoutes
// Base: /api/a/evaluations
func RegisterEvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := evaluationController.NewEvaluationController(db)

	g := r.Group("/evaluations")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)

	// workflow kunci nilai
	g.Post("/:id/lock", ctrl.LockEvaluation)
	g.Post("/:id/unlock", ctrl.UnlockEvaluation)
	g.Patch("/:id/review", ctrl.MarkReviewed)

	// link capaian
	g.Post("/:id/achievements", ctrl.AttachAchievement)
	g.Patch("/:id/achievements/:link_id", ctrl.UpdateAchievementLink)
	g.Delete("/:id/achievements/:link_id", ctrl.DetachAchievement)
}

// RegisterEvaluationUserRoutes
// Base: /api/u/evaluations (read-only)
func RegisterEvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := evaluationController.NewEvaluationController(db)

	g := r.Group("/evaluations")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/achievements", ctrl.ListAchievements)
}
