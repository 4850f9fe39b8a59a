package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementRoute "raporku_backend/internals/features/school/achievements/route"
	evaluationRoute "raporku_backend/internals/features/school/evaluations/route"
	gradeRoute "raporku_backend/internals/features/school/grades/route"
	periodRoute "raporku_backend/internals/features/school/periods/route"
	reportRoute "raporku_backend/internals/features/school/reports/route"
	studentRoute "raporku_backend/internals/features/school/students/route"
	subjectRoute "raporku_backend/internals/features/school/subjects/route"
	authRoute "raporku_backend/internals/features/users/auth/route"
	helperAuth "raporku_backend/internals/helpers/auth"
	authMiddleware "raporku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh endpoint.
//   - /api/auth : login/register
//   - /api/u    : butuh login (baca data + rapor)
//   - /api/a    : butuh login + role admin/teacher (tulis data)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	// ===== user area (read-only) =====
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	gradeRoute.RegisterGradeUserRoutes(user, db)
	studentRoute.RegisterStudentUserRoutes(user, db)
	subjectRoute.RegisterSubjectUserRoutes(user, db)
	achievementRoute.RegisterAchievementUserRoutes(user, db)
	periodRoute.RegisterPeriodUserRoutes(user, db)
	evaluationRoute.RegisterEvaluationUserRoutes(user, db)
	reportRoute.RegisterReportUserRoutes(user, db)

	// ===== admin/teacher area (tulis) =====
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		func(c *fiber.Ctx) error {
			if err := helperAuth.EnsureAdminOrTeacher(c); err != nil {
				return err
			}
			return c.Next()
		},
	)
	gradeRoute.RegisterGradeAdminRoutes(admin, db)
	studentRoute.RegisterStudentAdminRoutes(admin, db)
	subjectRoute.RegisterSubjectAdminRoutes(admin, db)
	achievementRoute.RegisterAchievementAdminRoutes(admin, db)
	periodRoute.RegisterPeriodAdminRoutes(admin, db)
	evaluationRoute.RegisterEvaluationAdminRoutes(admin, db)
	reportRoute.RegisterReportAdminRoutes(admin, db)
}
