package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "raporku_backend/internals/features/school/reports/controller"
)

// RegisterReportUserRoutes
// Base: /api/u/reports
func RegisterReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/students/:student_id/periods/:period_id", ctrl.GetStudentReport)
}

// RegisterReportAdminRoutes
// Base: /api/a/reports (rapor massal satu kelas, khusus admin/guru)
func RegisterReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/grades/:grade_id/periods/:period_id", ctrl.GetGradeReports)
}
