package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	periodService "raporku_backend/internals/features/school/periods/service"
	service "raporku_backend/internals/features/school/reports/service"
	studentModel "raporku_backend/internals/features/school/students/model"
	helper "raporku_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: service.NewReportService(db)}
}

// =============================
// 📊 GET /api/u/reports/students/:student_id/periods/:period_id
// =============================
// Rapor pertengahan (bukan akhir tahun) tanpa satu pun nilai ditolak 422:
// tidak ada gunanya mencetak rapor kosong, dan biasanya itu tanda salah
// pilih period. Rapor akhir tahun tetap dikembalikan apa adanya.
func (ctrl *ReportController) GetStudentReport(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	periodID, err := uuid.Parse(c.Params("period_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
	}

	report, err := ctrl.Service.BuildStudentReport(c.Context(), studentID, periodID)
	if err != nil {
		return ctrl.reportError(c, studentID, err)
	}
	if report.EvaluationCount == 0 && !report.IsYearFinal {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Belum ada nilai untuk siswa ini pada period tersebut")
	}

	return helper.JsonOK(c, "Rapor siswa", report)
}

// =============================
// 📊 GET /api/u/reports/grades/:grade_id/periods/:period_id
// =============================
// Rapor massal satu kelas. Siswa tanpa nilai dilewati, bukan menggagalkan
// seluruh batch.
func (ctrl *ReportController) GetGradeReports(c *fiber.Ctx) error {
	gradeID, err := uuid.Parse(c.Params("grade_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grade_id tidak valid")
	}
	periodID, err := uuid.Parse(c.Params("period_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_grade_id = ? AND student_is_active = ?", gradeID, true).
		Order("student_full_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	reports := make([]*service.StudentReport, 0, len(students))
	skipped := make([]uuid.UUID, 0)
	for i := range students {
		report, err := ctrl.Service.BuildStudentReport(c.Context(), students[i].StudentID, periodID)
		if err != nil {
			if errors.Is(err, periodService.ErrPeriodNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
			}
			log.Printf("[WARN] report siswa %s dilewati: %v", students[i].StudentID, err)
			skipped = append(skipped, students[i].StudentID)
			continue
		}
		if report.EvaluationCount == 0 && !report.IsYearFinal {
			skipped = append(skipped, students[i].StudentID)
			continue
		}
		reports = append(reports, report)
	}

	return helper.JsonOK(c, "Rapor kelas", fiber.Map{
		"grade_id":    gradeID,
		"period_id":   periodID,
		"reports":     reports,
		"skipped_ids": skipped,
	})
}

func (ctrl *ReportController) reportError(c *fiber.Ctx, studentID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	case errors.Is(err, periodService.ErrPeriodNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
	default:
		log.Printf("[ERROR] build report siswa %s: %v", studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun rapor")
	}
}
