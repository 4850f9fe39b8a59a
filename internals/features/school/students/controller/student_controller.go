package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	evaluationService "raporku_backend/internals/features/school/evaluations/service"
	dto "raporku_backend/internals/features/school/students/dto"
	model "raporku_backend/internals/features/school/students/model"
	helper "raporku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cascade   *evaluationService.CascadeService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
		Cascade:   evaluationService.NewCascadeService(db),
	}
}

// =============================
// ➕ POST /api/a/students
// =============================
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"NIS sudah dipakai di kelas tersebut")
		}
		if strings.Contains(msg, "foreign key") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.FromModel(&student))
}

// =============================
// 📄 GET /api/u/students
// =============================
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	if q.GradeID != nil {
		tx = tx.Where("student_grade_id = ?", *q.GradeID)
	}
	if q.IsActive != nil {
		tx = tx.Where("student_is_active = ?", *q.IsActive)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("student_full_name ILIKE ? OR student_code ILIKE ?",
			"%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var students []model.StudentModel
	if err := tx.
		Order("student_full_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar siswa", dto.FromModels(students), &pagination)
}

// =============================
// 🔍 GET /api/u/students/:id
// =============================
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail siswa", dto.FromModel(&student))
}

// =============================
// ✏️ PATCH /api/a/students/:id
// =============================
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&student).Updates(updates).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"NIS sudah dipakai di kelas tersebut")
		}
		log.Printf("[ERROR] update student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}

	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(&student))
}

// =============================
// 🗑️ DELETE /api/a/students/:id
// =============================
// Menghapus siswa sekaligus semua nilai dan link capaiannya (satu transaksi).
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Cascade.DeleteStudent(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		log.Printf("[ERROR] delete student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}

	return helper.JsonDeleted(c, "Siswa beserta nilainya berhasil dihapus", fiber.Map{
		"student_id": id,
	})
}
