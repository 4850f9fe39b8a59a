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
	dto "raporku_backend/internals/features/school/subjects/dto"
	model "raporku_backend/internals/features/school/subjects/model"
	helper "raporku_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cascade   *evaluationService.CascadeService
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
		Cascade:   evaluationService.NewCascadeService(db),
	}
}

// =============================
// ➕ POST /api/a/subjects
// =============================
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	subject := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Kode mapel sudah dipakai di kelas tersebut")
		}
		if strings.Contains(msg, "foreign key") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] create subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}

	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.FromModel(&subject))
}

// =============================
// 📄 GET /api/u/subjects
// =============================
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if raw := strings.TrimSpace(c.Query("grade_id")); raw != "" {
		gradeID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "grade_id tidak valid")
		}
		tx = tx.Where("subject_grade_id = ?", gradeID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		tx = tx.Where("subject_name ILIKE ? OR subject_code ILIKE ?",
			"%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var subjects []model.SubjectModel
	if err := tx.
		Order("subject_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar mapel", dto.FromModels(subjects), &pagination)
}

// =============================
// 🔍 GET /api/u/subjects/:id
// =============================
func (ctrl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail mapel", dto.FromModel(&subject))
}

// =============================
// ✏️ PATCH /api/a/subjects/:id
// =============================
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubjectRequest
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

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&subject).Updates(updates).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Kode mapel sudah dipakai di kelas tersebut")
		}
		log.Printf("[ERROR] update subject %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mapel")
	}

	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", dto.FromModel(&subject))
}

// =============================
// 🗑️ DELETE /api/a/subjects/:id
// =============================
// Menghapus mapel sekaligus semua nilai dan link capaiannya (satu transaksi).
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Cascade.DeleteSubject(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		log.Printf("[ERROR] delete subject %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}

	return helper.JsonDeleted(c, "Mapel beserta nilainya berhasil dihapus", fiber.Map{
		"subject_id": id,
	})
}
