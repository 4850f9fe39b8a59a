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
	dto "raporku_backend/internals/features/school/periods/dto"
	model "raporku_backend/internals/features/school/periods/model"
	service "raporku_backend/internals/features/school/periods/service"
	helper "raporku_backend/internals/helpers"
)

type PeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.PeriodService
	Cascade   *evaluationService.CascadeService
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewPeriodService(db),
		Cascade:   evaluationService.NewCascadeService(db),
	}
}

// =============================
// ➕ POST /api/a/periods
// =============================
func (ctrl *PeriodController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	period := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&period).Error; err != nil {
		if errors.Is(err, model.ErrInvalidPeriodOrdering) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Period dengan tahun ajaran, semester, dan cut tersebut sudah ada")
		}
		log.Printf("[ERROR] create period: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat period")
	}

	return helper.JsonCreated(c, "Period berhasil dibuat", dto.FromModel(&period))
}

// =============================
// 📄 GET /api/u/periods
// =============================
func (ctrl *PeriodController) List(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).Model(&model.PeriodModel{})
	if year := strings.TrimSpace(c.Query("school_year")); year != "" {
		tx = tx.Where("period_school_year = ?", year)
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		tx = tx.Where("period_is_active = ?", raw == "true" || raw == "1")
	}

	var periods []model.PeriodModel
	if err := tx.Find(&periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	service.SortPeriods(periods)

	return helper.JsonList(c, "Daftar period", dto.FromModels(periods), nil)
}

// =============================
// 🔍 GET /api/u/periods/:id
// =============================
func (ctrl *PeriodController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var period model.PeriodModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&period, "period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail period", dto.FromModel(&period))
}

// =============================
// ✏️ PATCH /api/a/periods/:id
// =============================
func (ctrl *PeriodController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var period model.PeriodModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&period, "period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// timpa dulu ke struct hasil load supaya BeforeSave memvalidasi
	// kombinasi tanggal yang baru, bukan yang lama
	if !req.Apply(&period) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&period).Error; err != nil {
		if errors.Is(err, model.ErrInvalidPeriodOrdering) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Period dengan tahun ajaran, semester, dan cut tersebut sudah ada")
		}
		log.Printf("[ERROR] update period %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui period")
	}

	return helper.JsonUpdated(c, "Period berhasil diperbarui", dto.FromModel(&period))
}

// =============================
// ⭐ POST /api/a/periods/:id/activate
// =============================
// Hanya satu period yang aktif; flag period lain dimatikan dalam transaksi yang sama.
func (ctrl *PeriodController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	period, err := ctrl.Service.Activate(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
		}
		log.Printf("[ERROR] activate period %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan period")
	}

	return helper.JsonUpdated(c, "Period berhasil diaktifkan", dto.FromModel(period))
}

// =============================
// 🗑️ DELETE /api/a/periods/:id
// =============================
// Menghapus period sekaligus semua nilai dan link capaiannya (satu transaksi).
func (ctrl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Cascade.DeletePeriod(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
		}
		log.Printf("[ERROR] delete period %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus period")
	}

	return helper.JsonDeleted(c, "Period beserta nilainya berhasil dihapus", fiber.Map{
		"period_id": id,
	})
}
