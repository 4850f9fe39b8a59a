package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "raporku_backend/internals/features/school/achievements/dto"
	model "raporku_backend/internals/features/school/achievements/model"
	evaluationModel "raporku_backend/internals/features/school/evaluations/model"
	helper "raporku_backend/internals/helpers"
)

type AchievementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{DB: db, Validator: validator.New()}
}

// =============================
// ➕ POST /api/a/achievements
// =============================
func (ctrl *AchievementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	achievement := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&achievement).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Mapel tidak ditemukan")
		}
		log.Printf("[ERROR] create achievement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat capaian")
	}

	return helper.JsonCreated(c, "Capaian berhasil dibuat", dto.FromModel(&achievement))
}

// =============================
// 📄 GET /api/u/achievements
// =============================
func (ctrl *AchievementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.AchievementModel{})
	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		tx = tx.Where("achievement_subject_id = ?", subjectID)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tx = tx.Where("? = ANY(achievement_tags)", tag)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		tx = tx.Where("achievement_title ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var achievements []model.AchievementModel
	if err := tx.
		Order("achievement_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&achievements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar capaian", dto.FromModels(achievements), &pagination)
}

// =============================
// 🔍 GET /api/u/achievements/:id
// =============================
func (ctrl *AchievementController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var achievement model.AchievementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&achievement, "achievement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capaian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail capaian", dto.FromModel(&achievement))
}

// =============================
// ✏️ PATCH /api/a/achievements/:id
// =============================
func (ctrl *AchievementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAchievementRequest
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

	var achievement model.AchievementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&achievement, "achievement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capaian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&achievement).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update achievement %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui capaian")
	}

	return helper.JsonUpdated(c, "Capaian berhasil diperbarui", dto.FromModel(&achievement))
}

// =============================
// 🗑️ DELETE /api/a/achievements/:id
// =============================
// Hapus definisi capaian beserta link-nya ke nilai; nilai itu sendiri tidak ikut terhapus.
func (ctrl *AchievementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var achievement model.AchievementModel
		if err := tx.Select("achievement_id").
			First(&achievement, "achievement_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("evaluation_achievement_achievement_id = ?", id).
			Delete(&evaluationModel.EvaluationAchievementModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&achievement).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capaian tidak ditemukan")
		}
		log.Printf("[ERROR] delete achievement %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus capaian")
	}

	return helper.JsonDeleted(c, "Capaian berhasil dihapus", fiber.Map{"achievement_id": id})
}
