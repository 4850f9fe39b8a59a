package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	achievementModel "raporku_backend/internals/features/school/achievements/model"
	dto "raporku_backend/internals/features/school/evaluations/dto"
	model "raporku_backend/internals/features/school/evaluations/model"
	helper "raporku_backend/internals/helpers"
)

// =============================
// 📄 GET /api/u/evaluations/:id/achievements
// =============================
// Link dikembalikan urut sesuai kapan ditempel, bukan urut judul.
func (ctrl *EvaluationController) ListAchievements(c *fiber.Ctx) error {
	evaluationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ev model.EvaluationModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("evaluation_id").
		First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var links []model.EvaluationAchievementModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Achievement").
		Where("evaluation_achievement_evaluation_id = ?", evaluationID).
		Order("evaluation_achievement_created_at ASC").
		Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar capaian", dto.FromEvaluationAchievementModels(links))
}

// =============================
// ➕ POST /api/a/evaluations/:id/achievements
// =============================
func (ctrl *EvaluationController) AttachAchievement(c *fiber.Ctx) error {
	evaluationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AttachAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ev model.EvaluationModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !ev.IsEditable() {
		return helper.JsonError(c, fiber.StatusConflict,
			"Nilai sudah dikunci dan tidak bisa diubah")
	}

	var achievement achievementModel.AchievementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&achievement, "achievement_id = ?", req.AchievementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capaian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	link := model.EvaluationAchievementModel{
		EvaluationAchievementEvaluationID:  evaluationID,
		EvaluationAchievementAchievementID: req.AchievementID,
	}
	if req.IsAttained != nil {
		link.EvaluationAchievementIsAttained = *req.IsAttained
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&link).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Referensi tidak valid")
		}
		log.Printf("[ERROR] attach achievement to evaluation %s: %v", evaluationID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menempelkan capaian")
	}

	link.Achievement = &achievement
	return helper.JsonCreated(c, "Capaian berhasil ditempelkan", dto.FromEvaluationAchievementModel(link))
}

// =============================
// ✏️ PATCH /api/a/evaluations/:id/achievements/:link_id
// =============================
func (ctrl *EvaluationController) UpdateAchievementLink(c *fiber.Ctx) error {
	evaluationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	linkID, err := uuid.Parse(c.Params("link_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID link tidak valid")
	}

	var req dto.UpdateAchievementLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.IsAttained == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var ev model.EvaluationModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !ev.IsEditable() {
		return helper.JsonError(c, fiber.StatusConflict,
			"Nilai sudah dikunci dan tidak bisa diubah")
	}

	var link model.EvaluationAchievementModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Achievement").
		First(&link, "evaluation_achievement_id = ? AND evaluation_achievement_evaluation_id = ?",
			linkID, evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Link capaian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&link).
		Update("evaluation_achievement_is_attained", *req.IsAttained).Error; err != nil {
		log.Printf("[ERROR] update achievement link %s: %v", linkID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui link capaian")
	}
	link.EvaluationAchievementIsAttained = *req.IsAttained

	return helper.JsonUpdated(c, "Link capaian diperbarui", dto.FromEvaluationAchievementModel(link))
}

// =============================
// 🗑️ DELETE /api/a/evaluations/:id/achievements/:link_id
// =============================
func (ctrl *EvaluationController) DetachAchievement(c *fiber.Ctx) error {
	evaluationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	linkID, err := uuid.Parse(c.Params("link_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID link tidak valid")
	}

	var ev model.EvaluationModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !ev.IsEditable() {
		return helper.JsonError(c, fiber.StatusConflict,
			"Nilai sudah dikunci dan tidak bisa diubah")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("evaluation_achievement_id = ? AND evaluation_achievement_evaluation_id = ?",
			linkID, evaluationID).
		Delete(&model.EvaluationAchievementModel{})
	if res.Error != nil {
		log.Printf("[ERROR] detach achievement %s: %v", linkID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas capaian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Link capaian tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Capaian berhasil dilepas", fiber.Map{
		"evaluation_achievement_id": linkID,
	})
}
