package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "raporku_backend/internals/features/school/evaluations/dto"
	model "raporku_backend/internals/features/school/evaluations/model"
	service "raporku_backend/internals/features/school/evaluations/service"
	helper "raporku_backend/internals/helpers"
	helperAuth "raporku_backend/internals/helpers/auth"
)

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Lock      *service.LockService
	Cascade   *service.CascadeService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		DB:        db,
		Validator: validator.New(),
		Lock:      service.NewLockService(db),
		Cascade:   service.NewCascadeService(db),
	}
}

// =============================
// ➕ POST /api/a/evaluations
// =============================
func (ctrl *EvaluationController) Create(c *fiber.Ctx) error {
	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ev := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(ev).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Nilai untuk siswa, mapel, dan period tersebut sudah ada")
		}
		if strings.Contains(msg, "foreign key") || strings.Contains(msg, "violates") {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Siswa, mapel, atau period tidak ditemukan")
		}
		log.Printf("[ERROR] create evaluation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nilai")
	}

	return helper.JsonCreated(c, "Nilai berhasil dibuat", dto.FromEvaluationModel(*ev))
}

// =============================
// 📄 GET /api/u/evaluations
// =============================
func (ctrl *EvaluationController) List(c *fiber.Ctx) error {
	var q dto.ListEvaluationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctrl.Validator.Struct(q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.EvaluationModel{})
	if q.StudentID != nil {
		tx = tx.Where("evaluation_student_id = ?", *q.StudentID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("evaluation_subject_id = ?", *q.SubjectID)
	}
	if q.PeriodID != nil {
		tx = tx.Where("evaluation_period_id = ?", *q.PeriodID)
	}
	if q.Status != nil {
		tx = tx.Where("evaluation_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	order := "evaluation_created_at DESC"
	switch c.Query("sort") {
	case "created_at":
		order = "evaluation_created_at ASC"
	case "updated_at":
		order = "evaluation_updated_at DESC"
	case "performance":
		order = "evaluation_performance ASC"
	}

	var evs []model.EvaluationModel
	if err := tx.
		Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&evs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar nilai", dto.FromEvaluationModels(evs), &pagination)
}

// =============================
// 🔍 GET /api/u/evaluations/:id
// =============================
func (ctrl *EvaluationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ev model.EvaluationModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ev, "evaluation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail nilai", dto.FromEvaluationModel(ev))
}

// =============================
// ✏️ PATCH /api/a/evaluations/:id
// =============================
func (ctrl *EvaluationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateEvaluationRequest
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

	var ev model.EvaluationModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ev, "evaluation_id = ?", id).Error; err != nil {
			return err
		}
		if !ev.IsEditable() {
			return model.ErrAlreadyLocked
		}
		return tx.Model(&ev).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		if errors.Is(err, model.ErrAlreadyLocked) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Nilai sudah dikunci dan tidak bisa diubah")
		}
		log.Printf("[ERROR] update evaluation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}

	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.FromEvaluationModel(ev))
}

// =============================
// 🗑️ DELETE /api/a/evaluations/:id
// =============================
func (ctrl *EvaluationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Cascade.DeleteEvaluation(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		log.Printf("[ERROR] delete evaluation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}

	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"evaluation_id": id})
}

// =============================
// 🔒 POST /api/a/evaluations/:id/lock
// =============================
func (ctrl *EvaluationController) LockEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ev, err := ctrl.Lock.Lock(c.Context(), id, actorID)
	if err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		if errors.Is(err, model.ErrAlreadyLocked) {
			return helper.JsonError(c, fiber.StatusConflict, "Nilai sudah dikunci")
		}
		log.Printf("[ERROR] lock evaluation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunci nilai")
	}

	return helper.JsonUpdated(c, "Nilai berhasil dikunci", dto.FromEvaluationModel(*ev))
}

// =============================
// 🔓 POST /api/a/evaluations/:id/unlock
// =============================
func (ctrl *EvaluationController) UnlockEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ev, err := ctrl.Lock.Unlock(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		log.Printf("[ERROR] unlock evaluation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuka kunci nilai")
	}

	return helper.JsonUpdated(c, "Kunci nilai dibuka, status kembali ke draft", dto.FromEvaluationModel(*ev))
}

// =============================
// ✅ PATCH /api/a/evaluations/:id/review
// =============================
func (ctrl *EvaluationController) MarkReviewed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ev, err := ctrl.Lock.MarkReviewed(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		log.Printf("[ERROR] review evaluation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai reviewed")
	}

	return helper.JsonUpdated(c, "Nilai ditandai sudah direview", dto.FromEvaluationModel(*ev))
}
