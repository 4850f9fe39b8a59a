package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "raporku_backend/internals/features/school/evaluations/model"
)

var ErrEvaluationNotFound = errors.New("nilai tidak ditemukan")

// LockService menjalankan state machine lock di atas storage.
// Semua mutasi pakai SELECT ... FOR UPDATE supaya dua lock yang balapan
// tidak bisa sama-sama sukses: pemenang commit, yang kalah dapat
// ErrAlreadyLocked setelah re-check di dalam transaksi.
type LockService struct {
	DB *gorm.DB
}

func NewLockService(db *gorm.DB) *LockService {
	return &LockService{DB: db}
}

// Lock mem-publish satu nilai atas nama actor.
func (s *LockService) Lock(ctx context.Context, evaluationID, actorID uuid.UUID) (*model.EvaluationModel, error) {
	var ev model.EvaluationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEvaluationNotFound
			}
			return err
		}

		// re-check di bawah row lock
		if err := ev.Lock(actorID, time.Now().UTC()); err != nil {
			return err
		}

		return tx.Model(&ev).Updates(map[string]any{
			"evaluation_status":    ev.EvaluationStatus,
			"evaluation_locked_at": ev.EvaluationLockedAt,
			"evaluation_locked_by": ev.EvaluationLockedBy,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Unlock membatalkan publish: kembali ke draft, metadata lock dibersihkan.
// Tidak ada prasyarat status, undo harus selalu bisa; otorisasi dicek
// pemanggil sebelum sampai ke sini.
func (s *LockService) Unlock(ctx context.Context, evaluationID uuid.UUID) (*model.EvaluationModel, error) {
	var ev model.EvaluationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEvaluationNotFound
			}
			return err
		}

		ev.Unlock()

		return tx.Model(&ev).Updates(map[string]any{
			"evaluation_status":    ev.EvaluationStatus,
			"evaluation_locked_at": nil,
			"evaluation_locked_by": nil,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// MarkReviewed menandai nilai sudah direview. Anotasi administratif saja:
// tidak menyentuh metadata lock dan tidak memproteksi dari edit.
func (s *LockService) MarkReviewed(ctx context.Context, evaluationID uuid.UUID) (*model.EvaluationModel, error) {
	var ev model.EvaluationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEvaluationNotFound
			}
			return err
		}

		ev.EvaluationStatus = model.EvaluationStatusReviewed

		return tx.Model(&ev).
			Update("evaluation_status", model.EvaluationStatusReviewed).Error
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
