package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	periodModel "raporku_backend/internals/features/school/periods/model"
)

// PeriodService menangani mutasi period di luar CRUD biasa.
type PeriodService struct {
	DB *gorm.DB
}

func NewPeriodService(db *gorm.DB) *PeriodService {
	return &PeriodService{DB: db}
}

// Activate menjadikan satu period aktif dan mematikan flag period lain
// dalam SATU transaksi, supaya invariant "paling banyak satu aktif"
// tidak bisa rusak oleh dua request yang balapan.
func (s *PeriodService) Activate(ctx context.Context, periodID uuid.UUID) (*periodModel.PeriodModel, error) {
	var target periodModel.PeriodModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, "period_id = ?", periodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPeriodNotFound
			}
			return err
		}

		// matikan semua flag lain dulu
		if err := tx.Model(&periodModel.PeriodModel{}).
			Where("period_is_active = true AND period_id <> ?", periodID).
			Update("period_is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&target).
			Update("period_is_active", true).Error; err != nil {
			return err
		}

		target.PeriodIsActive = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}
