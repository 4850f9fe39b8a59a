package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	periodModel "raporku_backend/internals/features/school/periods/model"
)

var ErrPeriodNotFound = errors.New("period tidak ditemukan")

// SortPeriods mengurutkan in-place menurut total order
// (school year, number, cut first < second).
func SortPeriods(list []periodModel.PeriodModel) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Less(&list[j])
	})
}

// IsFinalPeriodOfYear: true jika tidak ada period lain di tahun ajaran yang sama
// dengan period_number lebih besar. Cut tidak ikut menentukan "final":
// period 2 cut pertama pun dianggap bagian dari period terakhir tahun itu.
func IsFinalPeriodOfYear(target *periodModel.PeriodModel, sameYear []periodModel.PeriodModel) bool {
	for i := range sameYear {
		p := &sameYear[i]
		if p.PeriodSchoolYear != target.PeriodSchoolYear {
			continue
		}
		if p.PeriodNumber > target.PeriodNumber {
			return false
		}
	}
	return true
}

// ResolveApplicablePeriods menentukan period mana saja (dalam tahun ajaran target)
// yang datanya harus masuk ke laporan kumulatif:
//   - target adalah period terakhir tahun itu → seluruh tahun ajaran
//     (rapor akhir tahun harus mencerminkan performa setahun penuh, apapun cut-nya);
//   - selain itu → semua period <= target dalam total order.
//
// Hasil selalu terurut. Murni terhadap input; tanpa cache, tanpa side effect.
func ResolveApplicablePeriods(target *periodModel.PeriodModel, sameYear []periodModel.PeriodModel) []periodModel.PeriodModel {
	final := IsFinalPeriodOfYear(target, sameYear)

	out := make([]periodModel.PeriodModel, 0, len(sameYear))
	for i := range sameYear {
		p := sameYear[i]
		if p.PeriodSchoolYear != target.PeriodSchoolYear {
			continue
		}
		if final || p.SameOrBefore(target) {
			out = append(out, p)
		}
	}
	SortPeriods(out)
	return out
}

// PeriodResolverService membungkus resolver murni dengan query DB.
type PeriodResolverService struct {
	DB *gorm.DB
}

func NewPeriodResolverService(db *gorm.DB) *PeriodResolverService {
	return &PeriodResolverService{DB: db}
}

// Resolution adalah hasil resolve satu period target.
type Resolution struct {
	Target      *periodModel.PeriodModel
	Applicable  []periodModel.PeriodModel
	IsYearFinal bool
}

// ApplicablePeriods memuat target + semua period setahun ajaran dari DB,
// lalu mendelegasikan ke ResolveApplicablePeriods. Query fresh tiap panggilan.
func (s *PeriodResolverService) ApplicablePeriods(ctx context.Context, targetPeriodID uuid.UUID) (*Resolution, error) {
	var target periodModel.PeriodModel
	if err := s.DB.WithContext(ctx).
		First(&target, "period_id = ?", targetPeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if !target.PeriodEndDate.After(target.PeriodStartDate) {
		return nil, periodModel.ErrInvalidPeriodOrdering
	}

	var sameYear []periodModel.PeriodModel
	if err := s.DB.WithContext(ctx).
		Where("period_school_year = ?", target.PeriodSchoolYear).
		Find(&sameYear).Error; err != nil {
		return nil, err
	}

	return &Resolution{
		Target:      &target,
		Applicable:  ResolveApplicablePeriods(&target, sameYear),
		IsYearFinal: IsFinalPeriodOfYear(&target, sameYear),
	}, nil
}
