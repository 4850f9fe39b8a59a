package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	periodModel "raporku_backend/internals/features/school/periods/model"
)

type CreatePeriodRequest struct {
	PeriodSchoolYear string                `json:"period_school_year" validate:"required,min=4,max=12"`
	PeriodNumber     int                   `json:"period_number" validate:"required,min=1,max=2"`
	PeriodCut        periodModel.PeriodCut `json:"period_cut" validate:"required,oneof=first second"`
	PeriodStartDate  time.Time             `json:"period_start_date" validate:"required"`
	PeriodEndDate    time.Time             `json:"period_end_date" validate:"required"`
}

func (r CreatePeriodRequest) ToModel() periodModel.PeriodModel {
	return periodModel.PeriodModel{
		PeriodSchoolYear: r.PeriodSchoolYear,
		PeriodNumber:     r.PeriodNumber,
		PeriodCut:        r.PeriodCut,
		PeriodStartDate:  r.PeriodStartDate,
		PeriodEndDate:    r.PeriodEndDate,
	}
}

type UpdatePeriodRequest struct {
	PeriodSchoolYear *string                `json:"period_school_year,omitempty" validate:"omitempty,min=4,max=12"`
	PeriodNumber     *int                   `json:"period_number,omitempty" validate:"omitempty,min=1,max=2"`
	PeriodCut        *periodModel.PeriodCut `json:"period_cut,omitempty" validate:"omitempty,oneof=first second"`
	PeriodStartDate  *time.Time             `json:"period_start_date,omitempty"`
	PeriodEndDate    *time.Time             `json:"period_end_date,omitempty"`
	PeriodStats      *datatypes.JSON        `json:"period_stats,omitempty"`
}

// Apply menimpa field yang dikirim ke struct hasil load, supaya validasi
// BeforeSave (urutan tanggal dsb.) jalan terhadap nilai GABUNGAN, bukan
// nilai lama. Return true kalau ada yang berubah.
func (r *UpdatePeriodRequest) Apply(m *periodModel.PeriodModel) bool {
	changed := false
	if r.PeriodSchoolYear != nil {
		m.PeriodSchoolYear = *r.PeriodSchoolYear
		changed = true
	}
	if r.PeriodNumber != nil {
		m.PeriodNumber = *r.PeriodNumber
		changed = true
	}
	if r.PeriodCut != nil {
		m.PeriodCut = *r.PeriodCut
		changed = true
	}
	if r.PeriodStartDate != nil {
		m.PeriodStartDate = *r.PeriodStartDate
		changed = true
	}
	if r.PeriodEndDate != nil {
		m.PeriodEndDate = *r.PeriodEndDate
		changed = true
	}
	if r.PeriodStats != nil {
		m.PeriodStats = *r.PeriodStats
		changed = true
	}
	return changed
}

type PeriodResponse struct {
	PeriodID         uuid.UUID             `json:"period_id"`
	PeriodSchoolYear string                `json:"period_school_year"`
	PeriodNumber     int                   `json:"period_number"`
	PeriodCut        periodModel.PeriodCut `json:"period_cut"`
	PeriodStartDate  time.Time             `json:"period_start_date"`
	PeriodEndDate    time.Time             `json:"period_end_date"`
	PeriodIsActive   bool                  `json:"period_is_active"`
	PeriodStats      datatypes.JSON        `json:"period_stats,omitempty"`
	PeriodCreatedAt  time.Time             `json:"period_created_at"`
	PeriodUpdatedAt  time.Time             `json:"period_updated_at"`
}

func FromModel(m *periodModel.PeriodModel) PeriodResponse {
	return PeriodResponse{
		PeriodID:         m.PeriodID,
		PeriodSchoolYear: m.PeriodSchoolYear,
		PeriodNumber:     m.PeriodNumber,
		PeriodCut:        m.PeriodCut,
		PeriodStartDate:  m.PeriodStartDate,
		PeriodEndDate:    m.PeriodEndDate,
		PeriodIsActive:   m.PeriodIsActive,
		PeriodStats:      m.PeriodStats,
		PeriodCreatedAt:  m.PeriodCreatedAt,
		PeriodUpdatedAt:  m.PeriodUpdatedAt,
	}
}

func FromModels(list []periodModel.PeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
