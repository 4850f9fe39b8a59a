package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Cut membedakan dua tahap laporan dalam satu nomor period:
// cut pertama menghasilkan rapor sisipan (preliminary), cut kedua rapor final.
type PeriodCut string

const (
	PeriodCutFirst  PeriodCut = "first"
	PeriodCutSecond PeriodCut = "second"
)

func (c PeriodCut) IsValid() bool {
	return c == PeriodCutFirst || c == PeriodCutSecond
}

// rank dipakai untuk total order antar cut (first < second)
func (c PeriodCut) rank() int {
	if c == PeriodCutSecond {
		return 1
	}
	return 0
}

// ErrInvalidPeriodOrdering: tanggal selesai tidak setelah tanggal mulai.
var ErrInvalidPeriodOrdering = errors.New("period_end_date harus setelah period_start_date")

// PeriodModel merepresentasikan satu jendela evaluasi akademik.
// Total order: school_year, lalu number, lalu cut (first < second).
type PeriodModel struct {
	PeriodID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`

	// Contoh: "2025/2026"
	PeriodSchoolYear string    `gorm:"type:varchar(12);not null;index:idx_periods_school_year;uniqueIndex:uq_periods_year_number_cut,priority:1;column:period_school_year" json:"period_school_year"`
	PeriodNumber     int       `gorm:"type:smallint;not null;uniqueIndex:uq_periods_year_number_cut,priority:2;column:period_number" json:"period_number"`
	PeriodCut        PeriodCut `gorm:"type:varchar(10);not null;uniqueIndex:uq_periods_year_number_cut,priority:3;column:period_cut" json:"period_cut"`

	PeriodStartDate time.Time `gorm:"type:date;not null;column:period_start_date" json:"period_start_date"`
	PeriodEndDate   time.Time `gorm:"type:date;not null;column:period_end_date" json:"period_end_date"`

	// Paling banyak satu period aktif; dijaga oleh transaksi Activate,
	// bukan oleh pembaca (resolver tidak pernah membaca flag ini).
	PeriodIsActive bool `gorm:"not null;default:false;column:period_is_active" json:"period_is_active"`

	// Statistik bebas per period (jumlah rapor tercetak, dsb) dalam JSONB
	PeriodStats datatypes.JSON `gorm:"type:jsonb;column:period_stats" json:"period_stats,omitempty"`

	PeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:period_created_at" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:period_updated_at" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }

func (m *PeriodModel) BeforeSave(tx *gorm.DB) error {
	m.PeriodSchoolYear = strings.TrimSpace(m.PeriodSchoolYear)
	if m.PeriodSchoolYear == "" {
		return errors.New("period_school_year wajib diisi")
	}
	if m.PeriodNumber < 1 || m.PeriodNumber > 2 {
		return errors.New("period_number harus 1 atau 2")
	}
	if !m.PeriodCut.IsValid() {
		return errors.New("period_cut harus 'first' atau 'second'")
	}
	if !m.PeriodEndDate.After(m.PeriodStartDate) {
		return ErrInvalidPeriodOrdering
	}
	return nil
}

// Less membandingkan dua period menurut total order
// (school year, number, cut). Dipakai resolver dan sorting.
func (m *PeriodModel) Less(other *PeriodModel) bool {
	if m.PeriodSchoolYear != other.PeriodSchoolYear {
		return m.PeriodSchoolYear < other.PeriodSchoolYear
	}
	if m.PeriodNumber != other.PeriodNumber {
		return m.PeriodNumber < other.PeriodNumber
	}
	return m.PeriodCut.rank() < other.PeriodCut.rank()
}

// SameOrBefore: true jika m <= other dalam total order.
func (m *PeriodModel) SameOrBefore(other *PeriodModel) bool {
	return !other.Less(m)
}
