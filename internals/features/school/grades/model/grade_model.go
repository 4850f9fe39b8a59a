package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeModel merepresentasikan tingkat kelas (mis. "Kelas 7A", level 7).
// Subjects dan students menempel ke grade; rapor digenerate per grade.
type GradeModel struct {
	GradeID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`
	GradeName        string         `gorm:"type:varchar(80);not null;uniqueIndex:uq_grades_name;column:grade_name" json:"grade_name"`
	GradeLevel       int            `gorm:"type:smallint;not null;column:grade_level" json:"grade_level"`
	GradeDescription *string        `gorm:"type:text;column:grade_description" json:"grade_description,omitempty"`
	GradeCreatedAt   time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grade_created_at" json:"grade_created_at"`
	GradeUpdatedAt   time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grade_updated_at" json:"grade_updated_at"`
	GradeDeletedAt   gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

func (m *GradeModel) BeforeSave(tx *gorm.DB) error {
	m.GradeName = strings.TrimSpace(m.GradeName)
	if m.GradeName == "" {
		return errors.New("grade_name wajib diisi")
	}
	if m.GradeLevel < 1 || m.GradeLevel > 12 {
		return errors.New("grade_level harus 1..12")
	}
	if m.GradeDescription != nil {
		d := strings.TrimSpace(*m.GradeDescription)
		if d == "" {
			m.GradeDescription = nil
		} else {
			m.GradeDescription = &d
		}
	}
	return nil
}
