package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeModel "raporku_backend/internals/features/school/grades/model"
)

// SubjectModel merepresentasikan mata pelajaran pada satu grade.
// Identitas untuk grouping laporan adalah subject_id; nama hanya untuk display
// (dua mapel boleh punya nama sama di grade berbeda).
type SubjectModel struct {
	SubjectID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectGradeID uuid.UUID `gorm:"type:uuid;not null;index:idx_subjects_grade;uniqueIndex:uq_subjects_grade_code,priority:1;column:subject_grade_id" json:"subject_grade_id"`

	SubjectName string `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`
	SubjectCode string `gorm:"type:varchar(30);not null;uniqueIndex:uq_subjects_grade_code,priority:2;column:subject_code" json:"subject_code"`

	// Jam pelajaran per minggu (informasi kurikulum, tidak dipakai agregasi)
	SubjectWeeklyHours int `gorm:"type:smallint;not null;default:0;column:subject_weekly_hours" json:"subject_weekly_hours"`

	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`

	Grade *gradeModel.GradeModel `gorm:"foreignKey:SubjectGradeID;references:GradeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"grade,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	if m.SubjectName == "" {
		return errors.New("subject_name wajib diisi")
	}
	m.SubjectCode = strings.ToUpper(strings.TrimSpace(m.SubjectCode))
	if m.SubjectCode == "" {
		return errors.New("subject_code wajib diisi")
	}
	if m.SubjectWeeklyHours < 0 {
		return errors.New("subject_weekly_hours tidak boleh negatif")
	}
	return nil
}
