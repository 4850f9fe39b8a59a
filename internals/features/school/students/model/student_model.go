package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeModel "raporku_backend/internals/features/school/grades/model"
)

type StudentModel struct {
	StudentID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentGradeID uuid.UUID `gorm:"type:uuid;not null;index:idx_students_grade;uniqueIndex:uq_students_grade_code,priority:1;column:student_grade_id" json:"student_grade_id"`

	StudentFullName string `gorm:"type:varchar(120);not null;column:student_full_name" json:"student_full_name"`
	// Nomor induk siswa, unik per kelas
	StudentCode string `gorm:"type:varchar(30);not null;uniqueIndex:uq_students_grade_code,priority:2;column:student_code" json:"student_code"`

	StudentGuardianName  *string `gorm:"type:varchar(120);column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"type:varchar(30);column:student_guardian_phone" json:"student_guardian_phone,omitempty"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`

	Grade *gradeModel.GradeModel `gorm:"foreignKey:StudentGradeID;references:GradeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"grade,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFullName = strings.TrimSpace(m.StudentFullName)
	if m.StudentFullName == "" {
		return errors.New("student_full_name wajib diisi")
	}
	m.StudentCode = strings.ToUpper(strings.TrimSpace(m.StudentCode))
	if m.StudentCode == "" {
		return errors.New("student_code wajib diisi")
	}
	if m.StudentGuardianName != nil {
		v := strings.TrimSpace(*m.StudentGuardianName)
		if v == "" {
			m.StudentGuardianName = nil
		} else {
			m.StudentGuardianName = &v
		}
	}
	if m.StudentGuardianPhone != nil {
		v := strings.TrimSpace(*m.StudentGuardianPhone)
		if v == "" {
			m.StudentGuardianPhone = nil
		} else {
			m.StudentGuardianPhone = &v
		}
	}
	return nil
}
