package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	periodModel "raporku_backend/internals/features/school/periods/model"
	studentModel "raporku_backend/internals/features/school/students/model"
	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

// Status lifecycle nilai rapor.
// draft → published lewat Lock; unlock mengembalikan ke draft.
// reviewed hanya anotasi administratif, tidak melindungi dari edit.
type EvaluationStatus string

const (
	EvaluationStatusDraft     EvaluationStatus = "draft"
	EvaluationStatusPublished EvaluationStatus = "published"
	EvaluationStatusReviewed  EvaluationStatus = "reviewed"
)

func (s EvaluationStatus) IsValid() bool {
	switch s {
	case EvaluationStatusDraft, EvaluationStatusPublished, EvaluationStatusReviewed:
		return true
	default:
		return false
	}
}

var (
	// ErrAlreadyLocked: lock dipanggil pada record yang sudah terkunci.
	// Sengaja error, bukan silent no-op, pemanggil harus tahu ada konflik.
	ErrAlreadyLocked = errors.New("nilai sudah dikunci")
)

// EvaluationModel: satu nilai rapor untuk kombinasi siswa+mapel+period.
// Triple (student, subject, period) unik sepanjang record belum soft-delete,
// partial index supaya triple yang sama bisa dibuat ulang setelah dihapus.
type EvaluationModel struct {
	EvaluationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_id" json:"evaluation_id"`

	EvaluationStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_evaluations_student_subject_period,priority:1,where:evaluation_deleted_at IS NULL;index:idx_evaluations_student;column:evaluation_student_id" json:"evaluation_student_id"`
	EvaluationSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_evaluations_student_subject_period,priority:2,where:evaluation_deleted_at IS NULL;index:idx_evaluations_subject;column:evaluation_subject_id" json:"evaluation_subject_id"`
	EvaluationPeriodID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_evaluations_student_subject_period,priority:3,where:evaluation_deleted_at IS NULL;index:idx_evaluations_period;column:evaluation_period_id" json:"evaluation_period_id"`

	EvaluationPerformance PerformanceLevel `gorm:"type:varchar(16);not null;default:'unset';column:evaluation_performance" json:"evaluation_performance"`
	EvaluationFinalRemark *string          `gorm:"type:text;column:evaluation_final_remark" json:"evaluation_final_remark,omitempty"`

	EvaluationStatus   EvaluationStatus `gorm:"type:varchar(12);not null;default:'draft';column:evaluation_status" json:"evaluation_status"`
	EvaluationLockedAt *time.Time       `gorm:"type:timestamptz;column:evaluation_locked_at" json:"evaluation_locked_at,omitempty"`
	EvaluationLockedBy *uuid.UUID       `gorm:"type:uuid;column:evaluation_locked_by" json:"evaluation_locked_by,omitempty"`

	EvaluationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_created_at" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_updated_at" json:"evaluation_updated_at"`
	EvaluationDeletedAt gorm.DeletedAt `gorm:"column:evaluation_deleted_at;index" json:"evaluation_deleted_at,omitempty"`

	Student *studentModel.StudentModel `gorm:"foreignKey:EvaluationStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:EvaluationSubjectID;references:SubjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"subject,omitempty"`
	Period  *periodModel.PeriodModel   `gorm:"foreignKey:EvaluationPeriodID;references:PeriodID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"period,omitempty"`

	Achievements []EvaluationAchievementModel `gorm:"foreignKey:EvaluationAchievementEvaluationID;references:EvaluationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"achievements,omitempty"`
}

func (EvaluationModel) TableName() string { return "evaluations" }

func (m *EvaluationModel) BeforeSave(tx *gorm.DB) error {
	if !m.EvaluationPerformance.IsValid() {
		return errors.New("evaluation_performance tidak dikenal")
	}
	if m.EvaluationStatus == "" {
		m.EvaluationStatus = EvaluationStatusDraft
	}
	if !m.EvaluationStatus.IsValid() {
		return errors.New("evaluation_status tidak dikenal")
	}
	if m.EvaluationFinalRemark != nil {
		r := strings.TrimSpace(*m.EvaluationFinalRemark)
		if r == "" {
			m.EvaluationFinalRemark = nil
		} else {
			m.EvaluationFinalRemark = &r
		}
	}
	return nil
}

// Lock mem-publish nilai: stamp waktu + aktor, status published.
// Record yang sudah terkunci menghasilkan ErrAlreadyLocked.
func (m *EvaluationModel) Lock(actorID uuid.UUID, now time.Time) error {
	if m.EvaluationLockedAt != nil {
		return ErrAlreadyLocked
	}
	m.EvaluationLockedAt = &now
	m.EvaluationLockedBy = &actorID
	m.EvaluationStatus = EvaluationStatusPublished
	return nil
}

// Unlock selalu berhasil, dari status apapun: kembali ke draft dan
// metadata lock dibersihkan. Otorisasi adalah urusan pemanggil.
func (m *EvaluationModel) Unlock() {
	m.EvaluationLockedAt = nil
	m.EvaluationLockedBy = nil
	m.EvaluationStatus = EvaluationStatusDraft
}

// IsEditable: boleh diedit kalau belum ada lock timestamp DAN belum published.
// Catatan: record reviewed tanpa lock tetap editable, reviewed cuma
// anotasi, bukan proteksi.
func (m *EvaluationModel) IsEditable() bool {
	return m.EvaluationLockedAt == nil && m.EvaluationStatus != EvaluationStatusPublished
}
