package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "raporku_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentGradeID       uuid.UUID `json:"student_grade_id" validate:"required,uuid4"`
	StudentFullName      string    `json:"student_full_name" validate:"required,min=1,max=120"`
	StudentCode          string    `json:"student_code" validate:"required,min=1,max=30"`
	StudentGuardianName  *string   `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string   `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
}

func (r CreateStudentRequest) ToModel() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentGradeID:       r.StudentGradeID,
		StudentFullName:      r.StudentFullName,
		StudentCode:          r.StudentCode,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentIsActive:      true,
	}
}

type UpdateStudentRequest struct {
	StudentGradeID       *uuid.UUID `json:"student_grade_id,omitempty" validate:"omitempty,uuid4"`
	StudentFullName      *string    `json:"student_full_name,omitempty" validate:"omitempty,min=1,max=120"`
	StudentCode          *string    `json:"student_code,omitempty" validate:"omitempty,min=1,max=30"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentIsActive      *bool      `json:"student_is_active,omitempty"`
}

func (r *UpdateStudentRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.StudentGradeID != nil {
		upd["student_grade_id"] = *r.StudentGradeID
	}
	if r.StudentFullName != nil {
		upd["student_full_name"] = *r.StudentFullName
	}
	if r.StudentCode != nil {
		upd["student_code"] = *r.StudentCode
	}
	if r.StudentGuardianName != nil {
		upd["student_guardian_name"] = *r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		upd["student_guardian_phone"] = *r.StudentGuardianPhone
	}
	if r.StudentIsActive != nil {
		upd["student_is_active"] = *r.StudentIsActive
	}
	return upd
}

type ListStudentsQuery struct {
	GradeID  *uuid.UUID `query:"grade_id"`
	IsActive *bool      `query:"is_active"`
	Search   string     `query:"q"`
}

type StudentResponse struct {
	StudentID            uuid.UUID `json:"student_id"`
	StudentGradeID       uuid.UUID `json:"student_grade_id"`
	StudentFullName      string    `json:"student_full_name"`
	StudentCode          string    `json:"student_code"`
	StudentGuardianName  *string   `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string   `json:"student_guardian_phone,omitempty"`
	StudentIsActive      bool      `json:"student_is_active"`
	StudentCreatedAt     time.Time `json:"student_created_at"`
	StudentUpdatedAt     time.Time `json:"student_updated_at"`
}

func FromModel(m *studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentGradeID:       m.StudentGradeID,
		StudentFullName:      m.StudentFullName,
		StudentCode:          m.StudentCode,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentIsActive:      m.StudentIsActive,
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func FromModels(list []studentModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
