package dto

import (
	"time"

	"github.com/google/uuid"

	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectGradeID     uuid.UUID `json:"subject_grade_id" validate:"required,uuid4"`
	SubjectName        string    `json:"subject_name" validate:"required,min=1,max=120"`
	SubjectCode        string    `json:"subject_code" validate:"required,min=1,max=30"`
	SubjectWeeklyHours int       `json:"subject_weekly_hours" validate:"omitempty,min=0,max=60"`
}

func (r CreateSubjectRequest) ToModel() subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectGradeID:     r.SubjectGradeID,
		SubjectName:        r.SubjectName,
		SubjectCode:        r.SubjectCode,
		SubjectWeeklyHours: r.SubjectWeeklyHours,
	}
}

type UpdateSubjectRequest struct {
	SubjectName        *string `json:"subject_name,omitempty" validate:"omitempty,min=1,max=120"`
	SubjectCode        *string `json:"subject_code,omitempty" validate:"omitempty,min=1,max=30"`
	SubjectWeeklyHours *int    `json:"subject_weekly_hours,omitempty" validate:"omitempty,min=0,max=60"`
}

func (r *UpdateSubjectRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.SubjectName != nil {
		upd["subject_name"] = *r.SubjectName
	}
	if r.SubjectCode != nil {
		upd["subject_code"] = *r.SubjectCode
	}
	if r.SubjectWeeklyHours != nil {
		upd["subject_weekly_hours"] = *r.SubjectWeeklyHours
	}
	return upd
}

type SubjectResponse struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectGradeID     uuid.UUID `json:"subject_grade_id"`
	SubjectName        string    `json:"subject_name"`
	SubjectCode        string    `json:"subject_code"`
	SubjectWeeklyHours int       `json:"subject_weekly_hours"`
	SubjectCreatedAt   time.Time `json:"subject_created_at"`
	SubjectUpdatedAt   time.Time `json:"subject_updated_at"`
}

func FromModel(m *subjectModel.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:          m.SubjectID,
		SubjectGradeID:     m.SubjectGradeID,
		SubjectName:        m.SubjectName,
		SubjectCode:        m.SubjectCode,
		SubjectWeeklyHours: m.SubjectWeeklyHours,
		SubjectCreatedAt:   m.SubjectCreatedAt,
		SubjectUpdatedAt:   m.SubjectUpdatedAt,
	}
}

func FromModels(list []subjectModel.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
