package dto

import (
	"time"

	"github.com/google/uuid"

	gradeModel "raporku_backend/internals/features/school/grades/model"
)

type CreateGradeRequest struct {
	GradeName        string  `json:"grade_name" validate:"required,min=1,max=80"`
	GradeLevel       int     `json:"grade_level" validate:"required,min=1,max=12"`
	GradeDescription *string `json:"grade_description,omitempty"`
}

func (r CreateGradeRequest) ToModel() gradeModel.GradeModel {
	return gradeModel.GradeModel{
		GradeName:        r.GradeName,
		GradeLevel:       r.GradeLevel,
		GradeDescription: r.GradeDescription,
	}
}

type UpdateGradeRequest struct {
	GradeName        *string `json:"grade_name,omitempty" validate:"omitempty,min=1,max=80"`
	GradeLevel       *int    `json:"grade_level,omitempty" validate:"omitempty,min=1,max=12"`
	GradeDescription *string `json:"grade_description,omitempty"`
}

func (r *UpdateGradeRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.GradeName != nil {
		upd["grade_name"] = *r.GradeName
	}
	if r.GradeLevel != nil {
		upd["grade_level"] = *r.GradeLevel
	}
	if r.GradeDescription != nil {
		upd["grade_description"] = *r.GradeDescription
	}
	return upd
}

type GradeResponse struct {
	GradeID          uuid.UUID `json:"grade_id"`
	GradeName        string    `json:"grade_name"`
	GradeLevel       int       `json:"grade_level"`
	GradeDescription *string   `json:"grade_description,omitempty"`
	GradeCreatedAt   time.Time `json:"grade_created_at"`
	GradeUpdatedAt   time.Time `json:"grade_updated_at"`
}

func FromModel(m *gradeModel.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:          m.GradeID,
		GradeName:        m.GradeName,
		GradeLevel:       m.GradeLevel,
		GradeDescription: m.GradeDescription,
		GradeCreatedAt:   m.GradeCreatedAt,
		GradeUpdatedAt:   m.GradeUpdatedAt,
	}
}

func FromModels(list []gradeModel.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
