package dto

import (
	"time"

	"github.com/google/uuid"

	model "raporku_backend/internals/features/school/evaluations/model"
)

// ========================
// Request DTO
// ========================

type CreateEvaluationRequest struct {
	EvaluationStudentID uuid.UUID `json:"evaluation_student_id" validate:"required"`
	EvaluationSubjectID uuid.UUID `json:"evaluation_subject_id" validate:"required"`
	EvaluationPeriodID  uuid.UUID `json:"evaluation_period_id" validate:"required"`

	EvaluationPerformance *string `json:"evaluation_performance" validate:"omitempty,oneof=excellent outstanding acceptable insufficient unset"`
	EvaluationFinalRemark *string `json:"evaluation_final_remark" validate:"omitempty,max=2000"`
}

func (r CreateEvaluationRequest) ToModel() *model.EvaluationModel {
	ev := &model.EvaluationModel{
		EvaluationStudentID:   r.EvaluationStudentID,
		EvaluationSubjectID:   r.EvaluationSubjectID,
		EvaluationPeriodID:    r.EvaluationPeriodID,
		EvaluationPerformance: model.PerformanceUnset,
		EvaluationStatus:      model.EvaluationStatusDraft,
		EvaluationFinalRemark: r.EvaluationFinalRemark,
	}
	if r.EvaluationPerformance != nil {
		ev.EvaluationPerformance = model.PerformanceLevel(*r.EvaluationPerformance)
	}
	return ev
}

// UpdateEvaluationRequest sengaja tidak punya field status: published hanya
// bisa dicapai lewat lock, reviewed lewat endpoint review. PATCH cuma untuk
// isi nilainya.
type UpdateEvaluationRequest struct {
	EvaluationPerformance *string `json:"evaluation_performance" validate:"omitempty,oneof=excellent outstanding acceptable insufficient unset"`
	EvaluationFinalRemark *string `json:"evaluation_final_remark" validate:"omitempty,max=2000"`
}

// ToUpdates: hanya field yang dikirim yang masuk ke map update.
func (r UpdateEvaluationRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.EvaluationPerformance != nil {
		updates["evaluation_performance"] = *r.EvaluationPerformance
	}
	if r.EvaluationFinalRemark != nil {
		updates["evaluation_final_remark"] = *r.EvaluationFinalRemark
	}
	return updates
}

type ListEvaluationsQuery struct {
	StudentID *uuid.UUID `query:"student_id"`
	SubjectID *uuid.UUID `query:"subject_id"`
	PeriodID  *uuid.UUID `query:"period_id"`
	Status    *string    `query:"status" validate:"omitempty,oneof=draft published reviewed"`
}

type AttachAchievementRequest struct {
	AchievementID uuid.UUID `json:"achievement_id" validate:"required"`
	IsAttained    *bool     `json:"is_attained"`
}

type UpdateAchievementLinkRequest struct {
	IsAttained *bool `json:"is_attained"`
}

// ========================
// Response DTO
// ========================

type EvaluationResponse struct {
	EvaluationID uuid.UUID `json:"evaluation_id"`

	EvaluationStudentID uuid.UUID `json:"evaluation_student_id"`
	EvaluationSubjectID uuid.UUID `json:"evaluation_subject_id"`
	EvaluationPeriodID  uuid.UUID `json:"evaluation_period_id"`

	EvaluationPerformance        string  `json:"evaluation_performance"`
	EvaluationPerformanceNumeric float64 `json:"evaluation_performance_numeric"`
	EvaluationPerformanceLabel   string  `json:"evaluation_performance_label"`
	EvaluationFinalRemark        *string `json:"evaluation_final_remark,omitempty"`

	EvaluationStatus   string     `json:"evaluation_status"`
	EvaluationLockedAt *time.Time `json:"evaluation_locked_at,omitempty"`
	EvaluationLockedBy *uuid.UUID `json:"evaluation_locked_by,omitempty"`

	EvaluationCreatedAt time.Time `json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time `json:"evaluation_updated_at"`
}

func FromEvaluationModel(ev model.EvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID:                 ev.EvaluationID,
		EvaluationStudentID:          ev.EvaluationStudentID,
		EvaluationSubjectID:          ev.EvaluationSubjectID,
		EvaluationPeriodID:           ev.EvaluationPeriodID,
		EvaluationPerformance:        string(ev.EvaluationPerformance),
		EvaluationPerformanceNumeric: ev.EvaluationPerformance.Numeric(),
		EvaluationPerformanceLabel:   ev.EvaluationPerformance.Label(),
		EvaluationFinalRemark:        ev.EvaluationFinalRemark,
		EvaluationStatus:             string(ev.EvaluationStatus),
		EvaluationLockedAt:           ev.EvaluationLockedAt,
		EvaluationLockedBy:           ev.EvaluationLockedBy,
		EvaluationCreatedAt:          ev.EvaluationCreatedAt,
		EvaluationUpdatedAt:          ev.EvaluationUpdatedAt,
	}
}

func FromEvaluationModels(evs []model.EvaluationModel) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromEvaluationModel(ev))
	}
	return out
}

type EvaluationAchievementResponse struct {
	EvaluationAchievementID uuid.UUID `json:"evaluation_achievement_id"`
	AchievementID           uuid.UUID `json:"achievement_id"`
	AchievementTitle        string    `json:"achievement_title"`
	AchievementDescription  *string   `json:"achievement_description,omitempty"`
	IsAttained              bool      `json:"is_attained"`
	CreatedAt               time.Time `json:"created_at"`
}

func FromEvaluationAchievementModel(link model.EvaluationAchievementModel) EvaluationAchievementResponse {
	resp := EvaluationAchievementResponse{
		EvaluationAchievementID: link.EvaluationAchievementID,
		AchievementID:           link.EvaluationAchievementAchievementID,
		IsAttained:              link.EvaluationAchievementIsAttained,
		CreatedAt:               link.EvaluationAchievementCreatedAt,
	}
	if link.Achievement != nil {
		resp.AchievementTitle = link.Achievement.AchievementTitle
		resp.AchievementDescription = link.Achievement.AchievementDescription
	}
	return resp
}

func FromEvaluationAchievementModels(links []model.EvaluationAchievementModel) []EvaluationAchievementResponse {
	out := make([]EvaluationAchievementResponse, 0, len(links))
	for _, link := range links {
		out = append(out, FromEvaluationAchievementModel(link))
	}
	return out
}
