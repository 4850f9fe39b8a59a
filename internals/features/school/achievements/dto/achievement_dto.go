package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	achievementModel "raporku_backend/internals/features/school/achievements/model"
)

type CreateAchievementRequest struct {
	AchievementSubjectID   uuid.UUID `json:"achievement_subject_id" validate:"required,uuid4"`
	AchievementTitle       string    `json:"achievement_title" validate:"required,min=1,max=200"`
	AchievementDescription *string   `json:"achievement_description,omitempty"`
	AchievementTags        []string  `json:"achievement_tags,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

func (r CreateAchievementRequest) ToModel() achievementModel.AchievementModel {
	return achievementModel.AchievementModel{
		AchievementSubjectID:   r.AchievementSubjectID,
		AchievementTitle:       r.AchievementTitle,
		AchievementDescription: r.AchievementDescription,
		AchievementTags:        pq.StringArray(r.AchievementTags),
	}
}

type UpdateAchievementRequest struct {
	AchievementTitle       *string  `json:"achievement_title,omitempty" validate:"omitempty,min=1,max=200"`
	AchievementDescription *string  `json:"achievement_description,omitempty"`
	AchievementTags        []string `json:"achievement_tags,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

func (r *UpdateAchievementRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.AchievementTitle != nil {
		upd["achievement_title"] = *r.AchievementTitle
	}
	if r.AchievementDescription != nil {
		upd["achievement_description"] = *r.AchievementDescription
	}
	if r.AchievementTags != nil {
		upd["achievement_tags"] = pq.StringArray(r.AchievementTags)
	}
	return upd
}

type AchievementResponse struct {
	AchievementID          uuid.UUID `json:"achievement_id"`
	AchievementSubjectID   uuid.UUID `json:"achievement_subject_id"`
	AchievementTitle       string    `json:"achievement_title"`
	AchievementDescription *string   `json:"achievement_description,omitempty"`
	AchievementTags        []string  `json:"achievement_tags,omitempty"`
	AchievementCreatedAt   time.Time `json:"achievement_created_at"`
	AchievementUpdatedAt   time.Time `json:"achievement_updated_at"`
}

func FromModel(m *achievementModel.AchievementModel) AchievementResponse {
	return AchievementResponse{
		AchievementID:          m.AchievementID,
		AchievementSubjectID:   m.AchievementSubjectID,
		AchievementTitle:       m.AchievementTitle,
		AchievementDescription: m.AchievementDescription,
		AchievementTags:        m.AchievementTags,
		AchievementCreatedAt:   m.AchievementCreatedAt,
		AchievementUpdatedAt:   m.AchievementUpdatedAt,
	}
}

func FromModels(list []achievementModel.AchievementModel) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
