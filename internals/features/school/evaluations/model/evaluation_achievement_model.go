package model

import (
	"time"

	"github.com/google/uuid"

	achievementModel "raporku_backend/internals/features/school/achievements/model"
)

// EvaluationAchievementModel: join antara satu nilai rapor dan butir
// kompetensi yang dicakupnya, dengan flag tercapai.
// Tidak ada unique constraint (evaluation, achievement), mengikuti perilaku
// sistem lama; baris tampil sesuai urutan insert.
type EvaluationAchievementModel struct {
	EvaluationAchievementID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_achievement_id" json:"evaluation_achievement_id"`

	EvaluationAchievementEvaluationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_evaluation_achievements_evaluation;column:evaluation_achievement_evaluation_id" json:"evaluation_achievement_evaluation_id"`
	EvaluationAchievementAchievementID uuid.UUID `gorm:"type:uuid;not null;index:idx_evaluation_achievements_achievement;column:evaluation_achievement_achievement_id" json:"evaluation_achievement_achievement_id"`

	EvaluationAchievementIsAttained bool `gorm:"not null;default:false;column:evaluation_achievement_is_attained" json:"evaluation_achievement_is_attained"`

	EvaluationAchievementCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_achievement_created_at" json:"evaluation_achievement_created_at"`

	Achievement *achievementModel.AchievementModel `gorm:"foreignKey:EvaluationAchievementAchievementID;references:AchievementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"achievement,omitempty"`
}

func (EvaluationAchievementModel) TableName() string { return "evaluation_achievements" }
