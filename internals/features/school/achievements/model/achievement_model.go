package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

// AchievementModel: butir kompetensi kurikulum untuk satu mapel.
// Siswa dinilai "tercapai / belum" per achievement lewat evaluation_achievements.
type AchievementModel struct {
	AchievementID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:achievement_id" json:"achievement_id"`
	AchievementSubjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_achievements_subject;column:achievement_subject_id" json:"achievement_subject_id"`

	AchievementTitle       string  `gorm:"type:varchar(200);not null;column:achievement_title" json:"achievement_title"`
	AchievementDescription *string `gorm:"type:text;column:achievement_description" json:"achievement_description,omitempty"`

	// Label bebas untuk pengelompokan kurikulum (mis. {"kognitif","semester-1"})
	AchievementTags pq.StringArray `gorm:"type:text[];column:achievement_tags" json:"achievement_tags,omitempty"`

	AchievementCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:achievement_created_at" json:"achievement_created_at"`
	AchievementUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:achievement_updated_at" json:"achievement_updated_at"`
	AchievementDeletedAt gorm.DeletedAt `gorm:"column:achievement_deleted_at;index" json:"achievement_deleted_at,omitempty"`

	Subject *subjectModel.SubjectModel `gorm:"foreignKey:AchievementSubjectID;references:SubjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"subject,omitempty"`
}

func (AchievementModel) TableName() string { return "achievements" }

func (m *AchievementModel) BeforeSave(tx *gorm.DB) error {
	m.AchievementTitle = strings.TrimSpace(m.AchievementTitle)
	if m.AchievementTitle == "" {
		return errors.New("achievement_title wajib diisi")
	}
	if m.AchievementDescription != nil {
		d := strings.TrimSpace(*m.AchievementDescription)
		if d == "" {
			m.AchievementDescription = nil
		} else {
			m.AchievementDescription = &d
		}
	}
	return nil
}
