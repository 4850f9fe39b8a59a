package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	achievementModel "raporku_backend/internals/features/school/achievements/model"
	model "raporku_backend/internals/features/school/evaluations/model"
)

func TestCreateEvaluationRequest_ToModelDefaults(t *testing.T) {
	req := CreateEvaluationRequest{
		EvaluationStudentID: uuid.New(),
		EvaluationSubjectID: uuid.New(),
		EvaluationPeriodID:  uuid.New(),
	}

	ev := req.ToModel()

	assert.Equal(t, model.PerformanceUnset, ev.EvaluationPerformance)
	assert.Equal(t, model.EvaluationStatusDraft, ev.EvaluationStatus)
	assert.Nil(t, ev.EvaluationFinalRemark)
}

func TestCreateEvaluationRequest_ToModelWithPerformance(t *testing.T) {
	level := "excellent"
	req := CreateEvaluationRequest{
		EvaluationStudentID:   uuid.New(),
		EvaluationSubjectID:   uuid.New(),
		EvaluationPeriodID:    uuid.New(),
		EvaluationPerformance: &level,
	}

	ev := req.ToModel()
	assert.Equal(t, model.PerformanceExcellent, ev.EvaluationPerformance)
}

// Status tidak boleh bisa diubah lewat PATCH: published hanya lewat lock,
// reviewed lewat endpoint review. Payload yang mencoba mengirim status
// harus diabaikan, bukan dipersist.
func TestUpdateEvaluationRequest_StatusCannotBePatched(t *testing.T) {
	payload := []byte(`{"evaluation_status":"published","evaluation_performance":"excellent"}`)

	var req UpdateEvaluationRequest
	assert.NoError(t, sonic.Unmarshal(payload, &req))

	updates := req.ToUpdates()
	assert.NotContains(t, updates, "evaluation_status")
	assert.Equal(t, "excellent", updates["evaluation_performance"])
}

func TestUpdateEvaluationRequest_ToUpdatesPartial(t *testing.T) {
	remark := "Perlu latihan soal cerita"
	req := UpdateEvaluationRequest{EvaluationFinalRemark: &remark}

	updates := req.ToUpdates()

	assert.Len(t, updates, 1)
	assert.Equal(t, remark, updates["evaluation_final_remark"])

	assert.Empty(t, (UpdateEvaluationRequest{}).ToUpdates())
}

// Urutan link harus mengikuti urutan input, bukan diurutkan ulang.
func TestFromEvaluationAchievementModels_PreservesOrder(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	titles := []string{"Zeta", "Alpha", "Mid"}

	links := make([]model.EvaluationAchievementModel, 0, len(titles))
	for i, title := range titles {
		links = append(links, model.EvaluationAchievementModel{
			EvaluationAchievementID:         uuid.New(),
			EvaluationAchievementIsAttained: i%2 == 0,
			EvaluationAchievementCreatedAt:  base.Add(time.Duration(i) * time.Minute),
			Achievement: &achievementModel.AchievementModel{
				AchievementTitle: title,
			},
		})
	}

	got := FromEvaluationAchievementModels(links)

	assert.Len(t, got, 3)
	for i, title := range titles {
		assert.Equal(t, title, got[i].AchievementTitle)
	}
	assert.True(t, got[0].IsAttained)
	assert.False(t, got[1].IsAttained)
}
