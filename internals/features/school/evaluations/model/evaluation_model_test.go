package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newDraftEvaluation() *EvaluationModel {
	return &EvaluationModel{
		EvaluationID:          uuid.New(),
		EvaluationStudentID:   uuid.New(),
		EvaluationSubjectID:   uuid.New(),
		EvaluationPeriodID:    uuid.New(),
		EvaluationPerformance: PerformanceAcceptable,
		EvaluationStatus:      EvaluationStatusDraft,
	}
}

func TestLock(t *testing.T) {
	ev := newDraftEvaluation()
	actor := uuid.New()
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	err := ev.Lock(actor, now)
	assert.NoError(t, err)
	assert.Equal(t, EvaluationStatusPublished, ev.EvaluationStatus)
	assert.NotNil(t, ev.EvaluationLockedAt)
	assert.Equal(t, now, *ev.EvaluationLockedAt)
	assert.NotNil(t, ev.EvaluationLockedBy)
	assert.Equal(t, actor, *ev.EvaluationLockedBy)
}

// Lock kedua harus error dan tidak mengubah apapun dari lock pertama.
func TestLock_AlreadyLocked(t *testing.T) {
	ev := newDraftEvaluation()
	firstActor := uuid.New()
	firstTime := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	assert.NoError(t, ev.Lock(firstActor, firstTime))

	err := ev.Lock(uuid.New(), firstTime.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyLocked)
	assert.Equal(t, firstTime, *ev.EvaluationLockedAt)
	assert.Equal(t, firstActor, *ev.EvaluationLockedBy)
	assert.Equal(t, EvaluationStatusPublished, ev.EvaluationStatus)
}

// Unlock selalu berhasil, dari status apapun.
func TestUnlock_AlwaysResetsToDraft(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*EvaluationModel)
	}{
		{"draft", func(ev *EvaluationModel) {}},
		{"published", func(ev *EvaluationModel) {
			_ = ev.Lock(uuid.New(), time.Now())
		}},
		{"reviewed", func(ev *EvaluationModel) {
			ev.EvaluationStatus = EvaluationStatusReviewed
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := newDraftEvaluation()
			tc.setup(ev)

			ev.Unlock()

			assert.Equal(t, EvaluationStatusDraft, ev.EvaluationStatus)
			assert.Nil(t, ev.EvaluationLockedAt)
			assert.Nil(t, ev.EvaluationLockedBy)
		})
	}
}

func TestIsEditable(t *testing.T) {
	ev := newDraftEvaluation()
	assert.True(t, ev.IsEditable())

	_ = ev.Lock(uuid.New(), time.Now())
	assert.False(t, ev.IsEditable())

	ev.Unlock()
	assert.True(t, ev.IsEditable())
}

// reviewed tanpa lock timestamp tetap editable: reviewed cuma anotasi.
func TestIsEditable_ReviewedStaysEditable(t *testing.T) {
	ev := newDraftEvaluation()
	ev.EvaluationStatus = EvaluationStatusReviewed

	assert.True(t, ev.IsEditable())
}

func TestLockUnlockCycle(t *testing.T) {
	ev := newDraftEvaluation()
	actor := uuid.New()

	assert.NoError(t, ev.Lock(actor, time.Now()))
	assert.ErrorIs(t, ev.Lock(actor, time.Now()), ErrAlreadyLocked)

	ev.Unlock()
	// setelah unlock, lock lagi harus bisa
	assert.NoError(t, ev.Lock(actor, time.Now()))
}
