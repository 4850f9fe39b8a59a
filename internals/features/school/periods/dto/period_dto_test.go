package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	periodModel "raporku_backend/internals/features/school/periods/model"
)

func storedPeriod() periodModel.PeriodModel {
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	return periodModel.PeriodModel{
		PeriodID:         uuid.New(),
		PeriodSchoolYear: "2025/2026",
		PeriodNumber:     1,
		PeriodCut:        periodModel.PeriodCutFirst,
		PeriodStartDate:  start,
		PeriodEndDate:    start.AddDate(0, 2, 0),
	}
}

// PATCH yang hanya menggeser end_date ke sebelum start_date harus gagal
// di validasi: Apply menimpa struct hasil load, lalu BeforeSave menilai
// kombinasi tanggal GABUNGAN, bukan tanggal lama.
func TestUpdatePeriodRequest_ApplyInvertedDatesRejected(t *testing.T) {
	period := storedPeriod()
	badEnd := period.PeriodStartDate.AddDate(0, 0, -5)

	req := UpdatePeriodRequest{PeriodEndDate: &badEnd}
	assert.True(t, req.Apply(&period))

	err := period.BeforeSave(nil)
	assert.ErrorIs(t, err, periodModel.ErrInvalidPeriodOrdering)
}

func TestUpdatePeriodRequest_ApplyMergesOnlySentFields(t *testing.T) {
	period := storedPeriod()
	origStart := period.PeriodStartDate
	newEnd := period.PeriodStartDate.AddDate(0, 3, 0)
	year := "2026/2027"

	req := UpdatePeriodRequest{
		PeriodSchoolYear: &year,
		PeriodEndDate:    &newEnd,
	}
	assert.True(t, req.Apply(&period))

	assert.Equal(t, "2026/2027", period.PeriodSchoolYear)
	assert.Equal(t, newEnd, period.PeriodEndDate)
	assert.Equal(t, origStart, period.PeriodStartDate)
	assert.Equal(t, 1, period.PeriodNumber)

	assert.NoError(t, period.BeforeSave(nil))
}

func TestUpdatePeriodRequest_ApplyEmpty(t *testing.T) {
	period := storedPeriod()
	req := UpdatePeriodRequest{}
	assert.False(t, req.Apply(&period))
}
