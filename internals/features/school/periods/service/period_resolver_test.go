package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	periodModel "raporku_backend/internals/features/school/periods/model"
)

func makePeriod(year string, number int, cut periodModel.PeriodCut) periodModel.PeriodModel {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	return periodModel.PeriodModel{
		PeriodID:         uuid.New(),
		PeriodSchoolYear: year,
		PeriodNumber:     number,
		PeriodCut:        cut,
		PeriodStartDate:  start,
		PeriodEndDate:    start.AddDate(0, 2, 0),
	}
}

// Tahun ajaran standar: P1..P4 = (1,first)(1,second)(2,first)(2,second)
func standardYear() []periodModel.PeriodModel {
	return []periodModel.PeriodModel{
		makePeriod("2025/2026", 1, periodModel.PeriodCutFirst),
		makePeriod("2025/2026", 1, periodModel.PeriodCutSecond),
		makePeriod("2025/2026", 2, periodModel.PeriodCutFirst),
		makePeriod("2025/2026", 2, periodModel.PeriodCutSecond),
	}
}

func TestSortPeriods(t *testing.T) {
	year := standardYear()
	shuffled := []periodModel.PeriodModel{year[3], year[0], year[2], year[1]}

	SortPeriods(shuffled)

	assert.Equal(t, year[0].PeriodID, shuffled[0].PeriodID)
	assert.Equal(t, year[1].PeriodID, shuffled[1].PeriodID)
	assert.Equal(t, year[2].PeriodID, shuffled[2].PeriodID)
	assert.Equal(t, year[3].PeriodID, shuffled[3].PeriodID)
}

func TestIsFinalPeriodOfYear(t *testing.T) {
	year := standardYear()

	assert.False(t, IsFinalPeriodOfYear(&year[0], year)) // 1/first
	assert.False(t, IsFinalPeriodOfYear(&year[1], year)) // 1/second
	assert.True(t, IsFinalPeriodOfYear(&year[2], year))  // 2/first: tidak ada number > 2
	assert.True(t, IsFinalPeriodOfYear(&year[3], year))  // 2/second
}

func TestResolveApplicablePeriods_NonFinal(t *testing.T) {
	year := standardYear()

	// target = P2 (1/second) → [P1, P2]
	got := ResolveApplicablePeriods(&year[1], year)
	assert.Len(t, got, 2)
	assert.Equal(t, year[0].PeriodID, got[0].PeriodID)
	assert.Equal(t, year[1].PeriodID, got[1].PeriodID)
}

func TestResolveApplicablePeriods_FinalPeriodTakesWholeYear(t *testing.T) {
	year := standardYear()

	// target = P3 (2/first): period 2 adalah number terakhir tahun itu,
	// jadi seluruh tahun masuk, termasuk P4 yang secara order > target.
	got := ResolveApplicablePeriods(&year[2], year)
	assert.Len(t, got, 4)

	// target = P4 (2/second) → juga seluruh tahun
	got = ResolveApplicablePeriods(&year[3], year)
	assert.Len(t, got, 4)
	for i := range year {
		assert.Equal(t, year[i].PeriodID, got[i].PeriodID)
	}
}

func TestResolveApplicablePeriods_IgnoresOtherYears(t *testing.T) {
	year := standardYear()
	other := makePeriod("2024/2025", 2, periodModel.PeriodCutSecond)
	all := append([]periodModel.PeriodModel{other}, year...)

	got := ResolveApplicablePeriods(&year[1], all)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "2025/2026", p.PeriodSchoolYear)
	}
}

func TestResolveApplicablePeriods_SinglePeriodYear(t *testing.T) {
	only := makePeriod("2025/2026", 1, periodModel.PeriodCutFirst)

	got := ResolveApplicablePeriods(&only, []periodModel.PeriodModel{only})
	assert.Len(t, got, 1)
	assert.Equal(t, only.PeriodID, got[0].PeriodID)
}

func TestPeriodOrdering_CutRank(t *testing.T) {
	first := makePeriod("2025/2026", 1, periodModel.PeriodCutFirst)
	second := makePeriod("2025/2026", 1, periodModel.PeriodCutSecond)

	assert.True(t, first.Less(&second))
	assert.False(t, second.Less(&first))
	assert.True(t, first.SameOrBefore(&second))
	assert.True(t, first.SameOrBefore(&first))
	assert.False(t, second.SameOrBefore(&first))
}
