package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	evaluationModel "raporku_backend/internals/features/school/evaluations/model"
	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

func makeSubject(name, code string) subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectID:   uuid.New(),
		SubjectName: name,
		SubjectCode: code,
	}
}

func makeEvaluation(subjectID uuid.UUID, level evaluationModel.PerformanceLevel) evaluationModel.EvaluationModel {
	return evaluationModel.EvaluationModel{
		EvaluationID:          uuid.New(),
		EvaluationStudentID:   uuid.New(),
		EvaluationSubjectID:   subjectID,
		EvaluationPeriodID:    uuid.New(),
		EvaluationPerformance: level,
	}
}

func TestAggregateEvaluations_AverageOverAllLevels(t *testing.T) {
	math := makeSubject("Matematika", "MTK")
	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceExcellent),
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceOutstanding),
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceAcceptable),
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceInsufficient),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{math}, evs)

	assert.Len(t, got, 1)
	agg := got[math.SubjectID]
	assert.Equal(t, 4, agg.EvaluationCount)
	assert.InDelta(t, 3.5, agg.Average, 1e-9)
}

func TestAggregateEvaluations_EverySubjectPresent(t *testing.T) {
	math := makeSubject("Matematika", "MTK")
	lang := makeSubject("Bahasa Indonesia", "BIN")
	sci := makeSubject("IPA", "IPA")

	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceExcellent),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{math, lang, sci}, evs)

	assert.Len(t, got, 3)
	assert.Equal(t, 1, got[math.SubjectID].EvaluationCount)
	assert.InDelta(t, 5.0, got[math.SubjectID].Average, 1e-9)

	// mapel tanpa nilai tetap muncul dengan rata-rata 0
	assert.Equal(t, 0, got[lang.SubjectID].EvaluationCount)
	assert.Zero(t, got[lang.SubjectID].Average)
	assert.Equal(t, 0, got[sci.SubjectID].EvaluationCount)
	assert.Zero(t, got[sci.SubjectID].Average)
}

func TestAggregateEvaluations_Empty(t *testing.T) {
	got := AggregateEvaluations(nil, nil)
	assert.Empty(t, got)
}

func TestAggregateEvaluations_GroupsBySubjectIDNotName(t *testing.T) {
	// dua mapel berbeda dengan nama sama, mis. kelas paralel
	a := makeSubject("Matematika", "MTK-A")
	b := makeSubject("Matematika", "MTK-B")

	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(a.SubjectID, evaluationModel.PerformanceExcellent),
		makeEvaluation(b.SubjectID, evaluationModel.PerformanceInsufficient),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{a, b}, evs)

	assert.Len(t, got, 2)
	assert.InDelta(t, 5.0, got[a.SubjectID].Average, 1e-9)
	assert.InDelta(t, 2.0, got[b.SubjectID].Average, 1e-9)
}

func TestAggregateEvaluations_UnsetCountsAsZero(t *testing.T) {
	math := makeSubject("Matematika", "MTK")
	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceExcellent),
		makeEvaluation(math.SubjectID, evaluationModel.PerformanceUnset),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{math}, evs)

	agg := got[math.SubjectID]
	assert.Equal(t, 2, agg.EvaluationCount)
	assert.InDelta(t, 2.5, agg.Average, 1e-9)
}

func TestAggregateEvaluations_IgnoresForeignSubject(t *testing.T) {
	math := makeSubject("Matematika", "MTK")
	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(uuid.New(), evaluationModel.PerformanceExcellent),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{math}, evs)

	assert.Len(t, got, 1)
	assert.Equal(t, 0, got[math.SubjectID].EvaluationCount)
}

// Siswa yang semua nilainya nyasar ke mapel kelas lain harus terhitung
// kosong: deteksi rapor kosong memakai jumlah nilai yang masuk grup,
// bukan jumlah baris mentah.
func TestCountAggregatedEvaluations_ForeignOnlyIsEmpty(t *testing.T) {
	math := makeSubject("Matematika", "MTK")
	evs := []evaluationModel.EvaluationModel{
		makeEvaluation(uuid.New(), evaluationModel.PerformanceExcellent),
		makeEvaluation(uuid.New(), evaluationModel.PerformanceAcceptable),
	}

	got := AggregateEvaluations([]subjectModel.SubjectModel{math}, evs)
	assert.Zero(t, CountAggregatedEvaluations(got))

	got = AggregateEvaluations([]subjectModel.SubjectModel{math},
		append(evs, makeEvaluation(math.SubjectID, evaluationModel.PerformanceOutstanding)))
	assert.Equal(t, 1, CountAggregatedEvaluations(got))
}
