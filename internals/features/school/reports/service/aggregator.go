package service

import (
	"github.com/google/uuid"

	evaluationModel "raporku_backend/internals/features/school/evaluations/model"
	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

// SubjectAggregate adalah ringkasan nilai satu mapel untuk satu siswa.
type SubjectAggregate struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	SubjectCode     string    `json:"subject_code"`
	EvaluationCount int       `json:"evaluation_count"`
	Average         float64   `json:"average"`
}

// AggregateEvaluations menghitung rata-rata numerik per mapel.
// Kunci pengelompokan adalah subject_id, BUKAN nama mapel: dua mapel
// berbeda dengan nama sama tetap jadi dua grup. Setiap mapel di daftar
// selalu muncul di hasil; mapel tanpa nilai dapat rata-rata 0.
// Fungsi ini murni: tidak menyentuh DB.
func AggregateEvaluations(
	subjects []subjectModel.SubjectModel,
	evaluations []evaluationModel.EvaluationModel,
) map[uuid.UUID]SubjectAggregate {
	out := make(map[uuid.UUID]SubjectAggregate, len(subjects))
	for i := range subjects {
		s := &subjects[i]
		out[s.SubjectID] = SubjectAggregate{
			SubjectID:   s.SubjectID,
			SubjectName: s.SubjectName,
			SubjectCode: s.SubjectCode,
		}
	}

	sums := make(map[uuid.UUID]float64, len(subjects))
	for i := range evaluations {
		ev := &evaluations[i]
		agg, ok := out[ev.EvaluationSubjectID]
		if !ok {
			// nilai untuk mapel di luar daftar (mis. mapel sudah pindah kelas) diabaikan
			continue
		}
		sums[ev.EvaluationSubjectID] += ev.EvaluationPerformance.Numeric()
		agg.EvaluationCount++
		out[ev.EvaluationSubjectID] = agg
	}

	for id, agg := range out {
		if agg.EvaluationCount > 0 {
			agg.Average = sums[id] / float64(agg.EvaluationCount)
			out[id] = agg
		}
	}
	return out
}

// CountAggregatedEvaluations menjumlahkan nilai yang benar-benar masuk grup.
// Nilai milik mapel di luar daftar tidak ikut, jadi angka ini yang dipakai
// untuk mendeteksi rapor kosong.
func CountAggregatedEvaluations(aggregates map[uuid.UUID]SubjectAggregate) int {
	total := 0
	for _, agg := range aggregates {
		total += agg.EvaluationCount
	}
	return total
}
