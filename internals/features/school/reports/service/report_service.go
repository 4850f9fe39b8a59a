package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	evaluationDto "raporku_backend/internals/features/school/evaluations/dto"
	evaluationModel "raporku_backend/internals/features/school/evaluations/model"
	gradeModel "raporku_backend/internals/features/school/grades/model"
	periodDto "raporku_backend/internals/features/school/periods/dto"
	periodService "raporku_backend/internals/features/school/periods/service"
	studentModel "raporku_backend/internals/features/school/students/model"
	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

var ErrStudentNotFound = errors.New("siswa tidak ditemukan")

// StudentReport adalah rapor satu siswa untuk satu period target.
// Period akhir tahun otomatis merangkum seluruh period di tahun ajarannya.
type StudentReport struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentFullName string    `json:"student_full_name"`
	StudentCode     string    `json:"student_code"`
	GradeID         uuid.UUID `json:"grade_id"`
	GradeName       string    `json:"grade_name"`

	TargetPeriod      periodDto.PeriodResponse   `json:"target_period"`
	ApplicablePeriods []periodDto.PeriodResponse `json:"applicable_periods"`
	IsYearFinal       bool                       `json:"is_year_final"`

	Subjects []SubjectReportEntry `json:"subjects"`

	EvaluationCount int `json:"evaluation_count"`
}

// SubjectReportEntry: satu baris rapor per mapel.
type SubjectReportEntry struct {
	SubjectAggregate
	Evaluations []ReportEvaluation `json:"evaluations"`
}

type ReportEvaluation struct {
	evaluationDto.EvaluationResponse
	Achievements []evaluationDto.EvaluationAchievementResponse `json:"achievements"`
}

type ReportService struct {
	DB       *gorm.DB
	Resolver *periodService.PeriodResolverService
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		DB:       db,
		Resolver: periodService.NewPeriodResolverService(db),
	}
}

// BuildStudentReport merakit rapor satu siswa: resolve period yang berlaku,
// ambil nilai + link capaian, lalu agregasi per mapel.
func (s *ReportService) BuildStudentReport(ctx context.Context, studentID, targetPeriodID uuid.UUID) (*StudentReport, error) {
	var student studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var grade gradeModel.GradeModel
	if err := s.DB.WithContext(ctx).
		First(&grade, "grade_id = ?", student.StudentGradeID).Error; err != nil {
		return nil, err
	}

	resolution, err := s.Resolver.ApplicablePeriods(ctx, targetPeriodID)
	if err != nil {
		return nil, err
	}
	applicable := resolution.Applicable

	var subjects []subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).
		Where("subject_grade_id = ?", grade.GradeID).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return nil, err
	}

	periodIDs := make([]uuid.UUID, 0, len(applicable))
	for i := range applicable {
		periodIDs = append(periodIDs, applicable[i].PeriodID)
	}
	subjectIDs := make([]uuid.UUID, 0, len(subjects))
	for i := range subjects {
		subjectIDs = append(subjectIDs, subjects[i].SubjectID)
	}

	// dibatasi ke mapel kelas ini: nilai nyasar milik mapel kelas lain
	// tidak boleh ikut dihitung (termasuk untuk deteksi rapor kosong)
	var evaluations []evaluationModel.EvaluationModel
	if len(periodIDs) > 0 && len(subjectIDs) > 0 {
		if err := s.DB.WithContext(ctx).
			Where("evaluation_student_id = ? AND evaluation_period_id IN ? AND evaluation_subject_id IN ?",
				studentID, periodIDs, subjectIDs).
			Order("evaluation_created_at ASC").
			Find(&evaluations).Error; err != nil {
			return nil, err
		}
	}

	linksByEvaluation, err := s.loadAchievementLinks(ctx, evaluations)
	if err != nil {
		return nil, err
	}

	aggregates := AggregateEvaluations(subjects, evaluations)

	bySubject := make(map[uuid.UUID][]ReportEvaluation, len(subjects))
	for i := range evaluations {
		ev := &evaluations[i]
		bySubject[ev.EvaluationSubjectID] = append(bySubject[ev.EvaluationSubjectID], ReportEvaluation{
			EvaluationResponse: evaluationDto.FromEvaluationModel(*ev),
			Achievements:       linksByEvaluation[ev.EvaluationID],
		})
	}

	entries := make([]SubjectReportEntry, 0, len(subjects))
	for i := range subjects {
		id := subjects[i].SubjectID
		evs := bySubject[id]
		if evs == nil {
			evs = []ReportEvaluation{}
		}
		entries = append(entries, SubjectReportEntry{
			SubjectAggregate: aggregates[id],
			Evaluations:      evs,
		})
	}

	report := &StudentReport{
		StudentID:         student.StudentID,
		StudentFullName:   student.StudentFullName,
		StudentCode:       student.StudentCode,
		GradeID:           grade.GradeID,
		GradeName:         grade.GradeName,
		TargetPeriod:      periodDto.FromModel(resolution.Target),
		ApplicablePeriods: periodDto.FromModels(applicable),
		IsYearFinal:       resolution.IsYearFinal,
		Subjects:          entries,
		EvaluationCount:   CountAggregatedEvaluations(aggregates),
	}
	return report, nil
}

func (s *ReportService) loadAchievementLinks(
	ctx context.Context,
	evaluations []evaluationModel.EvaluationModel,
) (map[uuid.UUID][]evaluationDto.EvaluationAchievementResponse, error) {
	out := make(map[uuid.UUID][]evaluationDto.EvaluationAchievementResponse)
	if len(evaluations) == 0 {
		return out, nil
	}

	evalIDs := make([]uuid.UUID, 0, len(evaluations))
	for i := range evaluations {
		evalIDs = append(evalIDs, evaluations[i].EvaluationID)
	}

	var links []evaluationModel.EvaluationAchievementModel
	if err := s.DB.WithContext(ctx).
		Preload("Achievement").
		Where("evaluation_achievement_evaluation_id IN ?", evalIDs).
		Order("evaluation_achievement_created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	for i := range links {
		link := &links[i]
		out[link.EvaluationAchievementEvaluationID] = append(
			out[link.EvaluationAchievementEvaluationID],
			evaluationDto.FromEvaluationAchievementModel(*link),
		)
	}
	return out, nil
}
