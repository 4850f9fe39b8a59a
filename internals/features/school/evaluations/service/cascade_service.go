package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "raporku_backend/internals/features/school/evaluations/model"
	periodModel "raporku_backend/internals/features/school/periods/model"
	studentModel "raporku_backend/internals/features/school/students/model"
	subjectModel "raporku_backend/internals/features/school/subjects/model"
)

// CascadeService: satu tempat untuk aturan ownership delete.
// Student, subject, dan period sama-sama memiliki evaluations; evaluations
// memiliki evaluation_achievements. Urutan hapus selalu anak dulu
// (links → evaluations → parent) dan seluruhnya dalam SATU transaksi,
// supaya tidak ada link yatim kalau delete gagal di tengah.
type CascadeService struct {
	DB *gorm.DB
}

func NewCascadeService(db *gorm.DB) *CascadeService {
	return &CascadeService{DB: db}
}

// DeleteStudent menghapus siswa beserta semua nilai dan link kompetensinya.
func (s *CascadeService) DeleteStudent(ctx context.Context, studentID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.Select("student_id").
			First(&student, "student_id = ?", studentID).Error; err != nil {
			return err
		}

		if err := deleteEvaluationsWhere(tx, "evaluation_student_id = ?", studentID); err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
}

// DeleteSubject menghapus mapel beserta nilai dan link kompetensinya.
func (s *CascadeService) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subject subjectModel.SubjectModel
		if err := tx.Select("subject_id").
			First(&subject, "subject_id = ?", subjectID).Error; err != nil {
			return err
		}

		if err := deleteEvaluationsWhere(tx, "evaluation_subject_id = ?", subjectID); err != nil {
			return err
		}
		return tx.Delete(&subject).Error
	})
}

// DeletePeriod menghapus period beserta nilai dan link kompetensinya.
func (s *CascadeService) DeletePeriod(ctx context.Context, periodID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var period periodModel.PeriodModel
		if err := tx.Select("period_id").
			First(&period, "period_id = ?", periodID).Error; err != nil {
			return err
		}

		if err := deleteEvaluationsWhere(tx, "evaluation_period_id = ?", periodID); err != nil {
			return err
		}
		return tx.Delete(&period).Error
	})
}

// DeleteEvaluation menghapus satu nilai beserta link kompetensinya.
func (s *CascadeService) DeleteEvaluation(ctx context.Context, evaluationID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ev model.EvaluationModel
		if err := tx.Select("evaluation_id").
			First(&ev, "evaluation_id = ?", evaluationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEvaluationNotFound
			}
			return err
		}

		if err := tx.Where("evaluation_achievement_evaluation_id = ?", evaluationID).
			Delete(&model.EvaluationAchievementModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
}

// deleteEvaluationsWhere menghapus evaluations yang cocok beserta link-nya,
// anak dulu baru induk.
func deleteEvaluationsWhere(tx *gorm.DB, cond string, arg any) error {
	var evalIDs []uuid.UUID
	if err := tx.Model(&model.EvaluationModel{}).
		Where(cond, arg).
		Pluck("evaluation_id", &evalIDs).Error; err != nil {
		return err
	}
	if len(evalIDs) == 0 {
		return nil
	}

	if err := tx.Where("evaluation_achievement_evaluation_id IN ?", evalIDs).
		Delete(&model.EvaluationAchievementModel{}).Error; err != nil {
		return err
	}
	return tx.Where(cond, arg).Delete(&model.EvaluationModel{}).Error
}
