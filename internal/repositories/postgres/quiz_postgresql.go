package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

func (q *QuizPostgreSQL) EnsureQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error) {
	var existing models.Quiz
	err := q.db.WithContext(ctx).
		Where("course_id = ? AND section_id = ? AND name = ?",
			quiz.CourseID, quiz.SectionID, quiz.Name).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}

	// A concurrent commit may create the same identity between the lookup
	// and the insert; the unique index resolves the race and DoNothing lets
	// the re-read win.
	if err := q.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(quiz).Error; err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	if quiz.ID != 0 {
		return quiz, nil
	}

	if err := q.db.WithContext(ctx).
		Where("course_id = ? AND section_id = ? AND name = ?",
			quiz.CourseID, quiz.SectionID, quiz.Name).
		First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to re-read quiz after conflict: %w", err)
	}
	return &existing, nil
}

func (q *QuizPostgreSQL) CreateQuestion(ctx context.Context, question *models.QuizQuestion) error {
	if err := q.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create quiz question: %w", err)
	}
	return nil
}

func (q *QuizPostgreSQL) SumWeights(ctx context.Context, quizID uint) (float64, error) {
	var total float64
	if err := q.db.WithContext(ctx).
		Model(&models.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(SUM(weight), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum question weights: %w", err)
	}
	return total, nil
}

func (q *QuizPostgreSQL) UpdateGrade(ctx context.Context, quizID uint, grade float64) error {
	if err := q.db.WithContext(ctx).
		Model(&models.Quiz{}).
		Where("id = ?", quizID).
		Update("grade", grade).Error; err != nil {
		return fmt.Errorf("failed to update quiz grade: %w", err)
	}
	return nil
}

func (q *QuizPostgreSQL) GetQuizWithQuestions(ctx context.Context, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := q.db.WithContext(ctx).
		Preload("Questions").
		First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz not found with ID %d", quizID)
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &quiz, nil
}
