package repositories

import (
	"context"

	"github.com/campuskit/coursegen-service/internal/models"
)

// CourseRepository reads and amends the course content store.
type CourseRepository interface {
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	ListVisibleCourses(ctx context.Context) ([]models.Course, error)

	// ListSectionsWithFiles returns the course sections in display order,
	// each carrying only files with a supported document extension.
	ListSectionsWithFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error)

	GetSection(ctx context.Context, id uint) (*models.CourseSection, error)
	GetFileByID(ctx context.Context, id uint) (*models.StoredFile, error)

	// EnsureSection finds a section by name within a course, creating it at
	// the end of the section list when absent.
	EnsureSection(ctx context.Context, courseID uint, name string) (*models.CourseSection, error)

	CreateStoredFile(ctx context.Context, file *models.StoredFile) error
}

// ArtifactRepository persists generated question bank documents.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *models.Artifact) error
	GetByID(ctx context.Context, id string) (*models.Artifact, error)
}

// QuizRepository persists quiz containers and their committed questions.
type QuizRepository interface {
	// EnsureQuiz finds the quiz identified by (courseID, sectionID, name),
	// creating it with the given settings when absent. Settings of an
	// existing quiz are left untouched.
	EnsureQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error)

	CreateQuestion(ctx context.Context, question *models.QuizQuestion) error

	// SumWeights totals the weights of all questions attached to a quiz.
	SumWeights(ctx context.Context, quizID uint) (float64, error)

	UpdateGrade(ctx context.Context, quizID uint, grade float64) error

	GetQuizWithQuestions(ctx context.Context, quizID uint) (*models.Quiz, error)
}
