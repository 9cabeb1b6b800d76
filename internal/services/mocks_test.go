package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campuskit/coursegen-service/internal/models"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) ListVisibleCourses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) ListSectionsWithFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CourseSection), args.Error(1)
}

func (m *MockCourseRepository) GetSection(ctx context.Context, id uint) (*models.CourseSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CourseSection), args.Error(1)
}

func (m *MockCourseRepository) GetFileByID(ctx context.Context, id uint) (*models.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredFile), args.Error(1)
}

func (m *MockCourseRepository) EnsureSection(ctx context.Context, courseID uint, name string) (*models.CourseSection, error) {
	args := m.Called(ctx, courseID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CourseSection), args.Error(1)
}

func (m *MockCourseRepository) CreateStoredFile(ctx context.Context, file *models.StoredFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) Create(ctx context.Context, artifact *models.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepository) GetByID(ctx context.Context, id string) (*models.Artifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

// MockQuizRepository is a mock implementation of QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) EnsureQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error) {
	args := m.Called(ctx, quiz)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) CreateQuestion(ctx context.Context, question *models.QuizQuestion) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuizRepository) SumWeights(ctx context.Context, quizID uint) (float64, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockQuizRepository) UpdateGrade(ctx context.Context, quizID uint, grade float64) error {
	args := m.Called(ctx, quizID, grade)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizWithQuestions(ctx context.Context, quizID uint) (*models.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

// MockGenerationClient is a mock implementation of generation.Client
type MockGenerationClient struct {
	mock.Mock
}

func (m *MockGenerationClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// MockPDFRenderer is a mock implementation of PDFRenderer
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(text, docTitle string) ([]byte, error) {
	args := m.Called(text, docTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTextExtractor is a mock implementation of TextExtractor
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(file *models.StoredFile) string {
	args := m.Called(file)
	return args.String(0)
}
