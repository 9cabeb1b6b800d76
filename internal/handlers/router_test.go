package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type stubCourseService struct {
	courses  []models.Course
	sections []models.CourseSection
	err      error
}

func (s *stubCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) ListCourseFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error) {
	return s.sections, s.err
}

type stubBankService struct {
	artifact *models.Artifact
	err      error
}

func (s *stubBankService) Generate(ctx context.Context, req *services.GenerateQuestionBankRequest, actorID string) (*services.GenerateQuestionBankResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.GenerateQuestionBankResponse{ArtifactID: "a-1", FileName: "qb.pdf", Text: "text"}, nil
}

func (s *stubBankService) Download(ctx context.Context, artifactID string) (*models.Artifact, error) {
	return s.artifact, s.err
}

func (s *stubBankService) Publish(ctx context.Context, artifactID string, actorID string) (*services.PublishQuestionBankResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.PublishQuestionBankResponse{SectionID: 1, SectionName: "IA Question Bank"}, nil
}

type stubQuizService struct {
	err error
}

func (s *stubQuizService) Propose(ctx context.Context, req *services.ProposeQuizRequest) (*services.ProposeQuizResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.ProposeQuizResponse{}, nil
}

func (s *stubQuizService) Commit(ctx context.Context, req *services.CommitQuizRequest, actorID string) (*services.CommitQuizResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.CommitQuizResponse{QuizID: 1, CreatedCount: len(req.Questions)}, nil
}

func (s *stubQuizService) ExportXLSX(ctx context.Context, quizID uint) ([]byte, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return []byte("workbook"), "quiz.xlsx", nil
}

type stubChatService struct {
	reply string
	err   error
}

func (s *stubChatService) Chat(ctx context.Context, req *services.ChatRequest) (*services.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.ChatResponse{Reply: s.reply}, nil
}

func newTestRouter(course services.CourseService, bank services.QuestionBankService, quiz services.QuizService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandlerManager(course, bank, quiz, &stubChatService{reply: "hello"}, utils.NewDevelopmentLogger()).SetupRoutes(router)
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubBankService{}, &stubQuizService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListCourseFiles_InvalidIDRejected(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubBankService{}, &stubQuizService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses/abc/files", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCourseFiles_NotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(&stubCourseService{err: services.ErrCourseNotFound}, &stubBankService{}, &stubQuizService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses/7/files", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestionBankGenerate_MalformedJSONRejected(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubBankService{}, &stubQuizService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/question-banks/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuestionBankDownload_StreamsPDF(t *testing.T) {
	bank := &stubBankService{artifact: &models.Artifact{
		FileName: "QuestionBank_CS201_20260830_120000.pdf",
		Content:  []byte("%PDF-fake"),
	}}
	router := newTestRouter(&stubCourseService{}, bank, &stubQuizService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/question-banks/a-1/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "QuestionBank_CS201_20260830_120000.pdf")
	assert.Equal(t, "%PDF-fake", w.Body.String())
}

func TestChat_ReturnsReply(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubBankService{}, &stubQuizService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"prompt":"How do I weight rubric criteria?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reply":"hello"`)
}

func TestQuizGenerate_UpstreamFailureMapsTo502(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubBankService{}, &stubQuizService{err: services.ErrGenerationFailed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/generate", strings.NewReader(`{"courseid":7,"sectionid":3,"fileids":[11],"settings":{"quizname":"Q","numquestions":5}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
