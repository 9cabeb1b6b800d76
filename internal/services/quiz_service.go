package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/campuskit/coursegen-service/internal/events"
	"github.com/campuskit/coursegen-service/internal/generation"
	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
)

// TextExtractor pulls readable text out of a stored document. Extraction is
// best effort and never fails the request.
type TextExtractor interface {
	Extract(file *models.StoredFile) string
}

// ProposeQuizRequest is the payload of a quiz generation call.
type ProposeQuizRequest struct {
	CourseID  uint                `json:"courseid" validate:"required"`
	SectionID uint                `json:"sectionid" validate:"required"`
	FileIDs   []uint              `json:"fileids" validate:"required,min=1"`
	Settings  models.QuizSettings `json:"settings"`
}

// ProposeQuizResponse returns generated items for teacher review. Nothing is
// persisted at this stage.
type ProposeQuizResponse struct {
	Questions []models.MCQItem `json:"questions"`
}

// CommitQuizRequest persists reviewed items into a quiz container.
type CommitQuizRequest struct {
	CourseID         uint             `json:"courseid" validate:"required"`
	SectionID        uint             `json:"sectionid" validate:"required"`
	QuizName         string           `json:"quizname" validate:"required,min=1,max=254"`
	MarksPerQuestion float64          `json:"marksperquestion" validate:"min=0"`
	TimeLimitMinutes int              `json:"timelimitminutes" validate:"min=0"`
	Questions        []models.MCQItem `json:"questions" validate:"required,min=1"`
}

// CommitQuizResponse reports what was stored and what was skipped. Skips are
// surfaced per item so the caller can show the teacher exactly which entries
// were dropped and why.
type CommitQuizResponse struct {
	QuizID       uint                    `json:"quiz_id"`
	CreatedCount int                     `json:"created_count"`
	Skipped      []validator.SkippedItem `json:"skipped,omitempty"`
	Grade        float64                 `json:"grade"`
}

// ExportQuizRequest renders a committed quiz as a spreadsheet.
type ExportQuizRequest struct {
	QuizID uint `json:"quizid" validate:"required"`
}

// QuizService runs the structured MCQ quiz pipeline.
type QuizService interface {
	Propose(ctx context.Context, req *ProposeQuizRequest) (*ProposeQuizResponse, error)
	Commit(ctx context.Context, req *CommitQuizRequest, actorID string) (*CommitQuizResponse, error)

	// ExportXLSX renders a committed quiz with all its questions as an
	// XLSX workbook for offline review.
	ExportXLSX(ctx context.Context, quizID uint) ([]byte, string, error)
}

type quizService struct {
	courses   repositories.CourseRepository
	quizzes   repositories.QuizRepository
	extractor TextExtractor
	client    generation.Client
	publisher events.EventPublisher
	validator *validator.Validator
	logger    utils.Logger
}

func NewQuizService(
	courses repositories.CourseRepository,
	quizzes repositories.QuizRepository,
	extractor TextExtractor,
	client generation.Client,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger utils.Logger,
) QuizService {
	return &quizService{
		courses:   courses,
		quizzes:   quizzes,
		extractor: extractor,
		client:    client,
		publisher: publisher,
		validator: v,
		logger:    logger,
	}
}

func (s *quizService) Propose(ctx context.Context, req *ProposeQuizRequest) (*ProposeQuizResponse, error) {
	s.logger.Info("proposing quiz questions",
		"course_id", req.CourseID, "quiz_name", req.Settings.QuizName, "num_questions", req.Settings.NumQuestions)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateStruct(req.Settings); err != nil {
		return nil, err
	}

	course, err := s.courses.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	if _, err := s.courses.GetSection(ctx, req.SectionID); err != nil {
		return nil, ErrSectionNotFound
	}

	docs, err := s.loadDocs(ctx, req.CourseID, req.FileIDs)
	if err != nil {
		return nil, err
	}

	system, user := generation.CompileQuizPrompts(generation.QuizPromptInput{
		Course:   course,
		Settings: req.Settings,
		Context:  generation.BuildContext(docs),
	})

	reply, err := s.client.Complete(ctx, system, user)
	if err != nil {
		s.logger.Error("quiz generation failed", "course_id", req.CourseID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	items, err := generation.ParseQuizReply(reply)
	if err != nil {
		var parseErr *generation.QuizParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("quiz reply was not valid JSON", "course_id", req.CourseID, "sample", parseErr.Sample)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeneration, err)
	}

	return &ProposeQuizResponse{Questions: items}, nil
}

func (s *quizService) Commit(ctx context.Context, req *CommitQuizRequest, actorID string) (*CommitQuizResponse, error) {
	s.logger.Info("committing quiz",
		"course_id", req.CourseID, "section_id", req.SectionID, "quiz_name", req.QuizName)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if len(req.Questions) == 0 {
		return nil, ErrNoQuestionsProvided
	}

	if _, err := s.courses.GetCourse(ctx, req.CourseID); err != nil {
		return nil, ErrCourseNotFound
	}
	section, err := s.courses.GetSection(ctx, req.SectionID)
	if err != nil {
		return nil, ErrSectionNotFound
	}
	if section.CourseID != req.CourseID {
		return nil, fmt.Errorf("%w: section %d does not belong to course %d", ErrBadRequest, req.SectionID, req.CourseID)
	}

	valid, skipped := s.validator.MCQ().FilterItems(req.Questions)
	if len(valid) == 0 {
		return nil, ErrAllQuestionsSkipped
	}

	quiz, err := s.quizzes.EnsureQuiz(ctx, &models.Quiz{
		CourseID:         req.CourseID,
		SectionID:        req.SectionID,
		Name:             req.QuizName,
		TimeLimitSeconds: req.TimeLimitMinutes * 60,
		ShuffleAnswers:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure quiz container: %w", err)
	}

	created := 0
	for _, item := range valid {
		options, err := json.Marshal(item.Options)
		if err != nil {
			return nil, fmt.Errorf("failed to encode options: %w", err)
		}

		question := &models.QuizQuestion{
			QuizID:       quiz.ID,
			Text:         item.QuestionText,
			Options:      options,
			CorrectIndex: item.CorrectIndex,
			Feedback:     item.Feedback,
			Weight:       req.MarksPerQuestion,
		}
		if err := s.quizzes.CreateQuestion(ctx, question); err != nil {
			return nil, fmt.Errorf("failed to store question %d of %d: %w", created+1, len(valid), err)
		}
		created++
	}

	// The grade is recomputed from stored rows so a retried commit that
	// appends to an existing quiz stays consistent.
	grade, err := s.quizzes.SumWeights(ctx, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to total question weights: %w", err)
	}
	if err := s.quizzes.UpdateGrade(ctx, quiz.ID, grade); err != nil {
		return nil, fmt.Errorf("failed to update quiz grade: %w", err)
	}

	s.emit(ctx, events.EventQuizCommitted, events.QuizCommittedEvent{
		QuizID:       quiz.ID,
		CourseID:     req.CourseID,
		SectionID:    req.SectionID,
		QuizName:     req.QuizName,
		CreatedCount: created,
		SkippedCount: len(skipped),
		GradeTotal:   grade,
		ActorID:      actorID,
	})

	return &CommitQuizResponse{
		QuizID:       quiz.ID,
		CreatedCount: created,
		Skipped:      skipped,
		Grade:        grade,
	}, nil
}

var quizExportHeader = []interface{}{"#", "Question", "Option A", "Option B", "Option C", "Option D", "Correct", "Feedback", "Marks"}

func (s *quizService) ExportXLSX(ctx context.Context, quizID uint) ([]byte, string, error) {
	quiz, err := s.quizzes.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, "", ErrQuizNotFound
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &quizExportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}

	for i, q := range quiz.Questions {
		var options []string
		if err := json.Unmarshal(q.Options, &options); err != nil {
			return nil, "", fmt.Errorf("failed to decode options for question %d: %w", q.ID, err)
		}
		for len(options) < 4 {
			options = append(options, "")
		}

		correct := ""
		if q.CorrectIndex >= 0 && q.CorrectIndex < 4 {
			correct = string(rune('A' + q.CorrectIndex))
		}

		row := []interface{}{
			i + 1, q.Text, options[0], options[1], options[2], options[3], correct, q.Feedback, q.Weight,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute export cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize export workbook: %w", err)
	}

	name := fmt.Sprintf("%s.xlsx", fileNameTokenRe.ReplaceAllString(quiz.Name, "_"))
	return buf.Bytes(), name, nil
}

// loadDocs fetches the selected files with their section names and extracts
// their text. Files the extractor cannot read contribute their names only.
func (s *quizService) loadDocs(ctx context.Context, courseID uint, fileIDs []uint) ([]generation.SourceDoc, error) {
	var docs []generation.SourceDoc
	for _, id := range fileIDs {
		file, err := s.courses.GetFileByID(ctx, id)
		if err != nil {
			return nil, ErrFileNotFound
		}
		if file.CourseID != courseID {
			return nil, fmt.Errorf("%w: file %d does not belong to course %d", ErrBadRequest, id, courseID)
		}

		sectionName := ""
		if section, err := s.courses.GetSection(ctx, file.SectionID); err == nil {
			sectionName = section.Name
		}

		docs = append(docs, generation.SourceDoc{
			File:        file,
			SectionName: sectionName,
			Text:        s.extractor.Extract(file),
		})
	}
	if len(docs) == 0 {
		return nil, ErrNoFilesSelected
	}
	return docs, nil
}

func (s *quizService) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishContentEvent(ctx, events.NewContentEvent(eventType, payload)); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
