package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/coursegen-service/internal/events"
	"github.com/campuskit/coursegen-service/internal/extract"
	"github.com/campuskit/coursegen-service/internal/generation"
	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
)

// PDFRenderer renders normalized bank text into a document.
type PDFRenderer interface {
	Render(text, docTitle string) ([]byte, error)
}

// GenerateQuestionBankRequest is the payload of a bank generation call.
type GenerateQuestionBankRequest struct {
	CourseID     uint                  `json:"courseid" validate:"required"`
	FileIDs      []uint                `json:"fileids" validate:"required,min=1"`
	QuestionType models.QuestionType   `json:"questiontype" validate:"required,question_type"`
	Counts       models.QuestionCounts `json:"counts"`
	Instructions string                `json:"instructions" validate:"max=4000"`
	Mode         models.GenerationMode `json:"mode" validate:"required,generation_mode"`

	// PreviousArtifactID points at the bank being amended. Required in edit
	// mode and must belong to the same question type.
	PreviousArtifactID string `json:"previous_artifact_id" validate:"omitempty,uuid"`
}

// GenerateQuestionBankResponse carries the persisted artifact reference plus
// the bank text for preview.
type GenerateQuestionBankResponse struct {
	ArtifactID string `json:"artifact_id"`
	FileName   string `json:"filename"`
	Text       string `json:"text"`
}

// PublishQuestionBankResponse reports where a bank PDF was placed.
type PublishQuestionBankResponse struct {
	FileID      uint   `json:"file_id"`
	SectionID   uint   `json:"section_id"`
	SectionName string `json:"section_name"`
}

// QuestionBankService runs the free-text question bank pipeline.
type QuestionBankService interface {
	Generate(ctx context.Context, req *GenerateQuestionBankRequest, actorID string) (*GenerateQuestionBankResponse, error)

	// Download returns the rendered PDF of a previously generated bank.
	Download(ctx context.Context, artifactID string) (*models.Artifact, error)

	// Publish copies a bank PDF into the course content store, inside a
	// per-type section that is created on first use.
	Publish(ctx context.Context, artifactID string, actorID string) (*PublishQuestionBankResponse, error)
}

type questionBankService struct {
	courses   repositories.CourseRepository
	artifacts repositories.ArtifactRepository
	client    generation.Client
	renderer  PDFRenderer
	publisher events.EventPublisher
	validator *validator.Validator
	logger    utils.Logger
}

func NewQuestionBankService(
	courses repositories.CourseRepository,
	artifacts repositories.ArtifactRepository,
	client generation.Client,
	renderer PDFRenderer,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger utils.Logger,
) QuestionBankService {
	return &questionBankService{
		courses:   courses,
		artifacts: artifacts,
		client:    client,
		renderer:  renderer,
		publisher: publisher,
		validator: v,
		logger:    logger,
	}
}

var fileNameTokenRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// artifactFileName builds the download name for a generated bank.
func artifactFileName(shortName string, now time.Time) string {
	token := fileNameTokenRe.ReplaceAllString(shortName, "_")
	return fmt.Sprintf("QuestionBank_%s_%s.pdf", token, now.Format("20060102_150405"))
}

func (s *questionBankService) Generate(ctx context.Context, req *GenerateQuestionBankRequest, actorID string) (*GenerateQuestionBankResponse, error) {
	s.logger.Info("generating question bank",
		"course_id", req.CourseID, "question_type", req.QuestionType, "mode", req.Mode)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Counts.TotalFor(req.QuestionType) == 0 {
		return nil, ErrNoQuestionCounts
	}

	course, err := s.courses.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	previousText, err := s.resolvePrevious(ctx, req)
	if err != nil {
		return nil, err
	}

	docs, err := s.loadDocs(ctx, req.CourseID, req.FileIDs)
	if err != nil {
		return nil, err
	}

	system, user := generation.CompileQuestionBankPrompts(generation.QuestionBankPromptInput{
		Course:       course,
		QuestionType: req.QuestionType,
		Counts:       req.Counts,
		Instructions: req.Instructions,
		Mode:         req.Mode,
		Previous:     previousText,
		Context:      generation.BuildContext(docs),
	})

	reply, err := s.client.Complete(ctx, system, user)
	if err != nil {
		s.logger.Error("question bank generation failed", "course_id", req.CourseID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	title := generation.QuestionBankTitle(course.ShortName, req.QuestionType)
	text := generation.NormalizeQuestionBank(extract.SafeUTF8(reply), title)
	if text == "" {
		return nil, fmt.Errorf("%w: empty bank text", ErrMalformedGeneration)
	}

	pdfBytes, err := s.renderer.Render(text, "Question Bank - "+course.ShortName)
	if err != nil {
		return nil, fmt.Errorf("failed to render question bank pdf: %w", err)
	}

	artifact := &models.Artifact{
		ID:           uuid.NewString(),
		CourseID:     course.ID,
		QuestionType: req.QuestionType,
		FileName:     artifactFileName(course.ShortName, time.Now()),
		Content:      pdfBytes,
		ResultText:   text,
		CreatedBy:    actorID,
	}
	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, fmt.Errorf("failed to persist question bank: %w", err)
	}

	s.emit(ctx, events.EventQuestionBankGenerated, events.QuestionBankGeneratedEvent{
		ArtifactID:   artifact.ID,
		CourseID:     course.ID,
		QuestionType: string(req.QuestionType),
		Mode:         string(req.Mode),
		FileName:     artifact.FileName,
		ActorID:      actorID,
	})

	return &GenerateQuestionBankResponse{
		ArtifactID: artifact.ID,
		FileName:   artifact.FileName,
		Text:       text,
	}, nil
}

func (s *questionBankService) Download(ctx context.Context, artifactID string) (*models.Artifact, error) {
	artifact, err := s.artifacts.GetByID(ctx, artifactID)
	if err != nil {
		return nil, ErrArtifactNotFound
	}
	return artifact, nil
}

func (s *questionBankService) Publish(ctx context.Context, artifactID string, actorID string) (*PublishQuestionBankResponse, error) {
	artifact, err := s.artifacts.GetByID(ctx, artifactID)
	if err != nil {
		return nil, ErrArtifactNotFound
	}

	sectionName := "IA Question Bank"
	if artifact.QuestionType == models.QuestionTypeESE {
		sectionName = "ESE Question Bank"
	}

	section, err := s.courses.EnsureSection(ctx, artifact.CourseID, sectionName)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure publish section: %w", err)
	}

	file := &models.StoredFile{
		CourseID:  artifact.CourseID,
		SectionID: section.ID,
		Name:      artifact.FileName,
		Path:      artifact.FileName,
		Content:   artifact.Content,
	}
	if err := s.courses.CreateStoredFile(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to publish question bank: %w", err)
	}

	s.emit(ctx, events.EventQuestionBankPublished, events.QuestionBankPublishedEvent{
		ArtifactID:  artifact.ID,
		CourseID:    artifact.CourseID,
		SectionID:   section.ID,
		SectionName: section.Name,
		ActorID:     actorID,
	})

	return &PublishQuestionBankResponse{
		FileID:      file.ID,
		SectionID:   section.ID,
		SectionName: section.Name,
	}, nil
}

// resolvePrevious loads and checks the amended artifact in edit mode. Initial
// mode ignores PreviousArtifactID entirely.
func (s *questionBankService) resolvePrevious(ctx context.Context, req *GenerateQuestionBankRequest) (string, error) {
	if req.Mode != models.ModeEdit {
		return "", nil
	}
	if req.PreviousArtifactID == "" {
		return "", ErrPreviousRequired
	}

	previous, err := s.artifacts.GetByID(ctx, req.PreviousArtifactID)
	if err != nil {
		return "", ErrPreviousRequired
	}
	if previous.QuestionType != req.QuestionType || previous.CourseID != req.CourseID {
		return "", ErrPreviousRequired
	}
	return previous.ResultText, nil
}

// loadDocs fetches the selected files and pairs them with section names. The
// bank family never extracts file content, so Text stays empty.
func (s *questionBankService) loadDocs(ctx context.Context, courseID uint, fileIDs []uint) ([]generation.SourceDoc, error) {
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
		})
	}
	if len(docs) == 0 {
		return nil, ErrNoFilesSelected
	}
	return docs, nil
}

func (s *questionBankService) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishContentEvent(ctx, events.NewContentEvent(eventType, payload)); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
