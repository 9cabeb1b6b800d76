package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/coursegen-service/internal/events"
	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
)

func newQuestionBankFixture() (*MockCourseRepository, *MockArtifactRepository, *MockGenerationClient, *MockPDFRenderer, *events.MockEventPublisher, QuestionBankService) {
	courses := new(MockCourseRepository)
	artifacts := new(MockArtifactRepository)
	client := new(MockGenerationClient)
	renderer := new(MockPDFRenderer)
	publisher := events.NewMockEventPublisher(utils.ToSlogLogger(utils.NewDevelopmentLogger()))

	svc := NewQuestionBankService(
		courses, artifacts, client, renderer, publisher,
		validator.New(), utils.NewDevelopmentLogger(),
	)
	return courses, artifacts, client, renderer, publisher, svc
}

func qbCourse() *models.Course {
	return &models.Course{ID: 7, FullName: "Data Structures", ShortName: "CS201", Visible: true}
}

func validBankRequest() *GenerateQuestionBankRequest {
	return &GenerateQuestionBankRequest{
		CourseID:     7,
		FileIDs:      []uint{11},
		QuestionType: models.QuestionTypeIA,
		Counts:       models.QuestionCounts{IA2Marks: 2, IA5Marks: 1},
		Mode:         models.ModeInitial,
	}
}

func TestQuestionBankGenerate_HappyPath(t *testing.T) {
	courses, artifacts, client, renderer, publisher, svc := newQuestionBankFixture()
	ctx := context.Background()

	courses.On("GetCourse", ctx, uint(7)).Return(qbCourse(), nil)
	courses.On("GetFileByID", ctx, uint(11)).Return(&models.StoredFile{
		ID: 11, CourseID: 7, SectionID: 3, Name: "trees.pdf", Path: "trees.pdf",
	}, nil)
	courses.On("GetSection", ctx, uint(3)).Return(&models.CourseSection{ID: 3, CourseID: 7, Name: "Trees"}, nil)

	reply := "Sure! Here you go:\n\nCS201 - IA QUESTION BANK\n\n" +
		"Q1 (2 marks): Define a binary tree.\nQ2 (2 marks): What is tree height?\n\nQ3 (5 marks): Derive the AVL height bound."
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(reply, nil)

	renderer.On("Render", mock.Anything, "Question Bank - CS201").Return([]byte("%PDF-fake"), nil)
	artifacts.On("Create", ctx, mock.AnythingOfType("*models.Artifact")).Return(nil)

	resp, err := svc.Generate(ctx, validBankRequest(), "teacher-1")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ArtifactID)
	assert.True(t, strings.HasPrefix(resp.Text, "CS201 - IA QUESTION BANK"))
	assert.NotContains(t, resp.Text, "Sure!")
	assert.Contains(t, resp.Text, "height?\n\nQ3 (5 marks)")
	assert.Regexp(t, `^QuestionBank_CS201_\d{8}_\d{6}\.pdf$`, resp.FileName)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventQuestionBankGenerated, publisher.Events[0].Type)

	artifacts.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestQuestionBankGenerate_RejectsZeroCounts(t *testing.T) {
	_, _, _, _, _, svc := newQuestionBankFixture()

	req := validBankRequest()
	req.Counts = models.QuestionCounts{}

	_, err := svc.Generate(context.Background(), req, "teacher-1")

	assert.ErrorIs(t, err, ErrNoQuestionCounts)
}

func TestQuestionBankGenerate_CountsOfOtherFamilyIgnored(t *testing.T) {
	_, _, _, _, _, svc := newQuestionBankFixture()

	req := validBankRequest()
	// ESE counts only, but request asks for IA.
	req.Counts = models.QuestionCounts{ESE5Marks: 4, ESE10Marks: 2}

	_, err := svc.Generate(context.Background(), req, "teacher-1")

	assert.ErrorIs(t, err, ErrNoQuestionCounts)
}

func TestQuestionBankGenerate_EditWithoutPreviousRejected(t *testing.T) {
	courses, _, _, _, _, svc := newQuestionBankFixture()
	ctx := context.Background()

	courses.On("GetCourse", ctx, uint(7)).Return(qbCourse(), nil)

	req := validBankRequest()
	req.Mode = models.ModeEdit

	_, err := svc.Generate(ctx, req, "teacher-1")

	assert.ErrorIs(t, err, ErrPreviousRequired)
}

func TestQuestionBankGenerate_EditWithOtherFamilyPreviousRejected(t *testing.T) {
	courses, artifacts, _, _, _, svc := newQuestionBankFixture()
	ctx := context.Background()

	courses.On("GetCourse", ctx, uint(7)).Return(qbCourse(), nil)
	prevID := "6a1e0a52-0c9f-4a3e-9c0f-2f62cb6a1111"
	artifacts.On("GetByID", ctx, prevID).Return(&models.Artifact{
		ID: prevID, CourseID: 7, QuestionType: models.QuestionTypeESE, ResultText: "old text",
	}, nil)

	req := validBankRequest()
	req.Mode = models.ModeEdit
	req.PreviousArtifactID = prevID

	_, err := svc.Generate(ctx, req, "teacher-1")

	assert.ErrorIs(t, err, ErrPreviousRequired)
}

func TestQuestionBankGenerate_BackendFailureSurfaces(t *testing.T) {
	courses, _, client, _, _, svc := newQuestionBankFixture()
	ctx := context.Background()

	courses.On("GetCourse", ctx, uint(7)).Return(qbCourse(), nil)
	courses.On("GetFileByID", ctx, uint(11)).Return(&models.StoredFile{
		ID: 11, CourseID: 7, SectionID: 3, Name: "trees.pdf",
	}, nil)
	courses.On("GetSection", ctx, uint(3)).Return(&models.CourseSection{ID: 3, Name: "Trees"}, nil)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	_, err := svc.Generate(ctx, validBankRequest(), "teacher-1")

	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestQuestionBankGenerate_FileFromOtherCourseRejected(t *testing.T) {
	courses, _, _, _, _, svc := newQuestionBankFixture()
	ctx := context.Background()

	courses.On("GetCourse", ctx, uint(7)).Return(qbCourse(), nil)
	courses.On("GetFileByID", ctx, uint(11)).Return(&models.StoredFile{
		ID: 11, CourseID: 99, SectionID: 3, Name: "trees.pdf",
	}, nil)

	_, err := svc.Generate(ctx, validBankRequest(), "teacher-1")

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestQuestionBankPublish_CreatesSectionPerType(t *testing.T) {
	courses, artifacts, _, _, publisher, svc := newQuestionBankFixture()
	ctx := context.Background()

	artifactID := "9f0d54aa-dd7c-49f6-a7b4-04b8f18e2222"
	artifacts.On("GetByID", ctx, artifactID).Return(&models.Artifact{
		ID: artifactID, CourseID: 7, QuestionType: models.QuestionTypeESE,
		FileName: "QuestionBank_CS201_20260830_120000.pdf", Content: []byte("%PDF-fake"),
	}, nil)
	courses.On("EnsureSection", ctx, uint(7), "ESE Question Bank").
		Return(&models.CourseSection{ID: 42, CourseID: 7, Name: "ESE Question Bank"}, nil)
	courses.On("CreateStoredFile", ctx, mock.MatchedBy(func(f *models.StoredFile) bool {
		return f.SectionID == 42 && f.Name == "QuestionBank_CS201_20260830_120000.pdf"
	})).Return(nil)

	resp, err := svc.Publish(ctx, artifactID, "teacher-1")

	require.NoError(t, err)
	assert.Equal(t, uint(42), resp.SectionID)
	assert.Equal(t, "ESE Question Bank", resp.SectionName)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventQuestionBankPublished, publisher.Events[0].Type)
}

func TestQuestionBankDownload_NotFound(t *testing.T) {
	_, artifacts, _, _, _, svc := newQuestionBankFixture()
	ctx := context.Background()

	artifacts.On("GetByID", ctx, "missing").Return(nil, errors.New("artifact not found with ID missing"))

	_, err := svc.Download(ctx, "missing")

	assert.ErrorIs(t, err, ErrArtifactNotFound)
}
