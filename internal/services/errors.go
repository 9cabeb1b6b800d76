package services

import (
	"errors"

	apperrors "github.com/campuskit/coursegen-service/internal/errors"
)

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")

	// Course / file specific errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoFilesSelected = errors.New("no files selected")

	// Generation specific errors
	ErrNoQuestionCounts    = errors.New("at least one question count must be greater than zero")
	ErrPreviousRequired    = errors.New("edit mode requires a previous result of the same question type")
	ErrGenerationFailed    = errors.New("generation backend request failed")
	ErrMalformedGeneration = errors.New("generation backend returned malformed output")

	// Artifact / quiz specific errors
	ErrArtifactNotFound    = errors.New("question bank not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrNoQuestionsProvided = errors.New("no questions provided to commit")
	ErrAllQuestionsSkipped = errors.New("all submitted questions failed validation")
)

// Shared validation error types from the errors package.
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrArtifactNotFound) ||
		errors.Is(err, ErrQuizNotFound)
}

// IsValidation reports whether err represents rejected input.
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNoFilesSelected) ||
		errors.Is(err, ErrNoQuestionCounts) ||
		errors.Is(err, ErrPreviousRequired) ||
		errors.Is(err, ErrNoQuestionsProvided) ||
		errors.Is(err, ErrAllQuestionsSkipped) {
		return true
	}
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// IsUpstream reports whether err comes from the generation backend rather
// than the caller or this service.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrGenerationFailed) || errors.Is(err, ErrMalformedGeneration)
}
