package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the content lifecycle events this service emits.
type EventType string

const (
	// Question bank events
	EventQuestionBankGenerated EventType = "questionbank.generated"
	EventQuestionBankPublished EventType = "questionbank.published"

	// Quiz events
	EventQuizCommitted EventType = "quiz.committed"
)

// ContentEvent is the envelope for all course-content events.
type ContentEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// Event payloads

type QuestionBankGeneratedEvent struct {
	ArtifactID   string `json:"artifact_id"`
	CourseID     uint   `json:"course_id"`
	QuestionType string `json:"question_type"`
	Mode         string `json:"mode"`
	FileName     string `json:"filename"`
	ActorID      string `json:"actor_id,omitempty"`
}

type QuestionBankPublishedEvent struct {
	ArtifactID  string `json:"artifact_id"`
	CourseID    uint   `json:"course_id"`
	SectionID   uint   `json:"section_id"`
	SectionName string `json:"section_name"`
	ActorID     string `json:"actor_id,omitempty"`
}

type QuizCommittedEvent struct {
	QuizID       uint    `json:"quiz_id"`
	CourseID     uint    `json:"course_id"`
	SectionID    uint    `json:"section_id"`
	QuizName     string  `json:"quiz_name"`
	CreatedCount int     `json:"created_count"`
	SkippedCount int     `json:"skipped_count"`
	GradeTotal   float64 `json:"grade_total"`
	ActorID      string  `json:"actor_id,omitempty"`
}

// NewContentEvent wraps a payload in the shared envelope.
func NewContentEvent(eventType EventType, data interface{}) *ContentEvent {
	return &ContentEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "coursegen-service",
		Version:   "1.0",
		Data:      data,
	}
}
