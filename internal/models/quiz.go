package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz is the container a committed question set is attached to. The
// (course, section, name) triple is unique so a retried commit after a partial
// failure reuses the same container instead of creating a duplicate.
type Quiz struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	CourseID         uint      `json:"course_id" gorm:"not null;index;uniqueIndex:idx_quiz_identity"`
	SectionID        uint      `json:"section_id" gorm:"not null;uniqueIndex:idx_quiz_identity"`
	Name             string    `json:"name" gorm:"not null;size:254;uniqueIndex:idx_quiz_identity"`
	TimeLimitSeconds int       `json:"time_limit_seconds" gorm:"default:0"`
	ShuffleAnswers   bool      `json:"shuffle_answers" gorm:"default:true"`
	Grade            float64   `json:"grade" gorm:"default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

// QuizQuestion is one persisted single-answer multiple-choice record. Options
// are stored as a JSON array of exactly four strings; the correct option
// carries grade fraction 1.0 and the rest 0.0 when the host grades attempts.
type QuizQuestion struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"type:text;not null"`
	Options      datatypes.JSON `json:"options" gorm:"not null"`
	CorrectIndex int            `json:"correct_index" gorm:"not null"`
	Feedback     string         `json:"feedback" gorm:"type:text"`
	Weight       float64        `json:"weight" gorm:"not null;default:1"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (Quiz) TableName() string         { return "quizzes" }
func (QuizQuestion) TableName() string { return "quiz_questions" }
