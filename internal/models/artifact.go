package models

import (
	"time"
)

// Artifact is a generated Question Bank PDF persisted in the content store.
// Artifacts are immutable: an edit call produces a brand-new artifact rather
// than mutating the old one.
type Artifact struct {
	ID           string       `json:"id" gorm:"primaryKey;size:36"`
	CourseID     uint         `json:"course_id" gorm:"not null;index"`
	QuestionType QuestionType `json:"question_type" gorm:"not null;size:8"`
	FileName     string       `json:"filename" gorm:"not null;size:254"`
	Content      []byte       `json:"-" gorm:"type:bytea;not null"`
	ResultText   string       `json:"result_text" gorm:"type:text"`
	CreatedBy    string       `json:"created_by" gorm:"size:100;index"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (Artifact) TableName() string { return "artifacts" }
