package validator

import (
	"strings"

	"github.com/campuskit/coursegen-service/internal/models"
)

// SkippedItem records one MCQ that failed validation during a commit, by its
// position in the submitted list.
type SkippedItem struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// MCQValidator checks generated MCQ items before they are persisted.
type MCQValidator struct{}

func NewMCQValidator() *MCQValidator {
	return &MCQValidator{}
}

// ValidateItem checks one MCQ item and returns an empty string when it is
// acceptable.
func (v *MCQValidator) ValidateItem(item models.MCQItem) string {
	if strings.TrimSpace(item.QuestionText) == "" {
		return "missing question text"
	}
	if len(item.Options) != 4 {
		return "expected exactly 4 options"
	}
	for _, opt := range item.Options {
		if strings.TrimSpace(opt) == "" {
			return "empty option text"
		}
	}
	if item.CorrectIndex < 0 || item.CorrectIndex >= len(item.Options) {
		return "correct_index out of range"
	}
	return ""
}

// FilterItems splits a submitted list into persistable items and a report of
// the skipped ones. Order is preserved in both slices.
func (v *MCQValidator) FilterItems(items []models.MCQItem) ([]models.MCQItem, []SkippedItem) {
	var valid []models.MCQItem
	var skipped []SkippedItem

	for i, item := range items {
		if reason := v.ValidateItem(item); reason != "" {
			skipped = append(skipped, SkippedItem{Index: i, Reason: reason})
			continue
		}
		valid = append(valid, item)
	}

	return valid, skipped
}
