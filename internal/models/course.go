package models

import (
	"path"
	"strings"
	"time"
)

// Extensions the pipeline knows how to read. Everything else is invisible to
// the file picker.
var AllowedExtensions = []string{"pdf", "ppt", "pptx", "doc", "docx"}

type Course struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullname" gorm:"not null;size:254" validate:"required,min=1,max=254"`
	ShortName string    `json:"shortname" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	Visible   bool      `json:"visible" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sections []CourseSection `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}

type CourseSection struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"course_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null;size:254"`
	Position int    `json:"position" gorm:"not null;default:0"`

	Files []StoredFile `json:"files,omitempty" gorm:"foreignKey:SectionID"`
}

// StoredFile is one binary document in the course content store. Rows are
// enumerated per request and never mutated by the generation pipeline.
type StoredFile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	SectionID   uint      `json:"section_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null;size:254"`
	Path        string    `json:"path" gorm:"size:1024"`
	ContentHash string    `json:"content_hash" gorm:"size:64;index"`
	Content     []byte    `json:"-" gorm:"type:bytea"`
	CreatedAt   time.Time `json:"created_at"`
}

// Extension returns the lowercased filename extension without the dot.
func (f *StoredFile) Extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(f.Name), "."))
}

// BaseName returns the filename with its extension stripped, used as a topic
// hint.
func (f *StoredFile) BaseName() string {
	return strings.TrimSuffix(f.Name, path.Ext(f.Name))
}

// HasAllowedExtension reports whether the file is one of the document types
// the extractor understands.
func (f *StoredFile) HasAllowedExtension() bool {
	ext := f.Extension()
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (Course) TableName() string        { return "courses" }
func (CourseSection) TableName() string { return "course_sections" }
func (StoredFile) TableName() string    { return "stored_files" }
