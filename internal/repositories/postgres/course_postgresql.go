package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

func (c *CoursePostgreSQL) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course not found with ID %d", id)
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) ListVisibleCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("full_name ASC").
		Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (c *CoursePostgreSQL) ListSectionsWithFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error) {
	var sections []models.CourseSection
	if err := c.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	for i := range sections {
		var files []models.StoredFile
		// Listing never needs the raw document bytes.
		if err := c.db.WithContext(ctx).
			Omit("content").
			Where("section_id = ?", sections[i].ID).
			Order("name ASC").
			Find(&files).Error; err != nil {
			return nil, fmt.Errorf("failed to list section files: %w", err)
		}

		kept := files[:0]
		for j := range files {
			if files[j].HasAllowedExtension() {
				kept = append(kept, files[j])
			}
		}
		sections[i].Files = kept
	}

	return sections, nil
}

func (c *CoursePostgreSQL) GetSection(ctx context.Context, id uint) (*models.CourseSection, error) {
	var section models.CourseSection
	if err := c.db.WithContext(ctx).First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("section not found with ID %d", id)
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return &section, nil
}

func (c *CoursePostgreSQL) GetFileByID(ctx context.Context, id uint) (*models.StoredFile, error) {
	var file models.StoredFile
	if err := c.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file not found with ID %d", id)
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &file, nil
}

func (c *CoursePostgreSQL) EnsureSection(ctx context.Context, courseID uint, name string) (*models.CourseSection, error) {
	var section models.CourseSection
	err := c.db.WithContext(ctx).
		Where("course_id = ? AND name = ?", courseID, name).
		First(&section).Error
	if err == nil {
		return &section, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up section: %w", err)
	}

	var maxPosition int
	if err := c.db.WithContext(ctx).
		Model(&models.CourseSection{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error; err != nil {
		return nil, fmt.Errorf("failed to determine section position: %w", err)
	}

	section = models.CourseSection{
		CourseID: courseID,
		Name:     name,
		Position: maxPosition + 1,
	}
	if err := c.db.WithContext(ctx).Create(&section).Error; err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return &section, nil
}

func (c *CoursePostgreSQL) CreateStoredFile(ctx context.Context, file *models.StoredFile) error {
	if err := c.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("failed to create stored file: %w", err)
	}
	return nil
}
