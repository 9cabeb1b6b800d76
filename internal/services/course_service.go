package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campuskit/coursegen-service/internal/cache"
	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
	"github.com/campuskit/coursegen-service/internal/utils"
)

const courseFilesCacheTTL = 5 * time.Minute

// CourseService exposes the course browsing surface of the picker UI.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)

	// ListCourseFiles returns the course sections in display order with
	// their selectable files. Results are cached briefly; course content
	// changes rarely compared to picker traffic.
	ListCourseFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error)
}

type courseService struct {
	repo   repositories.CourseRepository
	cache  cache.CacheService
	logger utils.Logger
}

func NewCourseService(repo repositories.CourseRepository, cacheService cache.CacheService, logger utils.Logger) CourseService {
	return &courseService{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListVisibleCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) ListCourseFiles(ctx context.Context, courseID uint) ([]models.CourseSection, error) {
	if _, err := s.repo.GetCourse(ctx, courseID); err != nil {
		return nil, ErrCourseNotFound
	}

	key := fmt.Sprintf("coursefiles:%d", courseID)

	var cached []models.CourseSection
	if s.cache != nil {
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	sections, err := s.repo.ListSectionsWithFiles(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list course files: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, sections, courseFilesCacheTTL); err != nil {
			s.logger.Warn("failed to cache course files", "course_id", courseID, "error", err)
		}
	}

	return sections, nil
}
