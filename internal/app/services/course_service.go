package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// CourseService handles course reference data.
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse creates a new course.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := sanitize.Strip(req.CourseCode)
	name := sanitize.Strip(req.CourseName)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError("course code and name are required", nil)
	}
	return s.courseRepo.CreateCourse(ctx, code, name)
}

// GetCourse retrieves a single course.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// ListCourses retrieves a page of courses ordered by code.
func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	return s.courseRepo.GetAllCourses(ctx, limit, offset)
}

// UpdateCourse applies the provided fields to a course.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	code := sanitize.StripPtr(req.CourseCode)
	name := sanitize.StripPtr(req.CourseName)
	if code != nil && *code == "" {
		return nil, apperrors.NewValidationError("course code cannot be empty", nil)
	}
	if name != nil && *name == "" {
		return nil, apperrors.NewValidationError("course name cannot be empty", nil)
	}
	return s.courseRepo.UpdateCourse(ctx, id, code, name)
}

// DeleteCourse removes a course and its subjects.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.DeleteCourse(ctx, id)
}
