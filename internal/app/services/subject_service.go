package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// SubjectService handles subject reference data.
type SubjectService struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo}
}

// CreateSubject creates a subject under an existing course.
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	name := sanitize.Strip(req.SubjectName)
	if name == "" {
		return nil, apperrors.NewValidationError("subject name is required", nil)
	}
	return s.subjectRepo.CreateSubject(ctx, req.CourseID, name)
}

// GetSubject retrieves a single subject.
func (s *SubjectService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// ListSubjects retrieves a page of subjects, optionally scoped to a course.
func (s *SubjectService) ListSubjects(ctx context.Context, courseID *int64, limit, offset int) ([]*models.Subject, error) {
	return s.subjectRepo.GetAllSubjects(ctx, courseID, limit, offset)
}

// UpdateSubject applies the provided fields to a subject.
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	name := sanitize.StripPtr(req.SubjectName)
	if name != nil && *name == "" {
		return nil, apperrors.NewValidationError("subject name cannot be empty", nil)
	}
	return s.subjectRepo.UpdateSubject(ctx, id, req.CourseID, name)
}

// DeleteSubject removes a subject, detaching its notes.
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.DeleteSubject(ctx, id)
}
