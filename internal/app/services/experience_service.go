package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// ExperienceService handles experience posts.
type ExperienceService struct {
	experienceRepo *repositories.ExperienceRepository
}

// NewExperienceService creates a new experience service instance
func NewExperienceService(experienceRepo *repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

func toExperienceResponse(post *repositories.ExperienceDetails) dto.ExperienceResponse {
	return dto.ExperienceResponse{
		ID:         post.ID,
		UserID:     post.UserID,
		Title:      post.Title,
		Content:    post.Content,
		ImageURL:   post.ImageURL,
		CreatedAt:  post.CreatedAt,
		AuthorName: post.AuthorName,
	}
}

// CreateExperience posts a new experience story.
func (s *ExperienceService) CreateExperience(ctx context.Context, userID int64, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error) {
	content := sanitize.Strip(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("content is required", map[string]string{"content": "content cannot be empty"})
	}
	title := sanitize.StripPtr(req.Title)
	imageURL := sanitize.StripPtr(req.ImageURL)

	id, err := s.experienceRepo.CreateExperience(ctx, userID, title, content, imageURL)
	if err != nil {
		return nil, err
	}
	return s.GetExperience(ctx, id)
}

// GetExperience retrieves a single experience post.
func (s *ExperienceService) GetExperience(ctx context.Context, id int64) (*dto.ExperienceResponse, error) {
	post, err := s.experienceRepo.GetExperienceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toExperienceResponse(post)
	return &resp, nil
}

// ListExperiences retrieves a newest-first page of experience posts.
func (s *ExperienceService) ListExperiences(ctx context.Context, limit, offset int) ([]dto.ExperienceResponse, error) {
	posts, err := s.experienceRepo.GetAllExperiences(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExperienceResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toExperienceResponse(post))
	}
	return responses, nil
}

// UpdateExperience applies the provided fields to the caller's own post.
func (s *ExperienceService) UpdateExperience(ctx context.Context, id, userID int64, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error) {
	fields := repositories.ExperienceUpdateFields{
		Title:    sanitize.StripPtr(req.Title),
		Content:  sanitize.StripPtr(req.Content),
		ImageURL: sanitize.StripPtr(req.ImageURL),
	}
	if fields.Content != nil && *fields.Content == "" {
		return nil, apperrors.NewValidationError("content cannot be empty", map[string]string{"content": "content cannot be empty"})
	}

	if err := s.experienceRepo.UpdateExperience(ctx, id, userID, fields); err != nil {
		return nil, err
	}
	return s.GetExperience(ctx, id)
}

// DeleteExperience removes the caller's own post.
func (s *ExperienceService) DeleteExperience(ctx context.Context, id, userID int64) error {
	return s.experienceRepo.DeleteExperience(ctx, id, userID)
}
