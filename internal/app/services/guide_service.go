package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// GuideService handles survival guides.
type GuideService struct {
	guideRepo *repositories.GuideRepository
}

// NewGuideService creates a new guide service instance
func NewGuideService(guideRepo *repositories.GuideRepository) *GuideService {
	return &GuideService{guideRepo: guideRepo}
}

func toGuideResponse(guide *repositories.GuideDetails) dto.GuideResponse {
	return dto.GuideResponse{
		ID:         guide.ID,
		UserID:     guide.UserID,
		Title:      guide.Title,
		Content:    guide.Content,
		CreatedAt:  guide.CreatedAt,
		AuthorName: guide.AuthorName,
	}
}

// CreateGuide creates a new survival guide.
func (s *GuideService) CreateGuide(ctx context.Context, userID int64, req *dto.CreateGuideRequest) (*dto.GuideResponse, error) {
	title := sanitize.Strip(req.Title)
	content := sanitize.Strip(req.Content)
	details := map[string]string{}
	if title == "" {
		details["title"] = "title cannot be empty"
	}
	if content == "" {
		details["content"] = "content cannot be empty"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("guide validation failed", details)
	}

	id, err := s.guideRepo.CreateGuide(ctx, userID, title, content)
	if err != nil {
		return nil, err
	}
	return s.GetGuide(ctx, id)
}

// GetGuide retrieves a single guide.
func (s *GuideService) GetGuide(ctx context.Context, id int64) (*dto.GuideResponse, error) {
	guide, err := s.guideRepo.GetGuideByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toGuideResponse(guide)
	return &resp, nil
}

// ListGuides retrieves a newest-first page of guides.
func (s *GuideService) ListGuides(ctx context.Context, limit, offset int) ([]dto.GuideResponse, error) {
	guides, err := s.guideRepo.GetAllGuides(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GuideResponse, 0, len(guides))
	for _, guide := range guides {
		responses = append(responses, toGuideResponse(guide))
	}
	return responses, nil
}

// UpdateGuide applies the provided fields to the caller's own guide.
func (s *GuideService) UpdateGuide(ctx context.Context, id, userID int64, req *dto.UpdateGuideRequest) (*dto.GuideResponse, error) {
	fields := repositories.GuideUpdateFields{
		Title:   sanitize.StripPtr(req.Title),
		Content: sanitize.StripPtr(req.Content),
	}
	if fields.Title != nil && *fields.Title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty", nil)
	}
	if fields.Content != nil && *fields.Content == "" {
		return nil, apperrors.NewValidationError("content cannot be empty", nil)
	}

	if err := s.guideRepo.UpdateGuide(ctx, id, userID, fields); err != nil {
		return nil, err
	}
	return s.GetGuide(ctx, id)
}

// DeleteGuide removes the caller's own guide.
func (s *GuideService) DeleteGuide(ctx context.Context, id, userID int64) error {
	return s.guideRepo.DeleteGuide(ctx, id, userID)
}
