package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
)

// ratingStore is the slice of the rating repository the service needs.
type ratingStore interface {
	ToggleRating(ctx context.Context, noteID, userID int64) (string, int64, error)
	CountByNoteID(ctx context.Context, noteID int64) (int64, error)
	GetLikersByNoteID(ctx context.Context, noteID int64, limit, offset int) ([]*repositories.RatingUser, error)
}

// RatingService handles like toggles on notes.
type RatingService struct {
	ratingRepo ratingStore
	noteRepo   noteChecker
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratingRepo ratingStore, noteRepo noteChecker) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, noteRepo: noteRepo}
}

// ToggleRating flips the caller's like on a note and reports the action taken
// with the resulting count.
func (s *RatingService) ToggleRating(ctx context.Context, noteID, userID int64) (*dto.RateResponse, error) {
	if _, err := s.noteRepo.GetNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	action, totalLikes, err := s.ratingRepo.ToggleRating(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.RateResponse{Action: action, TotalLikes: totalLikes}, nil
}

// ListRatings returns the like count and a page of users who like the note.
func (s *RatingService) ListRatings(ctx context.Context, noteID int64, limit, offset int) (*dto.RatingsListResponse, error) {
	if _, err := s.noteRepo.GetNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	count, err := s.ratingRepo.CountByNoteID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	likers, err := s.ratingRepo.GetLikersByNoteID(ctx, noteID, limit, offset)
	if err != nil {
		return nil, err
	}

	users := make([]dto.LikerResponse, 0, len(likers))
	for _, liker := range likers {
		users = append(users, dto.LikerResponse{ID: liker.ID, Name: liker.Name})
	}
	return &dto.RatingsListResponse{Likes: count, Users: users, Limit: limit, Offset: offset}, nil
}
