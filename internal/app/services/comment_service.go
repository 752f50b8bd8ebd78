package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// commentStore is the slice of the comment repository the service needs.
type commentStore interface {
	CreateComment(ctx context.Context, noteID, userID int64, commentText string) (*repositories.CommentDetails, error)
	GetCommentsByNoteID(ctx context.Context, noteID int64, limit, offset int) ([]*repositories.CommentDetails, error)
	DeleteComment(ctx context.Context, id, userID int64) error
}

// noteChecker verifies that a note exists before comments or likes are read.
type noteChecker interface {
	GetNoteByID(ctx context.Context, id int64) (*repositories.NoteDetails, error)
}

// CommentService handles comments under notes.
type CommentService struct {
	commentRepo commentStore
	noteRepo    noteChecker
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo commentStore, noteRepo noteChecker) *CommentService {
	return &CommentService{commentRepo: commentRepo, noteRepo: noteRepo}
}

func toCommentResponse(comment *repositories.CommentDetails) dto.CommentResponse {
	return dto.CommentResponse{
		ID:          comment.ID,
		NoteID:      comment.NoteID,
		UserID:      comment.UserID,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
		UserName:    comment.UserName,
	}
}

// AddComment attaches a comment to a note.
func (s *CommentService) AddComment(ctx context.Context, noteID, userID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text := sanitize.Strip(req.CommentText)
	if text == "" {
		return nil, apperrors.NewValidationError("comment text is required", map[string]string{"comment_text": "comment text cannot be empty"})
	}

	comment, err := s.commentRepo.CreateComment(ctx, noteID, userID, text)
	if err != nil {
		return nil, err
	}
	resp := toCommentResponse(comment)
	return &resp, nil
}

// ListComments returns a note's comments newest first. The note is checked
// first so a missing note is a 404 rather than an empty list.
func (s *CommentService) ListComments(ctx context.Context, noteID int64, limit, offset int) ([]dto.CommentResponse, error) {
	if _, err := s.noteRepo.GetNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByNoteID(ctx, noteID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment))
	}
	return responses, nil
}

// DeleteComment removes the caller's own comment.
func (s *CommentService) DeleteComment(ctx context.Context, id, userID int64) error {
	return s.commentRepo.DeleteComment(ctx, id, userID)
}
