package services

import (
	"context"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// QAService handles questions and their append-only answers.
type QAService struct {
	qaRepo *repositories.QARepository
}

// NewQAService creates a new qa service instance
func NewQAService(qaRepo *repositories.QARepository) *QAService {
	return &QAService{qaRepo: qaRepo}
}

func toQAPostResponse(post *repositories.QAPostDetails) dto.QAPostResponse {
	return dto.QAPostResponse{
		ID:           post.ID,
		UserID:       post.UserID,
		Question:     post.Question,
		CreatedAt:    post.CreatedAt,
		AuthorName:   post.AuthorName,
		AnswersCount: post.AnswersCount,
	}
}

func toQAAnswerResponse(ans *repositories.QAAnswerDetails) dto.QAAnswerResponse {
	return dto.QAAnswerResponse{
		ID:         ans.ID,
		QAPostID:   ans.QAPostID,
		UserID:     ans.UserID,
		Answer:     ans.Answer,
		CreatedAt:  ans.CreatedAt,
		AuthorName: ans.AuthorName,
	}
}

// CreateQAPost asks a new question.
func (s *QAService) CreateQAPost(ctx context.Context, userID int64, req *dto.CreateQAPostRequest) (*dto.QAPostResponse, error) {
	question := sanitize.Strip(req.Question)
	if question == "" {
		return nil, apperrors.NewValidationError("question is required", map[string]string{"question": "question cannot be empty"})
	}

	id, err := s.qaRepo.CreateQAPost(ctx, userID, question)
	if err != nil {
		return nil, err
	}
	return s.GetQAPost(ctx, id)
}

// GetQAPost retrieves a single question.
func (s *QAService) GetQAPost(ctx context.Context, id int64) (*dto.QAPostResponse, error) {
	post, err := s.qaRepo.GetQAPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toQAPostResponse(post)
	return &resp, nil
}

// ListQAPosts retrieves a newest-first page of questions.
func (s *QAService) ListQAPosts(ctx context.Context, limit, offset int) ([]dto.QAPostResponse, error) {
	posts, err := s.qaRepo.GetAllQAPosts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QAPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toQAPostResponse(post))
	}
	return responses, nil
}

// UpdateQAPost rewrites the caller's own question. Existing answers stay.
func (s *QAService) UpdateQAPost(ctx context.Context, id, userID int64, req *dto.UpdateQAPostRequest) (*dto.QAPostResponse, error) {
	question := sanitize.Strip(req.Question)
	if question == "" {
		return nil, apperrors.NewValidationError("question cannot be empty", map[string]string{"question": "question cannot be empty"})
	}

	if err := s.qaRepo.UpdateQAPost(ctx, id, userID, question); err != nil {
		return nil, err
	}
	return s.GetQAPost(ctx, id)
}

// DeleteQAPost removes the caller's own question along with its answers.
func (s *QAService) DeleteQAPost(ctx context.Context, id, userID int64) error {
	return s.qaRepo.DeleteQAPost(ctx, id, userID)
}

// AddAnswer appends an answer to a question. Answers have no update or delete.
func (s *QAService) AddAnswer(ctx context.Context, qaPostID, userID int64, req *dto.CreateQAAnswerRequest) (*dto.QAAnswerResponse, error) {
	answer := sanitize.Strip(req.Answer)
	if answer == "" {
		return nil, apperrors.NewValidationError("answer is required", map[string]string{"answer": "answer cannot be empty"})
	}

	ans, err := s.qaRepo.CreateQAAnswer(ctx, qaPostID, userID, answer)
	if err != nil {
		return nil, err
	}
	resp := toQAAnswerResponse(ans)
	return &resp, nil
}

// ListAnswers returns a question's answers oldest first. The question is
// checked first so a missing one is a 404 rather than an empty list.
func (s *QAService) ListAnswers(ctx context.Context, qaPostID int64, limit, offset int) ([]dto.QAAnswerResponse, error) {
	if _, err := s.qaRepo.GetQAPostByID(ctx, qaPostID); err != nil {
		return nil, err
	}

	answers, err := s.qaRepo.GetAnswersByPostID(ctx, qaPostID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QAAnswerResponse, 0, len(answers))
	for _, ans := range answers {
		responses = append(responses, toQAAnswerResponse(ans))
	}
	return responses, nil
}
