package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/dberrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// CommentDetails is a comment joined with its author's display name.
type CommentDetails struct {
	ID          int64     `db:"id" json:"id"`
	NoteID      int64     `db:"note_id" json:"note_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UserName    string    `db:"user_name" json:"user_name"`
}

// CommentRepository handles database operations for comments.
type CommentRepository struct {
	DB *pgxpool.Pool
}

// NewCommentRepository creates a new instance of CommentRepository.
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{DB: db}
}

func scanCommentDetails(row pgx.Row) (*CommentDetails, error) {
	var comment CommentDetails
	err := row.Scan(
		&comment.ID, &comment.NoteID, &comment.UserID,
		&comment.CommentText, &comment.CreatedAt, &comment.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// CreateComment inserts a comment on a note and returns the stored row with
// the author's name. A missing note surfaces through the FK.
func (r *CommentRepository) CreateComment(ctx context.Context, noteID, userID int64, commentText string) (*CommentDetails, error) {
	sqlStr, args, err := squirrel.Insert("comments").
		Columns("note_id", "user_id", "comment_text").
		Values(noteID, userID, commentText).
		Suffix("RETURNING id, note_id, user_id, comment_text, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create comment SQL")
		return nil, err
	}

	var comment CommentDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&comment.ID, &comment.NoteID, &comment.UserID,
		&comment.CommentText, &comment.CreatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Error executing create comment query")
		return nil, err
	}

	nameSQL, nameArgs, err := squirrel.Select("name").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building comment author name SQL")
		return nil, err
	}
	if err := r.DB.QueryRow(ctx, nameSQL, nameArgs...).Scan(&comment.UserName); err != nil {
		logger.Error().Err(err).Msg("Error fetching comment author name")
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByNoteID retrieves a note's comments newest first. The note's
// existence must be checked by the caller; an empty slice here is ambiguous.
func (r *CommentRepository) GetCommentsByNoteID(ctx context.Context, noteID int64, limit, offset int) ([]*CommentDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"c.id", "c.note_id", "c.user_id", "c.comment_text", "c.created_at",
		"u.name as user_name",
	).From("comments c").
		Join("users u ON c.user_id = u.id").
		Where(squirrel.Eq{"c.note_id": noteID}).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get comments SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get comments query")
		return nil, err
	}
	defer rows.Close()

	comments := make([]*CommentDetails, 0)
	for rows.Next() {
		comment, err := scanCommentDetails(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// DeleteComment removes a comment owned by userID. A comment owned by someone
// else is indistinguishable from a missing one.
func (r *CommentRepository) DeleteComment(ctx context.Context, id, userID int64) error {
	sqlStr, args, err := squirrel.Delete("comments").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete comment SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete comment query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
