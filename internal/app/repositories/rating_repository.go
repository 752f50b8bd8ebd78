package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/db"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/dberrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// Toggle outcomes reported by ToggleRating.
const (
	RatingActionLiked   = "liked"
	RatingActionUnliked = "unliked"
)

// RatingUser is a user who currently likes a note.
type RatingUser struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// RatingRepository handles database operations for note likes.
type RatingRepository struct {
	DB *pgxpool.Pool
}

// NewRatingRepository creates a new instance of RatingRepository.
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{DB: db}
}

// ToggleRating flips the caller's like on a note inside one transaction and
// returns the action taken plus the resulting like count. Delete first; if no
// row was there, insert. The unique (note_id, user_id) pair absorbs races via
// ON CONFLICT DO NOTHING, so a concurrent double toggle settles as one like.
func (r *RatingRepository) ToggleRating(ctx context.Context, noteID, userID int64) (action string, totalLikes int64, err error) {
	deleteSQL, deleteArgs, err := squirrel.Delete("ratings").
		Where(squirrel.Eq{"note_id": noteID, "user_id": userID}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building toggle rating delete SQL")
		return "", 0, err
	}

	insertSQL, insertArgs, err := squirrel.Insert("ratings").
		Columns("note_id", "user_id").
		Values(noteID, userID).
		Suffix("ON CONFLICT (note_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building toggle rating insert SQL")
		return "", 0, err
	}

	countSQL, countArgs, err := squirrel.Select("count(*)").
		From("ratings").
		Where(squirrel.Eq{"note_id": noteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building toggle rating count SQL")
		return "", 0, err
	}

	err = db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		var deletedID int64
		scanErr := tx.QueryRow(ctx, deleteSQL, deleteArgs...).Scan(&deletedID)
		switch {
		case scanErr == nil:
			action = RatingActionUnliked
		case errors.Is(scanErr, pgx.ErrNoRows):
			if _, execErr := tx.Exec(ctx, insertSQL, insertArgs...); execErr != nil {
				if dberrors.IsForeignKeyViolation(execErr) {
					return apperrors.ErrNoteNotFound
				}
				return execErr
			}
			action = RatingActionLiked
		default:
			return scanErr
		}
		return tx.QueryRow(ctx, countSQL, countArgs...).Scan(&totalLikes)
	})
	if err != nil {
		return "", 0, err
	}
	return action, totalLikes, nil
}

// CountByNoteID returns the current like count of a note.
func (r *RatingRepository) CountByNoteID(ctx context.Context, noteID int64) (int64, error) {
	sqlStr, args, err := squirrel.Select("count(*)").
		From("ratings").
		Where(squirrel.Eq{"note_id": noteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building rating count SQL")
		return 0, err
	}

	var count int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing rating count query")
		return 0, err
	}
	return count, nil
}

// GetLikersByNoteID retrieves users who currently like a note, most recent
// like first.
func (r *RatingRepository) GetLikersByNoteID(ctx context.Context, noteID int64, limit, offset int) ([]*RatingUser, error) {
	sqlStr, args, err := squirrel.Select("u.id", "u.name").
		From("ratings r").
		Join("users u ON r.user_id = u.id").
		Where(squirrel.Eq{"r.note_id": noteID}).
		OrderBy("r.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get likers SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get likers query")
		return nil, err
	}
	defer rows.Close()

	users := make([]*RatingUser, 0)
	for rows.Next() {
		var user RatingUser
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
