package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// GuideDetails is a survival guide joined with its author's name.
type GuideDetails struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	AuthorName string    `db:"author_name" json:"author_name"`
}

// GuideUpdateFields carries the optional columns of a guide update.
type GuideUpdateFields struct {
	Title   *string
	Content *string
}

// GuideRepository handles database operations for survival guides.
type GuideRepository struct {
	DB *pgxpool.Pool
}

// NewGuideRepository creates a new instance of GuideRepository.
func NewGuideRepository(db *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{DB: db}
}

func (r *GuideRepository) selectGuideQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"g.id", "g.user_id", "g.title", "g.content", "g.created_at",
		"u.name as author_name",
	).From("survival_guides g").
		Join("users u ON g.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanGuideDetails(row pgx.Row) (*GuideDetails, error) {
	var guide GuideDetails
	err := row.Scan(
		&guide.ID, &guide.UserID, &guide.Title, &guide.Content,
		&guide.CreatedAt, &guide.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuideNotFound
		}
		return nil, err
	}
	return &guide, nil
}

// CreateGuide inserts a survival guide and returns its ID.
func (r *GuideRepository) CreateGuide(ctx context.Context, userID int64, title, content string) (int64, error) {
	sqlStr, args, err := squirrel.Insert("survival_guides").
		Columns("user_id", "title", "content").
		Values(userID, title, content).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create guide SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create guide query")
		return 0, err
	}
	return id, nil
}

// GetGuideByID retrieves a single guide with author name.
func (r *GuideRepository) GetGuideByID(ctx context.Context, id int64) (*GuideDetails, error) {
	sqlStr, args, err := r.selectGuideQuery().Where(squirrel.Eq{"g.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get guide by ID SQL")
		return nil, err
	}

	return scanGuideDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllGuides retrieves a paginated, newest-first list of guides.
func (r *GuideRepository) GetAllGuides(ctx context.Context, limit, offset int) ([]*GuideDetails, error) {
	sqlStr, args, err := r.selectGuideQuery().
		OrderBy("g.created_at DESC", "g.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all guides SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all guides query")
		return nil, err
	}
	defer rows.Close()

	guides := make([]*GuideDetails, 0)
	for rows.Next() {
		guide, err := scanGuideDetails(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}

// UpdateGuide applies the provided fields to a guide owned by userID.
func (r *GuideRepository) UpdateGuide(ctx context.Context, id, userID int64, fields GuideUpdateFields) error {
	builder := squirrel.Update("survival_guides").
		Where(squirrel.Eq{"id": id, "user_id": userID})
	updated := false
	if fields.Title != nil {
		builder = builder.Set("title", *fields.Title)
		updated = true
	}
	if fields.Content != nil {
		builder = builder.Set("content", *fields.Content)
		updated = true
	}
	if !updated {
		return apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update guide SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update guide query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuideNotFound
	}
	return nil
}

// DeleteGuide removes a guide owned by userID.
func (r *GuideRepository) DeleteGuide(ctx context.Context, id, userID int64) error {
	sqlStr, args, err := squirrel.Delete("survival_guides").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete guide SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete guide query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuideNotFound
	}
	return nil
}
