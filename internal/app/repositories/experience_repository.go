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

// ExperienceDetails is an experience post joined with its author's name.
type ExperienceDetails struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Title      *string   `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	ImageURL   *string   `db:"image_url" json:"image_url"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	AuthorName string    `db:"author_name" json:"author_name"`
}

// ExperienceUpdateFields carries the optional columns of an experience update.
type ExperienceUpdateFields struct {
	Title    *string
	Content  *string
	ImageURL *string
}

// ExperienceRepository handles database operations for experience posts.
type ExperienceRepository struct {
	DB *pgxpool.Pool
}

// NewExperienceRepository creates a new instance of ExperienceRepository.
func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{DB: db}
}

func (r *ExperienceRepository) selectExperienceQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"e.id", "e.user_id", "e.title", "e.content", "e.image_url",
		"e.created_at", "u.name as author_name",
	).From("experience_posts e").
		Join("users u ON e.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanExperienceDetails(row pgx.Row) (*ExperienceDetails, error) {
	var post ExperienceDetails
	err := row.Scan(
		&post.ID, &post.UserID, &post.Title, &post.Content, &post.ImageURL,
		&post.CreatedAt, &post.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreateExperience inserts an experience post and returns its ID.
func (r *ExperienceRepository) CreateExperience(ctx context.Context, userID int64, title *string, content string, imageURL *string) (int64, error) {
	sqlStr, args, err := squirrel.Insert("experience_posts").
		Columns("user_id", "title", "content", "image_url").
		Values(userID, title, content, imageURL).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create experience SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create experience query")
		return 0, err
	}
	return id, nil
}

// GetExperienceByID retrieves a single experience post with author name.
func (r *ExperienceRepository) GetExperienceByID(ctx context.Context, id int64) (*ExperienceDetails, error) {
	sqlStr, args, err := r.selectExperienceQuery().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get experience by ID SQL")
		return nil, err
	}

	return scanExperienceDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllExperiences retrieves a paginated, newest-first list of posts.
func (r *ExperienceRepository) GetAllExperiences(ctx context.Context, limit, offset int) ([]*ExperienceDetails, error) {
	sqlStr, args, err := r.selectExperienceQuery().
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all experiences SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all experiences query")
		return nil, err
	}
	defer rows.Close()

	posts := make([]*ExperienceDetails, 0)
	for rows.Next() {
		post, err := scanExperienceDetails(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdateExperience applies the provided fields to a post owned by userID.
func (r *ExperienceRepository) UpdateExperience(ctx context.Context, id, userID int64, fields ExperienceUpdateFields) error {
	builder := squirrel.Update("experience_posts").
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
	if fields.ImageURL != nil {
		builder = builder.Set("image_url", *fields.ImageURL)
		updated = true
	}
	if !updated {
		return apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update experience SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update experience query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExperienceNotFound
	}
	return nil
}

// DeleteExperience removes a post owned by userID.
func (r *ExperienceRepository) DeleteExperience(ctx context.Context, id, userID int64) error {
	sqlStr, args, err := squirrel.Delete("experience_posts").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete experience SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete experience query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExperienceNotFound
	}
	return nil
}
