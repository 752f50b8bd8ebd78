package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/dberrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user and returns the stored row.
func (r *UserRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	sqlStr, args, err := squirrel.Insert("users").
		Columns("name", "email", "password_hash").
		Values(name, email, passwordHash).
		Suffix("RETURNING id, name, email, password_hash, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return nil, err
	}

	user, err := scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by its ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, err
	}

	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, err
	}

	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// UpdateUser applies the provided non-nil fields to the user and returns the
// updated row. ErrNoFieldsToUpdate when nothing is set.
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error) {
	builder := squirrel.Update("users").Where(squirrel.Eq{"id": id})
	updated := false
	if name != nil {
		builder = builder.Set("name", *name)
		updated = true
	}
	if email != nil {
		builder = builder.Set("email", *email)
		updated = true
	}
	if !updated {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.
		Suffix("RETURNING id, name, email, password_hash, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return nil, err
	}

	user, err := scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Msg("Error executing update user query")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and, by cascade, everything the user owns. The
// deleted row is returned so the handler can echo the closed profile.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := squirrel.Delete("users").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, email, password_hash, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return nil, err
	}

	user, err := scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Msg("Error executing delete user query")
		}
		return nil, err
	}
	return user, nil
}
