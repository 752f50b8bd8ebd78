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

// SubjectRepository handles database operations for subjects.
type SubjectRepository struct {
	DB *pgxpool.Pool
}

// NewSubjectRepository creates a new instance of SubjectRepository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	err := row.Scan(&subject.ID, &subject.CourseID, &subject.SubjectName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// CreateSubject inserts a new subject under a course.
func (r *SubjectRepository) CreateSubject(ctx context.Context, courseID int64, subjectName string) (*models.Subject, error) {
	sqlStr, args, err := squirrel.Insert("subjects").
		Columns("course_id", "subject_name").
		Values(courseID, subjectName).
		Suffix("RETURNING id, course_id, subject_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return nil, err
	}

	subject, err := scanSubject(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUniqueViolation
		}
		logger.Error().Err(err).Msg("Error executing create subject query")
		return nil, err
	}
	return subject, nil
}

// GetSubjectByID retrieves a single subject.
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	sqlStr, args, err := squirrel.Select("id", "course_id", "subject_name").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject by ID SQL")
		return nil, err
	}

	return scanSubject(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllSubjects retrieves a paginated list of subjects, optionally filtered
// by course.
func (r *SubjectRepository) GetAllSubjects(ctx context.Context, courseID *int64, limit, offset int) ([]*models.Subject, error) {
	builder := squirrel.Select("id", "course_id", "subject_name").
		From("subjects").
		OrderBy("subject_name ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)
	if courseID != nil {
		builder = builder.Where(squirrel.Eq{"course_id": *courseID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all subjects SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subjects query")
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*models.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// UpdateSubject applies the provided non-nil fields and returns the updated row.
func (r *SubjectRepository) UpdateSubject(ctx context.Context, id int64, courseID *int64, subjectName *string) (*models.Subject, error) {
	builder := squirrel.Update("subjects").Where(squirrel.Eq{"id": id})
	updated := false
	if courseID != nil {
		builder = builder.Set("course_id", *courseID)
		updated = true
	}
	if subjectName != nil {
		builder = builder.Set("subject_name", *subjectName)
		updated = true
	}
	if !updated {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.
		Suffix("RETURNING id, course_id, subject_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject SQL")
		return nil, err
	}

	subject, err := scanSubject(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		if !errors.Is(err, apperrors.ErrSubjectNotFound) {
			logger.Error().Err(err).Msg("Error executing update subject query")
		}
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject. Notes keep their rows; their subject_id
// becomes NULL by the FK's ON DELETE SET NULL.
func (r *SubjectRepository) DeleteSubject(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete subject query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}
