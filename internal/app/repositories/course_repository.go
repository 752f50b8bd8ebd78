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

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(&course.ID, &course.CourseCode, &course.CourseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// CreateCourse inserts a new course.
func (r *CourseRepository) CreateCourse(ctx context.Context, courseCode, courseName string) (*models.Course, error) {
	sqlStr, args, err := squirrel.Insert("courses").
		Columns("course_code", "course_name").
		Values(courseCode, courseName).
		Suffix("RETURNING id, course_code, course_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return nil, err
	}

	course, err := scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUniqueViolation
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return nil, err
	}
	return course, nil
}

// GetCourseByID retrieves a single course.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sqlStr, args, err := squirrel.Select("id", "course_code", "course_name").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}

	return scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetCourseByCode retrieves a course by its unique code.
func (r *CourseRepository) GetCourseByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	sqlStr, args, err := squirrel.Select("id", "course_code", "course_name").
		From("courses").
		Where(squirrel.Eq{"course_code": courseCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by code SQL")
		return nil, err
	}

	return scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllCourses retrieves a paginated list of courses ordered by code.
func (r *CourseRepository) GetAllCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	sqlStr, args, err := squirrel.Select("id", "course_code", "course_name").
		From("courses").
		OrderBy("course_code ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// UpdateCourse applies the provided non-nil fields and returns the updated row.
func (r *CourseRepository) UpdateCourse(ctx context.Context, id int64, courseCode, courseName *string) (*models.Course, error) {
	builder := squirrel.Update("courses").Where(squirrel.Eq{"id": id})
	updated := false
	if courseCode != nil {
		builder = builder.Set("course_code", *courseCode)
		updated = true
	}
	if courseName != nil {
		builder = builder.Set("course_name", *courseName)
		updated = true
	}
	if !updated {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.
		Suffix("RETURNING id, course_code, course_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, err
	}

	course, err := scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUniqueViolation
		}
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			logger.Error().Err(err).Msg("Error executing update course query")
		}
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course. Subjects under it are removed by cascade.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
