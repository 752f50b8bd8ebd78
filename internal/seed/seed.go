package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	appRepos "github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// Default reference data created on first boot.
var defaultCourses = []struct {
	Code     string
	Name     string
	Subjects []string
}{
	{"BSIT", "BS Information Technology", []string{"Programming 1", "Data Structures", "Database Systems"}},
	{"BSCS", "BS Computer Science", []string{"Discrete Mathematics", "Operating Systems", "Automata Theory"}},
	{"BSCE", "BS Civil Engineering", []string{"Statics of Rigid Bodies", "Surveying"}},
}

// CreateDefaultData seeds the course and subject reference tables. Rows that
// already exist are left alone; errors are collected so one bad row does not
// stop the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	subjectRepo := appRepos.NewSubjectRepository(dbPool)

	logger.Info().Msg("Checking/Creating default course and subject data...")
	var finalErr error

	for _, seedCourse := range defaultCourses {
		course, err := courseRepo.CreateCourse(ctx, seedCourse.Code, seedCourse.Name)
		if errors.Is(err, apperrors.ErrUniqueViolation) {
			course, err = courseRepo.GetCourseByCode(ctx, seedCourse.Code)
		}
		if err != nil {
			logger.Error().Err(err).Str("course_code", seedCourse.Code).Msg("Error seeding default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, subjectName := range seedCourse.Subjects {
			_, err := subjectRepo.CreateSubject(ctx, course.ID, subjectName)
			if err != nil && !errors.Is(err, apperrors.ErrUniqueViolation) {
				logger.Error().Err(err).Str("subject", subjectName).Msg("Error seeding default subject")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	return finalErr
}
