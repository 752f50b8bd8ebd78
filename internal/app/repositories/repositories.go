package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	SubjectRepository    *SubjectRepository
	NoteRepository       *NoteRepository
	CommentRepository    *CommentRepository
	RatingRepository     *RatingRepository
	ExperienceRepository *ExperienceRepository
	QARepository         *QARepository
	GuideRepository      *GuideRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		NoteRepository:       NewNoteRepository(db),
		CommentRepository:    NewCommentRepository(db),
		RatingRepository:     NewRatingRepository(db),
		ExperienceRepository: NewExperienceRepository(db),
		QARepository:         NewQARepository(db),
		GuideRepository:      NewGuideRepository(db),
	}
}
