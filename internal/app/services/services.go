package services

import (
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/auth"
	"github.com/freemodule/backend/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	NoteService       *NoteService
	CommentService    *CommentService
	RatingService     *RatingService
	CourseService     *CourseService
	SubjectService    *SubjectService
	ExperienceService *ExperienceService
	QAService         *QAService
	GuideService      *GuideService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, files filestorage.FileStorage, emailDomain string) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, emailDomain),
		UserService:       NewUserService(repos.UserRepository, repos.NoteRepository, files, emailDomain),
		NoteService:       NewNoteService(repos.NoteRepository, files),
		CommentService:    NewCommentService(repos.CommentRepository, repos.NoteRepository),
		RatingService:     NewRatingService(repos.RatingRepository, repos.NoteRepository),
		CourseService:     NewCourseService(repos.CourseRepository),
		SubjectService:    NewSubjectService(repos.SubjectRepository),
		ExperienceService: NewExperienceService(repos.ExperienceRepository),
		QAService:         NewQAService(repos.QARepository),
		GuideService:      NewGuideService(repos.GuideRepository),
	}
}
