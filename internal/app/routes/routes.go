package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/controllers"
	"github.com/freemodule/backend/internal/middleware"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Note       *controllers.NoteController
	Comment    *controllers.CommentController
	Rating     *controllers.RatingController
	Course     *controllers.CourseController
	Subject    *controllers.SubjectController
	Experience *controllers.ExperienceController
	QA         *controllers.QAController
	Guide      *controllers.GuideController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	limiters *middleware.RateLimiters,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", limiters.Signup, c.Auth.Register)
		auth.POST("/login", limiters.Login, c.Auth.Login)
	}

	// --- Public reads ---
	api.GET("/notes", c.Note.ListNotes)
	api.GET("/notes/:id", c.Note.GetNote)
	api.GET("/notes/:id/comments", c.Comment.ListComments)
	api.GET("/notes/:id/ratings", c.Rating.ListRatings)

	api.GET("/courses", c.Course.ListCourses)
	api.GET("/courses/:id", c.Course.GetCourse)
	api.GET("/subjects", c.Subject.ListSubjects)
	api.GET("/subjects/:id", c.Subject.GetSubject)

	api.GET("/experience", c.Experience.ListExperiences)
	api.GET("/experience/:id", c.Experience.GetExperience)
	api.GET("/qa", c.QA.ListQAPosts)
	api.GET("/qa/:postId", c.QA.GetQAPost)
	api.GET("/qa/:postId/answers", c.QA.ListAnswers)
	api.GET("/survival", c.Guide.ListGuides)
	api.GET("/survival/:id", c.Guide.GetGuide)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", c.User.GetProfile)
			users.PUT("/me", c.User.UpdateProfile)
			users.DELETE("/me", c.User.DeleteAccount)
		}

		notes := authenticated.Group("/notes")
		{
			notes.POST("/upload", limiters.Actions, c.Note.CreateNote)
			notes.PUT("/:id", limiters.Actions, c.Note.UpdateNote)
			notes.DELETE("/:id", limiters.Actions, c.Note.DeleteNote)
			notes.POST("/:id/comments", limiters.Actions, c.Comment.AddComment)
			notes.DELETE("/:id/comments/:commentId", limiters.Actions, c.Comment.DeleteComment)
			notes.POST("/:id/rate", limiters.Actions, c.Rating.ToggleRating)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", limiters.Actions, c.Course.CreateCourse)
			courses.PUT("/:id", limiters.Actions, c.Course.UpdateCourse)
			courses.DELETE("/:id", limiters.Actions, c.Course.DeleteCourse)
		}

		subjects := authenticated.Group("/subjects")
		{
			subjects.POST("", limiters.Actions, c.Subject.CreateSubject)
			subjects.PUT("/:id", limiters.Actions, c.Subject.UpdateSubject)
			subjects.DELETE("/:id", limiters.Actions, c.Subject.DeleteSubject)
		}

		experience := authenticated.Group("/experience")
		{
			experience.POST("", limiters.Actions, c.Experience.CreateExperience)
			experience.PUT("/:id", limiters.Actions, c.Experience.UpdateExperience)
			experience.DELETE("/:id", limiters.Actions, c.Experience.DeleteExperience)
		}

		qa := authenticated.Group("/qa")
		{
			qa.POST("", limiters.Actions, c.QA.CreateQAPost)
			qa.PUT("/:postId", limiters.Actions, c.QA.UpdateQAPost)
			qa.DELETE("/:postId", limiters.Actions, c.QA.DeleteQAPost)
			qa.POST("/:postId/answers", limiters.Actions, c.QA.AddAnswer)
		}

		survival := authenticated.Group("/survival")
		{
			survival.POST("", limiters.Actions, c.Guide.CreateGuide)
			survival.PUT("/:id", limiters.Actions, c.Guide.UpdateGuide)
			survival.DELETE("/:id", limiters.Actions, c.Guide.DeleteGuide)
		}
	}
}
