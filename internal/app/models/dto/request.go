package dto

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates the caller's own profile. At least one field
// must be present.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// CreateNoteRequest carries the multipart form fields of a note upload; the
// file itself travels separately as the "file" part.
type CreateNoteRequest struct {
	Title       string  `form:"title"`
	Description *string `form:"description"`
	SubjectID   *int64  `form:"subject_id"`
}

// UpdateNoteRequest carries the optional note fields of a note update.
type UpdateNoteRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	SubjectID   *int64  `form:"subject_id"`
}

// CreateCommentRequest adds a comment to a note.
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// CreateCourseRequest creates reference data.
type CreateCourseRequest struct {
	CourseCode string `json:"course_code" binding:"required"`
	CourseName string `json:"course_name" binding:"required"`
}

// UpdateCourseRequest partially updates a course.
type UpdateCourseRequest struct {
	CourseCode *string `json:"course_code"`
	CourseName *string `json:"course_name"`
}

// CreateSubjectRequest creates a subject under a course.
type CreateSubjectRequest struct {
	CourseID    int64  `json:"course_id" binding:"required"`
	SubjectName string `json:"subject_name" binding:"required"`
}

// UpdateSubjectRequest partially updates a subject.
type UpdateSubjectRequest struct {
	CourseID    *int64  `json:"course_id"`
	SubjectName *string `json:"subject_name"`
}

// CreateExperienceRequest posts an experience story.
type CreateExperienceRequest struct {
	Title    *string `json:"title"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

// UpdateExperienceRequest partially updates an experience post.
type UpdateExperienceRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// CreateQAPostRequest asks a question.
type CreateQAPostRequest struct {
	Question string `json:"question" binding:"required"`
}

// UpdateQAPostRequest rewrites a question.
type UpdateQAPostRequest struct {
	Question string `json:"question" binding:"required"`
}

// CreateQAAnswerRequest answers a question.
type CreateQAAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// CreateGuideRequest creates a survival guide.
type CreateGuideRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateGuideRequest partially updates a survival guide.
type UpdateGuideRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
