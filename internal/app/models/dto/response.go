package dto

import "time"

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NoteResponse is a note enriched with uploader and engagement info.
type NoteResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	SubjectID     *int64    `json:"subject_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	FileURL       string    `json:"file_url"`
	UploadDate    time.Time `json:"upload_date"`
	UploaderName  string    `json:"uploader_name"`
	TotalLikes    int64     `json:"total_likes"`
	CommentsCount int64     `json:"comments_count"`
}

// CommentResponse is a comment with its author's display name.
type CommentResponse struct {
	ID          int64     `json:"id"`
	NoteID      int64     `json:"note_id"`
	UserID      int64     `json:"user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
}

// RateResponse reports the outcome of a like toggle.
type RateResponse struct {
	Action     string `json:"action"`
	TotalLikes int64  `json:"total_likes"`
}

// LikerResponse is the minimal user shape shown in a note's likers list.
type LikerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RatingsListResponse lists who likes a note alongside the current count.
type RatingsListResponse struct {
	Likes  int64           `json:"likes"`
	Users  []LikerResponse `json:"users"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ExperienceResponse is an experience post with its author's display name.
type ExperienceResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      *string   `json:"title"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// QAPostResponse is a question with author name and answer count.
type QAPostResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Question     string    `json:"question"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorName   string    `json:"author_name"`
	AnswersCount int64     `json:"answers_count"`
}

// QAAnswerResponse is an answer with its author's display name.
type QAAnswerResponse struct {
	ID         int64     `json:"id"`
	QAPostID   int64     `json:"qa_post_id"`
	UserID     int64     `json:"user_id"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// GuideResponse is a survival guide with its author's display name.
type GuideResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// PaginatedResponse wraps any list endpoint's items with the paging window
// that produced them.
type PaginatedResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPaginatedResponse builds a paginated wrapper, normalizing a nil slice to
// an empty one so the JSON is always an array.
func NewPaginatedResponse[T any](items []T, limit, offset int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{Items: items, Limit: limit, Offset: offset}
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
