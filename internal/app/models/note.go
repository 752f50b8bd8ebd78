package models

import "time"

// Note is an uploaded class note. FileURL always points at a stored file for
// as long as the row exists.
type Note struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	SubjectID   *int64    `db:"subject_id" json:"subject_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	FileURL     string    `db:"file_url" json:"file_url"`
	UploadDate  time.Time `db:"upload_date" json:"upload_date"`
}

// Comment is attached to a note by any authenticated user.
type Comment struct {
	ID          int64     `db:"id" json:"id"`
	NoteID      int64     `db:"note_id" json:"note_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Rating marks that a user currently likes a note. Presence of the row is the
// whole state; the pair (note_id, user_id) is unique at the database level.
type Rating struct {
	ID     int64 `db:"id" json:"id"`
	NoteID int64 `db:"note_id" json:"note_id"`
	UserID int64 `db:"user_id" json:"user_id"`
}
