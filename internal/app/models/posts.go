package models

import "time"

// ExperiencePost is a free-form story shared by a user.
type ExperiencePost struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Title     *string   `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// QAPost is a question asked by a user.
type QAPost struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Question  string    `db:"question" json:"question"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// QAAnswer is an answer to a QAPost. Answers are append-only.
type QAAnswer struct {
	ID        int64     `db:"id" json:"id"`
	QAPostID  int64     `db:"qa_post_id" json:"qa_post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Answer    string    `db:"answer" json:"answer"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SurvivalGuide is a user-owned long-form guide.
type SurvivalGuide struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
