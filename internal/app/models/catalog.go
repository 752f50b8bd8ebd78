package models

// Course is reference data identifying a degree program.
type Course struct {
	ID         int64  `db:"id" json:"id"`
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
}

// Subject belongs to a course; notes may be filed under a subject.
type Subject struct {
	ID          int64  `db:"id" json:"id"`
	CourseID    int64  `db:"course_id" json:"course_id"`
	SubjectName string `db:"subject_name" json:"subject_name"`
}
