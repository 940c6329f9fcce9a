package model

import "time"

// Course represents an academic program students are enrolled in.
// Name and acronym are unique across courses.
type Course struct {
	ID        int       `json:"course_id"`
	Name      string    `json:"course_name"`
	Acronym   string    `json:"acronym"`
	Logo      *string   `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a new course.
// The optional logo arrives as a multipart file, not part of this struct.
type CreateCourseRequest struct {
	Name    string `json:"course_name" form:"course_name" binding:"required,min=2,max=150"`
	Acronym string `json:"acronym" form:"acronym" binding:"required,min=2,max=20"`
}
