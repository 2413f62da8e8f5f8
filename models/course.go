package models

import "time"

// Course represents a single course record owned by exactly one user.
type Course struct {
	// CourseID is the internal unique identifier of the course.
	CourseID int64 `json:"id"`

	// UserID references the owning user. It is required and always resolves
	// to an existing user record (enforced by the schema).
	UserID int64 `json:"userId"`

	// Title is the course title. Required and non-blank.
	Title string `json:"title"`

	// Description is the course description. Required and non-blank.
	Description string `json:"description"`

	// EstimatedTime is an optional free-form duration hint (e.g. "12 hours").
	EstimatedTime *string `json:"estimatedTime,omitempty"`

	// MaterialsNeeded is an optional free-form list of required materials.
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`

	// CreatedAt and UpdatedAt are persistence timestamps. They are excluded
	// from API responses.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// User is the embedded owner, populated on reads. The owner's password
	// hash and timestamps are excluded by the User JSON mapping.
	User *User `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
