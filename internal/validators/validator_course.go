package validators

import (
	"context"

	"github.com/MKhiriev/go-course-tracker/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Validation failure messages for course payloads, in rule evaluation order.
const (
	MsgTitleRequired       = "title is required"
	MsgDescriptionRequired = "description is required"
)

// CourseValidator validates course create/update payloads.
type CourseValidator struct {
}

func NewCourseValidator() Validator {
	return &CourseValidator{}
}

// Validate checks a [models.Course] payload. Every rule is evaluated;
// failures are aggregated into a [ValidationErrors] value in field order.
func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Course:
		return v.validateCourse(ctx, value, fields...)
	case *models.Course:
		return v.validateCourse(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CourseValidator) validateCourse(_ context.Context, course models.Course, fields ...string) error {
	var messages ValidationErrors

	check := fieldSet(fields)

	if check(FieldTitle) && isBlank(course.Title) {
		messages = append(messages, MsgTitleRequired)
	}

	if check(FieldDescription) && isBlank(course.Description) {
		messages = append(messages, MsgDescriptionRequired)
	}

	if len(messages) > 0 {
		return messages
	}

	return nil
}
