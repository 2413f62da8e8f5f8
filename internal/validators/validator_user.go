package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/models"
)

const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"
)

// Validation failure messages for signup payloads, in rule evaluation order.
const (
	MsgFirstNameRequired = "firstName is required"
	MsgLastNameRequired  = "lastName is required"
	MsgEmailRequired     = "emailAddress is required"
	MsgEmailInvalid      = "emailAddress must be a valid email address"
	MsgEmailTaken        = "emailAddress is already in use"
	MsgPasswordRequired  = "password is required"
	MsgPasswordTooLong   = "password must be at most 72 bytes"
)

// maxPasswordBytes is the bcrypt input limit; longer passwords are rejected
// by the hashing step, so they must fail validation first.
const maxPasswordBytes = 72

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserValidator validates signup payloads. The email uniqueness rule performs
// a storage lookup, so Validate must be called with a request-scoped context.
type UserValidator struct {
	users store.UserRepository
}

func NewUserValidator(users store.UserRepository) Validator {
	return &UserValidator{users: users}
}

// Validate checks a [models.User] signup payload. Every rule is evaluated;
// failures are aggregated into a [ValidationErrors] value in field order.
// A storage fault during the uniqueness lookup is returned as a plain error,
// distinct from validation failure.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	var messages ValidationErrors

	check := fieldSet(fields)

	if check(FieldFirstName) && isBlank(user.FirstName) {
		messages = append(messages, MsgFirstNameRequired)
	}

	if check(FieldLastName) && isBlank(user.LastName) {
		messages = append(messages, MsgLastNameRequired)
	}

	if check(FieldEmailAddress) {
		switch {
		case isBlank(user.EmailAddress):
			messages = append(messages, MsgEmailRequired)
		case !emailPattern.MatchString(user.EmailAddress):
			messages = append(messages, MsgEmailInvalid)
		default:
			exists, err := v.users.EmailExists(ctx, user.EmailAddress)
			if err != nil {
				return fmt.Errorf("email uniqueness lookup failed: %w", err)
			}
			if exists {
				messages = append(messages, MsgEmailTaken)
			}
		}
	}

	if check(FieldPassword) {
		switch {
		case isBlank(user.Password):
			messages = append(messages, MsgPasswordRequired)
		case len(user.Password) > maxPasswordBytes:
			messages = append(messages, MsgPasswordTooLong)
		}
	}

	if len(messages) > 0 {
		return messages
	}

	return nil
}

// fieldSet returns a predicate reporting whether the given field should be
// validated. An empty fields list means all fields.
func fieldSet(fields []string) func(string) bool {
	if len(fields) == 0 {
		return func(string) bool { return true }
	}

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
