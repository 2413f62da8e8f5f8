package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/internal/validators"
	"github.com/MKhiriev/go-course-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
// It handles account signup (validation, password hashing, persistence) and
// account listing.
type userService struct {
	// userRepository is the data-access layer used to create and list users.
	userRepository store.UserRepository

	// validator aggregates all signup field failures before reporting.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor used when hashing passwords.
	// Values below bcrypt.MinCost fall back to bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and validator. bcryptCost below bcrypt.MinCost selects the library default.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, bcryptCost int, logger *logger.Logger) UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// All field rules are evaluated before reporting; on any failure the
// aggregated [validators.ValidationErrors] is returned and nothing is
// persisted. The password hash is computed exactly once here, at
// account-creation time, from the submitted plaintext.
func (u *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("emailAddress", user.EmailAddress).Msg("invalid signup payload")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), u.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user.Password = ""
	user.PasswordHash = string(hash)

	registeredUser, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("emailAddress", user.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// ListUsers returns every stored user record. Callers are responsible for
// excluding credential fields from any outbound representation.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
