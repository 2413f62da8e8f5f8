package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It resolves credentials against the user repository and verifies the
// submitted secret with bcrypt.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate resolves the submitted credentials to a stored user.
//
// The email lookup is exact and case-sensitive. The password comparison uses
// bcrypt's constant-effort CompareHashAndPassword; the plaintext secret is
// never logged or persisted.
//
// Returns the authenticated user record or:
//   - ErrMissingCredentials if the identifier or secret is empty.
//   - A wrapped storage error if the lookup fails (e.g. no account — see
//     store.ErrUserNotFound). Diagnostics reference the SUBMITTED identifier,
//     never fields of a record that was not found.
//   - ErrWrongPassword if the hash comparison fails.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.EmailAddress == "" || credentials.Password == "" {
		log.Error().Str("emailAddress", credentials.EmailAddress).Msg("empty credentials submitted")
		return models.User{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.EmailAddress)
	if err != nil {
		log.Err(err).Str("emailAddress", credentials.EmailAddress).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("emailAddress", foundUser.EmailAddress).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
