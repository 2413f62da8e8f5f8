package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-tracker/internal/service"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/internal/utils"
	"github.com/MKhiriev/go-course-tracker/internal/validators"
	"github.com/MKhiriev/go-course-tracker/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingCredentials: http.StatusUnauthorized,
	service.ErrWrongPassword:      http.StatusUnauthorized,
	service.ErrNotCourseOwner:     http.StatusForbidden,
	service.ErrHashingPassword:    http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCourseNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError resolves err to an HTTP status code together with the
// sentinel it matched, so that responses carry the sentinel's stable message
// instead of the full wrapped error chain.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, err
}

// writeError translates a service or store error into an HTTP response.
//
// Validation failures are reported as 400 with the full ordered list of
// messages. Authentication failures always carry the same generic body.
// Everything else is mapped through errorStatusMap; errors that resolve to
// 500 never leak their text to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErrors validators.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.write(w, models.ValidationErrorResponse{Errors: validationErrors.Messages()}, http.StatusBadRequest)
		return
	}

	status, sentinel := statusFromError(err)

	var message string
	switch {
	case status == http.StatusUnauthorized:
		message = accessDeniedMessage
	case status >= http.StatusInternalServerError:
		message = http.StatusText(status)
	default:
		message = sentinel.Error()
	}

	h.write(w, models.ErrorResponse{Message: message}, status)
}

func (h *Handler) write(w http.ResponseWriter, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		h.logger.Err(err).Msg("error writing response")
	}
}
