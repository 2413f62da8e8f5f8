package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.write(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("emailAddress", registeredUser.EmailAddress).Msg("user registered")

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.writeError(w, err)
		return
	}

	// password hashes never leave the server
	public := make([]models.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	h.write(w, public, http.StatusOK)
}
