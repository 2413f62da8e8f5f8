package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/internal/utils"
	"github.com/MKhiriev/go-course-tracker/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courses, err := h.services.CourseService.ListCourses(ctx)
	if err != nil {
		log.Err(err).Msg("listing courses failed")
		h.writeError(w, err)
		return
	}

	// an empty table must serialize as [], not null
	if courses == nil {
		courses = []models.Course{}
	}

	h.write(w, courses, http.StatusOK)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid course id")
		h.writeError(w, store.ErrCourseNotFound)
		return
	}

	course, err := h.services.CourseService.GetCourse(ctx, courseID)
	if err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("getting course failed")
		h.writeError(w, err)
		return
	}

	h.write(w, course, http.StatusOK)
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.UserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		h.accessDenied(w)
		return
	}

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.write(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdCourse, err := h.services.CourseService.CreateCourse(ctx, principal, course)
	if err != nil {
		log.Err(err).Msg("course creation failed")
		h.writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/courses/%d", createdCourse.CourseID))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.UserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		h.accessDenied(w)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid course id")
		h.writeError(w, store.ErrCourseNotFound)
		return
	}

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.write(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// the path, not the payload, identifies the target course
	course.CourseID = courseID

	if err := h.services.CourseService.UpdateCourse(ctx, principal, course); err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("course update failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.UserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		h.accessDenied(w)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid course id")
		h.writeError(w, store.ErrCourseNotFound)
		return
	}

	if err := h.services.CourseService.DeleteCourse(ctx, principal, courseID); err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("course deletion failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// courseIDFromRequest parses the {courseID} URL parameter. A value that is
// not a positive integer is indistinguishable from a missing course as far
// as the client is concerned.
func courseIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
}
