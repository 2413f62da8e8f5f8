package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{courseID}", h.getCourse)
	})

	// routes guarded by basic authentication
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Get("/users", h.listUsers)
		r.Post("/courses", h.createCourse)
		r.Put("/courses/{courseID}", h.updateCourse)
		r.Delete("/courses/{courseID}", h.deleteCourse)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
