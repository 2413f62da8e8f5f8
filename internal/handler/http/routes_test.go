package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/service"
	"github.com/MKhiriev/go-course-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter builds a fully wired chi router backed by permissive mocks: every
// service call succeeds and authentication accepts any parseable credentials.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
				return joe, nil
			},
		},
		UserService: &mockUserService{
			registerFn: func(_ context.Context, u models.User) (models.User, error) {
				u.UserID = 1
				return u, nil
			},
			listUsersFn: func(_ context.Context) ([]models.User, error) {
				return []models.User{joe}, nil
			},
		},
		CourseService: &mockCourseService{
			listCoursesFn: func(_ context.Context) ([]models.Course, error) {
				// a nil slice is what the repository yields for zero rows
				return nil, nil
			},
			getCourseFn: func(_ context.Context, courseID int64) (models.Course, error) {
				return models.Course{CourseID: courseID, UserID: joe.UserID, Title: "t", User: &joe}, nil
			},
			createCourseFn: func(_ context.Context, _ models.User, course models.Course) (models.Course, error) {
				course.CourseID = 1
				return course, nil
			},
			updateCourseFn: func(_ context.Context, _ models.User, _ models.Course) error {
				return nil
			},
			deleteCourseFn: func(_ context.Context, _ models.User, _ int64) error {
				return nil
			},
		},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

// TestRoutes_AuthEnforcement walks the whole HTTP surface and checks which
// routes demand credentials.
func TestRoutes_AuthEnforcement(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method        string
		target        string
		body          string
		noAuthStatus  int
		withAuthState int
	}{
		{http.MethodGet, "/courses", "", http.StatusOK, http.StatusOK},
		{http.MethodGet, "/courses/1", "", http.StatusOK, http.StatusOK},
		{http.MethodPost, "/users", `{"firstName":"a"}`, http.StatusCreated, http.StatusCreated},
		{http.MethodGet, "/users", "", http.StatusUnauthorized, http.StatusOK},
		{http.MethodPost, "/courses", `{"title":"t","description":"d"}`, http.StatusUnauthorized, http.StatusCreated},
		{http.MethodPut, "/courses/1", `{"title":"t","description":"d"}`, http.StatusUnauthorized, http.StatusNoContent},
		{http.MethodDelete, "/courses/1", "", http.StatusUnauthorized, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			// without credentials
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.noAuthStatus, rec.Code, "without credentials")

			// with credentials
			req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Authorization", basicHeader("joe@smith.com", "joepassword"))
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.withAuthState, rec.Code, "with credentials")
		})
	}
}

// TestRoutes_UnsupportedMethodHidden verifies that an unsupported method on a
// known path yields 404 rather than chi's default 405.
func TestRoutes_UnsupportedMethodHidden(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRoutes_TraceIDPropagated verifies that a caller-supplied trace id is
// echoed back and a missing one is generated.
func TestRoutes_TraceIDPropagated(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
