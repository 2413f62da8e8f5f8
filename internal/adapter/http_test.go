package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, srv *httptest.Server) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://tracker.example.com/", want: "https://tracker.example.com"},
		{name: "surrounding spaces", raw: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		// registration must stay anonymous
		_, _, hasAuth := r.BasicAuth()
		assert.False(t, hasAuth)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "joe@smith.com", user.EmailAddress)

		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetCredentials("joe@smith.com", "joepassword")

	err := a.RegisterUser(context.Background(), models.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	})
	require.NoError(t, err)
}

func TestListUsers_SendsBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, hasAuth := r.BasicAuth()
		require.True(t, hasAuth)
		assert.Equal(t, "joe@smith.com", email)
		assert.Equal(t, "joepassword", password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.User{{UserID: 1, EmailAddress: email}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetCredentials("joe@smith.com", "joepassword")

	users, err := a.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "joe@smith.com", users[0].EmailAddress)
}

func TestListUsers_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Access Denied"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)

	_, err := a.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateCourse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/courses", r.URL.Path)

		_, _, hasAuth := r.BasicAuth()
		require.True(t, hasAuth)

		var course models.Course
		require.NoError(t, json.NewDecoder(r.Body).Decode(&course))

		w.Header().Set("Location", "/courses/42")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetCredentials("joe@smith.com", "joepassword")

	created, err := a.CreateCourse(context.Background(), models.Course{Title: "t", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.CourseID)
}

func TestCourseIDFromLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     int64
		wantErr  bool
	}{
		{name: "plain", location: "/courses/42", want: 42},
		{name: "trailing slash", location: "/courses/42/", want: 42},
		{name: "missing header", location: "", wantErr: true},
		{name: "wrong path", location: "/users/1", wantErr: true},
		{name: "non-numeric id", location: "/courses/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := courseIDFromLocation(tt.location)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateCourse_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/courses/3", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"not the course owner"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetCredentials("sally@jones.com", "sallypassword")

	err := a.UpdateCourse(context.Background(), models.Course{CourseID: 3, Title: "t", Description: "d"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCourse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/courses/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetCredentials("joe@smith.com", "joepassword")

	require.NoError(t, a.DeleteCourse(context.Background(), 3))
}

func TestGetCourse_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"course not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)

	_, err := a.GetCourse(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}
