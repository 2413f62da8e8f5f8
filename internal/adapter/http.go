package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/utils"
	"github.com/MKhiriev/go-course-tracker/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	emailAddress string
	password     string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter]. It stores the email/password pair
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetCredentials(emailAddress, password string) {
	h.emailAddress = strings.TrimSpace(emailAddress)
	h.password = password
}

// request returns a request builder carrying the stored credentials, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if h.emailAddress != "" {
		r.SetBasicAuth(h.emailAddress, h.password)
	}

	return r
}

// RegisterUser implements [ServerAdapter]. It POSTs the signup payload to
// POST /users. Registration is an anonymous operation, so no credentials are
// attached even when they have been set.
func (h *httpServerAdapter) RegisterUser(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListUsers implements [ServerAdapter]. It GETs /users with the stored
// credentials and returns the decoded account list.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// ListCourses implements [ServerAdapter]. It GETs /courses anonymously.
func (h *httpServerAdapter) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCourse implements [ServerAdapter]. It GETs /courses/{id} anonymously.
func (h *httpServerAdapter) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	var course models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&course).
		Get(fmt.Sprintf("/courses/%d", courseID))
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// CreateCourse implements [ServerAdapter]. It POSTs the course payload to
// POST /courses with the stored credentials. The server responds with an
// empty body, so the created course id is parsed from the Location header.
func (h *httpServerAdapter) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	resp, err := h.request(ctx).
		SetBody(course).
		Post("/courses")
	if err != nil {
		return models.Course{}, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	courseID, err := courseIDFromLocation(resp.Header().Get("Location"))
	if err != nil {
		return models.Course{}, fmt.Errorf("create course response: %w", err)
	}

	course.CourseID = courseID
	return course, nil
}

// courseIDFromLocation parses the course id from a "/courses/{id}" Location
// header value.
func courseIDFromLocation(location string) (int64, error) {
	trimmed := strings.TrimPrefix(strings.TrimRight(location, "/"), "/courses/")
	if trimmed == location || trimmed == "" {
		return 0, fmt.Errorf("unexpected Location header %q", location)
	}

	return strconv.ParseInt(trimmed, 10, 64)
}

// UpdateCourse implements [ServerAdapter]. It PUTs the course payload to
// PUT /courses/{id} with the stored credentials.
func (h *httpServerAdapter) UpdateCourse(ctx context.Context, course models.Course) error {
	resp, err := h.request(ctx).
		SetBody(course).
		Put(fmt.Sprintf("/courses/%d", course.CourseID))
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteCourse implements [ServerAdapter]. It DELETEs /courses/{id} with the
// stored credentials.
func (h *httpServerAdapter) DeleteCourse(ctx context.Context, courseID int64) error {
	resp, err := h.request(ctx).
		Delete(fmt.Sprintf("/courses/%d", courseID))
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}
