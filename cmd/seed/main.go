// Command seed populates a running course tracker server with demo accounts
// and courses over its public HTTP API. It is idempotent in practice: signup
// of an already-registered email fails validation and is reported but does
// not stop the remaining seed data from being applied.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/MKhiriev/go-course-tracker/internal/adapter"
	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/models"
)

type seedUser struct {
	user     models.User
	password string
	courses  []models.Course
}

func strPtr(s string) *string { return &s }

var seedUsers = []seedUser{
	{
		user: models.User{
			FirstName:    "Joe",
			LastName:     "Smith",
			EmailAddress: "joe@smith.com",
		},
		password: "joepassword",
		courses: []models.Course{
			{
				Title:           "Build a Basic Bookcase",
				Description:     "High-end furniture projects are great to dream about. But unless you have a well-equipped shop and some serious woodworking experience to draw on, it can be difficult to turn the dream into a reality.",
				EstimatedTime:   strPtr("12 hours"),
				MaterialsNeeded: strPtr("* 1/2 x 3/4 inch parting strip\n* 1 x 2 common pine\n* 1 x 4 common pine\n* 1 x 10 common pine"),
			},
		},
	},
	{
		user: models.User{
			FirstName:    "Sally",
			LastName:     "Jones",
			EmailAddress: "sally@jones.com",
		},
		password: "sallypassword",
		courses: []models.Course{
			{
				Title:         "Learn How to Program",
				Description:   "In this course, you'll learn how to write code like a pro!",
				EstimatedTime: strPtr("6 hours"),
			},
			{
				Title:       "Learn How to Test Programs",
				Description: "In this course, you'll learn how to test programs.",
			},
		},
	},
}

func main() {
	address := flag.String("a", "localhost:8080", "Server address")
	requestTimeout := flag.Duration("request-timeout", 10*time.Second, "HTTP request timeout")
	flag.Parse()

	log := logger.NewLogger("course-tracker-seed")

	api, err := adapter.NewHTTPServerAdapter(*address, *requestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	ctx := context.Background()

	for _, seed := range seedUsers {
		seed.user.Password = seed.password

		if err := api.RegisterUser(ctx, seed.user); err != nil {
			log.Err(err).Str("emailAddress", seed.user.EmailAddress).Msg("signup failed, skipping user's courses")
			continue
		}
		log.Info().Str("emailAddress", seed.user.EmailAddress).Msg("user registered")

		api.SetCredentials(seed.user.EmailAddress, seed.password)

		for _, course := range seed.courses {
			createdCourse, err := api.CreateCourse(ctx, course)
			if err != nil {
				log.Err(err).Str("title", course.Title).Msg("course creation failed")
				continue
			}
			log.Info().Int64("courseID", createdCourse.CourseID).Str("title", createdCourse.Title).Msg("course created")
		}
	}
}
