package service

import (
	"github.com/MKhiriev/go-course-tracker/internal/config"
	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/internal/validators"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	CourseService CourseService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator(storages.UserRepository)
	courseValidator := validators.NewCourseValidator()

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, logger),
		UserService:   NewUserService(storages.UserRepository, userValidator, cfg.BcryptCost, logger),
		CourseService: NewCourseService(storages.CourseRepository, courseValidator, logger),
	}
}
