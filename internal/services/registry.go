package services

import (
	"stayhub_backend/internal/email"
	"stayhub_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repositories.
type ServiceContainer struct {
	Auth     AuthService
	User     UserService
	Property PropertyService
	Booking  BookingService
	Stats    StatsService
}

func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	propertyRepo := repositories.NewPropertyRepository()
	bookingRepo := repositories.NewBookingRepository()

	return &ServiceContainer{
		Auth:     NewAuthService(userRepo),
		User:     NewUserService(userRepo),
		Property: NewPropertyService(propertyRepo),
		Booking:  NewBookingService(bookingRepo, propertyRepo, mailer),
		Stats:    NewStatsService(userRepo, propertyRepo, bookingRepo),
	}
}
