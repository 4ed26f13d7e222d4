package handlers

import (
	"stayhub_backend/internal/services"
	"stayhub_backend/internal/storage"
)

// AppHandlers groups every HTTP handler behind one wiring point.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Booking  *BookingHandler
	Stats    *StatsHandler
	File     *FileHandler
}

func NewAppHandlers(container *services.ServiceContainer, store storage.Storage) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		Auth:     NewAuthHandler(base, container.Auth),
		User:     NewUserHandler(base, container.User),
		Property: NewPropertyHandler(base, container.Property, store),
		Booking:  NewBookingHandler(base, container.Booking),
		Stats:    NewStatsHandler(base, container.Stats),
		File:     NewFileHandler(base, store),
	}
}
