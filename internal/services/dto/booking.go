package dto

import (
	"time"

	"stayhub_backend/internal/models"
)

type CreateBookingRequest struct {
	PropertyID string `json:"propertyId" validate:"required,uuid"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Message    string `json:"message" validate:"max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	CheckIn   time.Time            `json:"checkIn"`
	CheckOut  time.Time            `json:"checkOut"`
	Status    models.BookingStatus `json:"status"`
	Message   string               `json:"message"`
	Property  *PropertyResponse    `json:"property,omitempty"`
	Renter    *UserResponse        `json:"renter,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

func NewBookingResponse(booking *models.Booking) *BookingResponse {
	if booking == nil {
		return nil
	}
	return &BookingResponse{
		ID:        booking.ID,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Status:    booking.Status,
		Message:   booking.Message,
		Property:  NewPropertyResponse(booking.Property),
		Renter:    NewUserResponse(booking.Renter),
		CreatedAt: booking.CreatedAt,
	}
}

func NewBookingListResponse(bookings []models.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}
