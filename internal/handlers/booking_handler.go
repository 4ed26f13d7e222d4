package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub_backend/internal/services"
	"stayhub_backend/internal/services/dto"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{BaseHandler: base, bookingService: bookingService}
}

// CreateBooking godoc
// @Summary Book a property
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking data"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Security BearerAuth
// @Router /booking [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	renterID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.CreateBooking(h.GetDB(c), renterID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusCreated, "Booking created", "booking", booking)
}

// GetRenterBookings godoc
// @Summary List the authenticated renter's bookings
// @Tags booking
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /booking [get]
func (h *BookingHandler) GetRenterBookings(c *gin.Context) {
	renterID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.GetRenterBookings(h.GetDB(c), renterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Bookings retrieved", "bookings", bookings)
}

// GetHostBookings godoc
// @Summary List bookings on the authenticated host's properties
// @Tags booking
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /booking/host [get]
func (h *BookingHandler) GetHostBookings(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.GetHostBookings(h.GetDB(c), hostID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Bookings retrieved", "bookings", bookings)
}

// UpdateBookingStatus godoc
// @Summary Confirm a booking
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Requested status"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /booking/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Booking status updated", "booking", booking)
}

// CheckIn godoc
// @Summary Check in to a confirmed booking
// @Tags booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /booking/{id}/check-in [patch]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	booking, err := h.bookingService.CheckIn(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Checked in", "booking", booking)
}
