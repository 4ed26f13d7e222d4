package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"stayhub_backend/internal/email"
	"stayhub_backend/internal/logger"
	"stayhub_backend/internal/models"
	"stayhub_backend/internal/repositories"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/pkg/apperrors"
)

const bookingDateLayout = "2006-01-02"

type BookingService interface {
	CreateBooking(db *gorm.DB, renterID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetRenterBookings(db *gorm.DB, renterID string) ([]*dto.BookingResponse, error)
	GetHostBookings(db *gorm.DB, hostID string) ([]*dto.BookingResponse, error)
	UpdateBookingStatus(db *gorm.DB, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	CheckIn(db *gorm.DB, bookingID string) (*dto.BookingResponse, error)
}

type bookingService struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	mailer       email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	mailer email.Provider,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		mailer:       mailer,
	}
}

// CreateBooking places a pending booking after checking the requested range
// against the renter's confirmed bookings on the same property. Lookup,
// overlap check and insert run in one transaction under a property row lock,
// so two concurrent requests for the same range cannot both pass the check.
func (s *bookingService) CreateBooking(db *gorm.DB, renterID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	checkIn, err := time.Parse(bookingDateLayout, req.CheckIn)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid check-in date")
	}
	checkOut, err := time.Parse(bookingDateLayout, req.CheckOut)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid check-out date")
	}
	if checkOut.Before(checkIn) {
		return nil, apperrors.NewBadRequestError("Check-out date must not be before check-in date")
	}

	booking := &models.Booking{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     models.BookingStatusPending,
		Message:    req.Message,
		RenterID:   renterID,
		PropertyID: req.PropertyID,
	}

	err = s.bookingRepo.Transaction(db, func(tx *gorm.DB) error {
		property, err := s.propertyRepo.FindActiveByIDForUpdate(tx, req.PropertyID)
		if err != nil {
			if errors.Is(err, repositories.ErrPropertyNotFound) {
				return apperrors.ErrPropertyNotFound
			}
			return apperrors.InternalError(err)
		}

		overlaps, err := s.bookingRepo.HasConfirmedOverlap(tx, req.PropertyID, renterID, checkIn, checkOut)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if overlaps {
			return apperrors.ErrBookingOverlap
		}

		if err := s.bookingRepo.Create(tx, booking); err != nil {
			return apperrors.InternalError(err)
		}
		booking.Property = property
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewBookingResponse(booking), nil
}

func (s *bookingService) GetRenterBookings(db *gorm.DB, renterID string) ([]*dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByRenter(db, renterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewBookingListResponse(bookings), nil
}

func (s *bookingService) GetHostBookings(db *gorm.DB, hostID string) ([]*dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByHost(db, hostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewBookingListResponse(bookings), nil
}

// UpdateBookingStatus moves the booking to confirmed. The requested status is
// validated against the known set but only decides whether the confirmation
// email goes out; the stored status is always confirmed.
func (s *bookingService) UpdateBookingStatus(db *gorm.DB, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	booking, err := s.findBooking(db, bookingID)
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusConfirmed
	if err := s.bookingRepo.Save(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Status == string(models.BookingStatusConfirmed) {
		s.dispatchConfirmation(booking)
	}

	return dto.NewBookingResponse(booking), nil
}

// CheckIn requires a confirmed booking; any other status is rejected.
func (s *bookingService) CheckIn(db *gorm.DB, bookingID string) (*dto.BookingResponse, error) {
	booking, err := s.findBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, apperrors.ErrBookingNotConfirmed
	}

	booking.Status = models.BookingStatusCheckedIn
	if err := s.bookingRepo.Save(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewBookingResponse(booking), nil
}

func (s *bookingService) findBooking(db *gorm.DB, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return booking, nil
}

// dispatchConfirmation sends the confirmation email in the background.
// Delivery is best-effort: failures are logged and never affect the response.
func (s *bookingService) dispatchConfirmation(booking *models.Booking) {
	if booking.Renter == nil {
		logger.Warn("booking confirmation skipped, renter not loaded", "booking_id", booking.ID)
		return
	}

	data := email.BookingConfirmationData{
		Email:        booking.Renter.Email,
		Name:         booking.Renter.Name,
		StartingDate: booking.CheckIn.Format("Mon Jan 02 2006"),
		EndingDate:   booking.CheckOut.Format("Mon Jan 02 2006"),
	}

	go func() {
		if err := s.mailer.SendBookingConfirmation(data); err != nil {
			logger.WithError(err).Warn("booking confirmation email failed",
				"booking_id", booking.ID,
				"to", data.Email,
			)
		}
	}()
}
