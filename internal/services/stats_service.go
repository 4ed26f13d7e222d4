package services

import (
	"gorm.io/gorm"

	"stayhub_backend/internal/repositories"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/pkg/apperrors"
)

type StatsService interface {
	GetHostStats(db *gorm.DB, hostID string) (*dto.HostStatsResponse, error)
}

type statsService struct {
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
	bookingRepo  repositories.BookingRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	propertyRepo repositories.PropertyRepository,
	bookingRepo repositories.BookingRepository,
) StatsService {
	return &statsService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
	}
}

// GetHostStats aggregates the host dashboard counters. The user count is
// platform-wide; the rest is host-scoped. Revenue counts the property price
// once per confirmed booking; a host with no data gets zeros.
func (s *statsService) GetHostStats(db *gorm.DB, hostID string) (*dto.HostStatsResponse, error) {
	users, err := s.userRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	properties, err := s.propertyRepo.CountByHost(db, hostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	bookings, err := s.bookingRepo.CountByHost(db, hostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	revenue, err := s.bookingRepo.SumConfirmedRevenueByHost(db, hostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.HostStatsResponse{
		UserCount:     users,
		PropertyCount: properties,
		BookingCount:  bookings,
		TotalRevenue:  revenue,
	}, nil
}
