package repositories

import (
	"errors"
	"time"

	"stayhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	// Transaction runs fn inside a database transaction.
	Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error

	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	FindByRenter(db *gorm.DB, renterID string) ([]models.Booking, error)
	FindByHost(db *gorm.DB, hostID string) ([]models.Booking, error)
	HasConfirmedOverlap(db *gorm.DB, propertyID, renterID string, checkIn, checkOut time.Time) (bool, error)
	Save(db *gorm.DB, booking *models.Booking) error
	CountByHost(db *gorm.DB, hostID string) (int64, error)
	SumConfirmedRevenueByHost(db *gorm.DB, hostID string) (float64, error)
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("Renter").Preload("Property").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByRenter(db *gorm.DB, renterID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Property").Preload("Property.Host").
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// FindByHost returns every booking placed on one of the host's properties.
func (r *BookingRepositoryImpl) FindByHost(db *gorm.DB, hostID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Property").Preload("Property.Host").Preload("Renter").
		Joins("JOIN properties ON properties.id = bookings.property_id AND properties.deleted_at IS NULL").
		Where("properties.host_id = ?", hostID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// HasConfirmedOverlap reports whether a confirmed booking of the same renter
// on the same property intersects [checkIn, checkOut]. Both boundaries are
// inclusive: a stay ending on a date conflicts with one starting on it.
func (r *BookingRepositoryImpl) HasConfirmedOverlap(db *gorm.DB, propertyID, renterID string, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("property_id = ?", propertyID).
		Where("renter_id = ?", renterID).
		Where("status = ?", models.BookingStatusConfirmed).
		Where("check_in <= ? AND check_out >= ?", checkOut, checkIn).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingRepositoryImpl) Save(db *gorm.DB, booking *models.Booking) error {
	return db.Save(booking).Error
}

func (r *BookingRepositoryImpl) CountByHost(db *gorm.DB, hostID string) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Joins("JOIN properties ON properties.id = bookings.property_id AND properties.deleted_at IS NULL").
		Where("properties.host_id = ?", hostID).
		Count(&count).Error
	return count, err
}

// SumConfirmedRevenueByHost sums the property price once per confirmed
// booking on the host's properties.
func (r *BookingRepositoryImpl) SumConfirmedRevenueByHost(db *gorm.DB, hostID string) (float64, error) {
	var total float64
	err := db.Model(&models.Booking{}).
		Select("COALESCE(SUM(properties.price), 0)").
		Joins("JOIN properties ON properties.id = bookings.property_id AND properties.deleted_at IS NULL").
		Where("properties.host_id = ?", hostID).
		Where("bookings.status = ?", models.BookingStatusConfirmed).
		Scan(&total).Error
	return total, err
}
