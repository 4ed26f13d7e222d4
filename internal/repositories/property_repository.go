package repositories

import (
	"errors"

	"stayhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyRepository interface {
	Create(db *gorm.DB, property *models.Property) error
	FindByID(db *gorm.DB, id string) (*models.Property, error)
	FindActiveByID(db *gorm.DB, id string) (*models.Property, error)
	FindActiveByIDForUpdate(db *gorm.DB, id string) (*models.Property, error)
	FindAllActive(db *gorm.DB) ([]models.Property, error)
	Search(db *gorm.DB, search string) ([]models.Property, error)
	FindByHost(db *gorm.DB, hostID string) ([]models.Property, error)
	FindRelated(db *gorm.DB, excludeID string, limit int) ([]models.Property, error)
	Save(db *gorm.DB, property *models.Property) error
	Delete(db *gorm.DB, id string) error
	CountByHost(db *gorm.DB, hostID string) (int64, error)
}

type PropertyRepositoryImpl struct{}

func NewPropertyRepository() PropertyRepository {
	return &PropertyRepositoryImpl{}
}

func (r *PropertyRepositoryImpl) Create(db *gorm.DB, property *models.Property) error {
	return db.Create(property).Error
}

func (r *PropertyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	err := db.Preload("Host").First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	err := db.Preload("Host").First(&property, "id = ? AND status = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// FindActiveByIDForUpdate takes a row lock on the property so concurrent
// booking attempts against it are serialized. Must run inside a transaction.
func (r *PropertyRepositoryImpl) FindActiveByIDForUpdate(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&property, "id = ? AND status = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindAllActive(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	err := db.Preload("Host").
		Where("status = ?", true).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) Search(db *gorm.DB, search string) ([]models.Property, error) {
	var properties []models.Property
	pattern := "%" + search + "%"
	err := db.Preload("Host").
		Where("status = ?", true).
		Where("title ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) FindByHost(db *gorm.DB, hostID string) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) FindRelated(db *gorm.DB, excludeID string, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := db.Preload("Host").
		Where("id != ?", excludeID).
		Where("status = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) Save(db *gorm.DB, property *models.Property) error {
	return db.Save(property).Error
}

func (r *PropertyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepositoryImpl) CountByHost(db *gorm.DB, hostID string) (int64, error) {
	var count int64
	err := db.Model(&models.Property{}).Where("host_id = ?", hostID).Count(&count).Error
	return count, err
}
