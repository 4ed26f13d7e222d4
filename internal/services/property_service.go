package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayhub_backend/internal/models"
	"stayhub_backend/internal/repositories"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/pkg/apperrors"
)

// relatedLimit caps the related listings returned with a property detail.
const relatedLimit = 2

type PropertyService interface {
	CreateProperty(db *gorm.DB, hostID string, req *dto.CreatePropertyRequest, thumbnail string, gallery []string) (*dto.PropertyResponse, error)
	GetProperty(db *gorm.DB, id string) (*dto.PropertyDetailResponse, error)
	ListProperties(db *gorm.DB) ([]*dto.PropertyResponse, error)
	SearchProperties(db *gorm.DB, query string) ([]*dto.PropertyResponse, error)
	GetHostProperties(db *gorm.DB, hostID string) ([]*dto.PropertyResponse, error)
	UpdateProperty(db *gorm.DB, hostID, id string, req *dto.UpdatePropertyRequest, thumbnail string, gallery []string) (*dto.PropertyResponse, error)
	DeleteProperty(db *gorm.DB, hostID, id string) error
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
}

func NewPropertyService(propertyRepo repositories.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) CreateProperty(db *gorm.DB, hostID string, req *dto.CreatePropertyRequest, thumbnail string, gallery []string) (*dto.PropertyResponse, error) {
	property := &models.Property{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Amenities:   req.Amenities,
		Thumbnail:   thumbnail,
		Gallery:     datatypes.NewJSONSlice(gallery),
		Status:      true,
		HostID:      hostID,
	}

	if err := s.propertyRepo.Create(db, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyResponse(property), nil
}

// GetProperty returns an active listing together with a short list of other
// active listings for the detail page.
func (s *propertyService) GetProperty(db *gorm.DB, id string) (*dto.PropertyDetailResponse, error) {
	property, err := s.propertyRepo.FindActiveByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	related, err := s.propertyRepo.FindRelated(db, id, relatedLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PropertyDetailResponse{
		Property: dto.NewPropertyResponse(property),
		Related:  dto.NewPropertyListResponse(related),
	}, nil
}

func (s *propertyService) ListProperties(db *gorm.DB) ([]*dto.PropertyResponse, error) {
	properties, err := s.propertyRepo.FindAllActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyListResponse(properties), nil
}

func (s *propertyService) SearchProperties(db *gorm.DB, query string) ([]*dto.PropertyResponse, error) {
	if query == "" {
		return s.ListProperties(db)
	}
	properties, err := s.propertyRepo.Search(db, query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyListResponse(properties), nil
}

func (s *propertyService) GetHostProperties(db *gorm.DB, hostID string) ([]*dto.PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByHost(db, hostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyListResponse(properties), nil
}

func (s *propertyService) UpdateProperty(db *gorm.DB, hostID, id string, req *dto.UpdatePropertyRequest, thumbnail string, gallery []string) (*dto.PropertyResponse, error) {
	property, err := s.findOwnedProperty(db, hostID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Amenities != nil {
		property.Amenities = *req.Amenities
	}
	if req.Status != nil {
		property.Status = *req.Status
	}
	if thumbnail != "" {
		property.Thumbnail = thumbnail
	}
	if len(gallery) > 0 {
		property.Gallery = datatypes.NewJSONSlice(gallery)
	}

	if err := s.propertyRepo.Save(db, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyResponse(property), nil
}

func (s *propertyService) DeleteProperty(db *gorm.DB, hostID, id string) error {
	if _, err := s.findOwnedProperty(db, hostID, id); err != nil {
		return err
	}
	if err := s.propertyRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *propertyService) findOwnedProperty(db *gorm.DB, hostID, id string) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if property.HostID != hostID {
		return nil, apperrors.ErrNotPropertyOwner
	}
	return property, nil
}
