package dto

import (
	"time"

	"stayhub_backend/internal/models"
)

type CreatePropertyRequest struct {
	Title       string  `form:"title" validate:"required,min=3,max=200"`
	Description string  `form:"description" validate:"required"`
	Location    string  `form:"location" validate:"required"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Amenities   string  `form:"amenities"`
}

type UpdatePropertyRequest struct {
	Title       *string  `form:"title" validate:"omitempty,min=3,max=200"`
	Description *string  `form:"description"`
	Location    *string  `form:"location"`
	Price       *float64 `form:"price" validate:"omitempty,gt=0"`
	Amenities   *string  `form:"amenities"`
	Status      *bool    `form:"status"`
}

type SearchPropertiesRequest struct {
	Search string `form:"search"`
}

type PropertyResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Price       float64       `json:"price"`
	Status      bool          `json:"status"`
	Amenities   string        `json:"amenities"`
	Thumbnail   string        `json:"thumbnail"`
	Gallery     []string      `json:"gallery"`
	Host        *UserResponse `json:"host,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func NewPropertyResponse(property *models.Property) *PropertyResponse {
	if property == nil {
		return nil
	}
	return &PropertyResponse{
		ID:          property.ID,
		Title:       property.Title,
		Description: property.Description,
		Location:    property.Location,
		Price:       property.Price,
		Status:      property.Status,
		Amenities:   property.Amenities,
		Thumbnail:   property.Thumbnail,
		Gallery:     []string(property.Gallery),
		Host:        NewUserResponse(property.Host),
		CreatedAt:   property.CreatedAt,
	}
}

func NewPropertyListResponse(properties []models.Property) []*PropertyResponse {
	out := make([]*PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, NewPropertyResponse(&properties[i]))
	}
	return out
}

type PropertyDetailResponse struct {
	Property *PropertyResponse   `json:"property"`
	Related  []*PropertyResponse `json:"related"`
}
