package models

import "gorm.io/datatypes"

type Property struct {
	BaseModelWithDeleted
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Location    string                      `gorm:"not null" json:"location"`
	Price       float64                     `gorm:"type:decimal(10,2);not null" json:"price"`
	Status      bool                        `gorm:"not null;default:true" json:"status"`
	Amenities   string                      `json:"amenities"`
	Thumbnail   string                      `gorm:"not null" json:"thumbnail"`
	Gallery     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"gallery"`
	HostID      string                      `gorm:"type:uuid;not null;index" json:"host_id"`

	// Relations
	Host     *User     `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PropertyID" json:"bookings,omitempty"`
}
