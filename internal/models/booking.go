package models

import "time"

type Booking struct {
	BaseModelWithDeleted
	CheckIn    time.Time     `gorm:"type:date;not null" json:"check_in"`
	CheckOut   time.Time     `gorm:"type:date;not null" json:"check_out"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Message    string        `gorm:"type:text" json:"message"`
	RenterID   string        `gorm:"type:uuid;not null;index" json:"renter_id"`
	PropertyID string        `gorm:"type:uuid;not null;index" json:"property_id"`

	// Relations
	Renter   *User     `gorm:"foreignKey:RenterID" json:"renter,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
