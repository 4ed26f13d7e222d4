package models

type User struct {
	BaseModelWithDeleted
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'renter'" json:"role"`
	Status       bool     `gorm:"not null;default:true" json:"status"`

	// Relations
	Properties []Property `gorm:"foreignKey:HostID" json:"properties,omitempty"`
	Bookings   []Booking  `gorm:"foreignKey:RenterID" json:"bookings,omitempty"`
}
