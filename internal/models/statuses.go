package models

type UserRole string
type BookingStatus string

const (
	UserRoleHost   UserRole = "host"
	UserRoleRenter UserRole = "renter"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
)
