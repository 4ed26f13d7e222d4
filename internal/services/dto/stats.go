package dto

type HostStatsResponse struct {
	UserCount     int64   `json:"userCount"`
	PropertyCount int64   `json:"propertyCount"`
	BookingCount  int64   `json:"bookingCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
