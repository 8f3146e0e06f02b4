package dto

type DashboardStatsResponse struct {
	TotalRooms     int     `json:"total_rooms"`
	OccupiedRooms  int     `json:"occupied_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	DailyRevenue   float64 `json:"daily_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TotalCustomers int     `json:"total_customers"`
	TotalBookings  int     `json:"total_bookings"`
}
