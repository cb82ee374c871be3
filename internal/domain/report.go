package domain

// DashboardReport aggregates platform-wide figures for the admin dashboard.
type DashboardReport struct {
	TotalHouses    int       `json:"totalHouses"`
	TotalBookings  int       `json:"totalBookings"`
	TotalCustomers int       `json:"totalCustomers"`
	TotalRevenue   float64   `json:"totalRevenue"`
	RecentBookings []Booking `json:"recentBookings"`
}

// LandlordStats aggregates per-landlord portfolio figures.
type LandlordStats struct {
	TotalHouses        int     `json:"totalHouses"`
	RentedHouses       int     `json:"rentedHouses"`
	VacantHouses       int     `json:"vacantHouses"`
	UnpaidRentCount    int     `json:"unpaidRentCount"`
	ExpectedIncome     float64 `json:"expectedIncome"`
	CollectedThisMonth float64 `json:"collectedThisMonth"`
}

// Tenant is a landlord-scoped view of an active booking.
type Tenant struct {
	ID        string    `json:"_id"`
	Customer  *Customer `json:"customer,omitempty"`
	House     *House    `json:"house,omitempty"`
	StartDate string    `json:"startDate"`
	Status    string    `json:"status,omitempty"`
}
