package dto

// CreateBookingRequest starts a lease for a house. The lease is open-ended:
// only a start date is collected.
type CreateBookingRequest struct {
	HouseID   string `json:"houseId"`
	StartDate string `json:"startDate"`
}

// PayRequest settles a checkout.
type PayRequest struct {
	BookingID     string `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod"`
}

// EndLeaseRequest confirms the irreversible end of an active lease.
type EndLeaseRequest struct {
	Confirm bool `json:"confirm"`
}
