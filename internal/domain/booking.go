package domain

// BookingStatus enumerates lifecycle states for a booking. Transitions to
// approved are driven server-side; ended is reached through the customer's
// explicit end-lease action and is irreversible.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusEnded     BookingStatus = "ended"
)

// Booking ties a customer to a house for an open-ended lease.
type Booking struct {
	ID            string        `json:"_id"`
	Customer      *Customer     `json:"customer,omitempty"`
	House         *House        `json:"house,omitempty"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate,omitempty"`
	BookingStatus BookingStatus `json:"bookingStatus"`
}
