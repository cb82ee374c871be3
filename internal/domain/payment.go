package domain

// PaymentMethod enumerates accepted checkout methods.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// ValidPaymentMethod reports whether the method is one the checkout accepts.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodTransfer:
		return true
	}
	return false
}

// PaymentStatus enumerates settlement outcomes.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment records one checkout settlement for a booking.
type Payment struct {
	ID            string        `json:"_id"`
	Booking       *Booking      `json:"booking,omitempty"`
	Customer      *Customer     `json:"customer,omitempty"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentDate   string        `json:"paymentDate,omitempty"`
}
