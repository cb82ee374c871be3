package events

// EventType names a booking-workflow lifecycle event.
type EventType string

const (
	EventBookingCreated  EventType = "booking.created"
	EventPaymentRecorded EventType = "payment.recorded"
	EventLeaseEnded      EventType = "lease.ended"
)

// Event is a published workflow occurrence.
type Event struct {
	Type    EventType
	Payload map[string]any
}
