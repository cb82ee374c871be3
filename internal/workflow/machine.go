package workflow

import (
	"net/http"

	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// State names one step of the booking workflow. The flow used to be
// implicit in page-to-page navigation; here it is an explicit machine.
type State string

const (
	StateBrowsing        State = "browsing"
	StateHouseSelected   State = "house_selected"
	StateBookingPending  State = "booking_pending"
	StateCheckoutPending State = "checkout_pending"
	StatePaid            State = "paid"
)

// ErrInvalidTransition rejects a step the machine does not allow.
var ErrInvalidTransition = util.NewDomainError("INVALID_TRANSITION", "booking workflow step not allowed from current state", http.StatusConflict, nil)

// transitions is the allowed-successor table. Browsing is always
// re-enterable: abandoning a flow and picking a new house is legal from
// any state.
var transitions = map[State][]State{
	StateBrowsing:        {StateHouseSelected},
	StateHouseSelected:   {StateBookingPending, StateBrowsing},
	StateBookingPending:  {StateCheckoutPending, StateBrowsing},
	StateCheckoutPending: {StatePaid, StateBrowsing},
	StatePaid:            {StateBrowsing},
}

// CanTransition reports whether from → to is an allowed step.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Flow is one client's position in the booking workflow, persisted so the
// machine survives the independent page navigations that drive it.
type Flow struct {
	State        State   `json:"state"`
	HouseID      string  `json:"houseId,omitempty"`
	HouseAddress string  `json:"houseAddress,omitempty"`
	HousePrice   float64 `json:"housePrice,omitempty"`
	BookingID    string  `json:"bookingId,omitempty"`
}

// Advance moves the flow to the next state, or fails with
// ErrInvalidTransition.
func (f *Flow) Advance(to State) error {
	from := f.State
	if from == "" {
		from = StateBrowsing
	}
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	f.State = to
	return nil
}
