package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	testCases := []struct {
		from    State
		to      State
		allowed bool
	}{
		{StateBrowsing, StateHouseSelected, true},
		{StateBrowsing, StateBookingPending, false},
		{StateBrowsing, StatePaid, false},
		{StateHouseSelected, StateBookingPending, true},
		{StateHouseSelected, StateBrowsing, true},
		{StateHouseSelected, StatePaid, false},
		{StateBookingPending, StateCheckoutPending, true},
		{StateBookingPending, StateBrowsing, true},
		{StateBookingPending, StatePaid, false},
		{StateCheckoutPending, StatePaid, true},
		{StateCheckoutPending, StateBrowsing, true},
		{StateCheckoutPending, StateBookingPending, false},
		{StatePaid, StateBrowsing, true},
		{StatePaid, StateCheckoutPending, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestAdvanceMovesOrRejects(t *testing.T) {
	flow := &Flow{State: StateBrowsing}

	assert.NoError(t, flow.Advance(StateHouseSelected))
	assert.Equal(t, StateHouseSelected, flow.State)

	err := flow.Advance(StatePaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateHouseSelected, flow.State)
}

func TestAdvanceTreatsEmptyStateAsBrowsing(t *testing.T) {
	flow := &Flow{}

	assert.NoError(t, flow.Advance(StateHouseSelected))
	assert.Equal(t, StateHouseSelected, flow.State)
}
