package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
)

type upstreamCalls struct {
	bookings int
	payments int
	ends     int
}

// newWorkflowFixture wires the service over a memory KV and a fake rental
// API that serves one house, accepts bookings and records payments.
func newWorkflowFixture(t *testing.T) (*Service, *persistence.Memory, *upstreamCalls) {
	t.Helper()

	calls := &upstreamCalls{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /houses/h1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.House{ID: "h1", Address: "12 Shore Road", Price: 850})
	})
	mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		calls.bookings++
		_ = json.NewEncoder(w).Encode(domain.Booking{ID: "b1", StartDate: "2030-01-01", BookingStatus: domain.BookingStatusPending})
	})
	mux.HandleFunc("PUT /bookings/{id}/end", func(w http.ResponseWriter, r *http.Request) {
		calls.ends++
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		calls.payments++
		_ = json.NewEncoder(w).Encode(domain.Payment{ID: "p1", Amount: 850, PaymentStatus: domain.PaymentStatusPaid})
	})
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Booking{{ID: "b1"}})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	kv := persistence.NewMemory()
	api := upstream.NewClientWith(server.URL, server.Client())
	svc := NewService(api, kv, nil, zap.NewNop(), Config{
		CheckoutTTL:       time.Minute,
		InflightTTL:       time.Second,
		PaidRedirectDelay: 3,
	})
	return svc, kv, calls
}

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func TestCreateBookingRejectsPastStartDateBeforeRequest(t *testing.T) {
	svc, _, calls := newWorkflowFixture(t)

	_, err := svc.CreateBooking(context.Background(), "sid", upstream.Credentials{}, "h1", "2020-01-01")
	assert.Error(t, err)
	assert.Zero(t, calls.bookings)
}

func TestCreateBookingRejectsMalformedStartDate(t *testing.T) {
	svc, _, calls := newWorkflowFixture(t)

	_, err := svc.CreateBooking(context.Background(), "sid", upstream.Credentials{}, "h1", "01/02/2030")
	assert.Error(t, err)
	assert.Zero(t, calls.bookings)
}

func TestCreateBookingAcceptsToday(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)

	today := time.Now().Format("2006-01-02")
	redirect, err := svc.CreateBooking(context.Background(), "sid", upstream.Credentials{}, "h1", today)
	require.NoError(t, err)
	assert.Equal(t, "b1", redirect.BookingID)
}

func TestCreateBookingPreparesCheckout(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	redirect, err := svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	require.NoError(t, err)
	assert.Equal(t, "b1", redirect.BookingID)
	assert.Equal(t, 850.0, redirect.Amount)
	assert.Equal(t, "12 Shore Road", redirect.Address)
	assert.Equal(t, "/checkout?booking=b1", redirect.Location)

	// Checkout context is recoverable by booking id, e.g. after a reload.
	cc, err := svc.Checkout(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 850.0, cc.Amount)
	assert.Equal(t, "12 Shore Road", cc.Address)

	flow, err := svc.Flow(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, StateCheckoutPending, flow.State)
	assert.Equal(t, "b1", flow.BookingID)
}

func TestCreateBookingUsesSelectedHouseWithoutRefetch(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SelectHouse(ctx, "sid", &domain.House{ID: "h1", Address: "12 Shore Road", Price: 850}))

	redirect, err := svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	require.NoError(t, err)
	assert.Equal(t, 850.0, redirect.Amount)
}

func TestCreateBookingDeduplicatesInFlightSubmissions(t *testing.T) {
	svc, kv, calls := newWorkflowFixture(t)
	ctx := context.Background()

	ok, err := kv.SetNX(ctx, "inflight:sid:confirm_booking", "1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	assert.ErrorIs(t, err, ErrActionInFlight)
	assert.Zero(t, calls.bookings)
}

func TestCheckoutMissingContext(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNoCheckout)

	_, err = svc.Checkout(ctx, "")
	assert.ErrorIs(t, err, ErrNoCheckout)
}

func TestCheckoutExpiresWithTTL(t *testing.T) {
	svc, kv, _ := newWorkflowFixture(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "checkout:b9", `{"bookingId":"b9","amount":100,"address":"x"}`, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := svc.Checkout(ctx, "b9")
	assert.ErrorIs(t, err, ErrNoCheckout)
}

func TestPayRequiresValidMethod(t *testing.T) {
	svc, _, calls := newWorkflowFixture(t)

	_, err := svc.Pay(context.Background(), "sid", upstream.Credentials{}, "b1", "bitcoin")
	assert.Error(t, err)
	assert.Zero(t, calls.payments)
}

func TestPayConsumesCheckout(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	require.NoError(t, err)

	result, err := svc.Pay(ctx, "sid", upstream.Credentials{}, "b1", domain.PaymentMethodCard)
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	assert.Equal(t, "/my-rentals", result.Redirect)
	assert.Equal(t, 3, result.DelaySeconds)

	_, err = svc.Checkout(ctx, "b1")
	assert.ErrorIs(t, err, ErrNoCheckout)

	flow, err := svc.Flow(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, StatePaid, flow.State)
}

func TestPayFailurePreservesCheckout(t *testing.T) {
	calls := &upstreamCalls{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /houses/h1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.House{ID: "h1", Address: "12 Shore Road", Price: 850})
	})
	mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		calls.bookings++
		_ = json.NewEncoder(w).Encode(domain.Booking{ID: "b1"})
	})
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "payment processor down"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	kv := persistence.NewMemory()
	svc := NewService(upstream.NewClientWith(server.URL, server.Client()), kv, nil, zap.NewNop(), Config{})
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	require.NoError(t, err)

	_, err = svc.Pay(ctx, "sid", upstream.Credentials{}, "b1", domain.PaymentMethodCash)
	assert.Error(t, err)

	// The page keeps its state: the context must survive the failed attempt.
	cc, err := svc.Checkout(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", cc.BookingID)
}

func TestEndLeaseRequiresConfirmation(t *testing.T) {
	svc, _, calls := newWorkflowFixture(t)

	err := svc.EndLease(context.Background(), upstream.Credentials{}, "b1", false)
	assert.Error(t, err)
	assert.Zero(t, calls.ends)
}

func TestEndLeaseConfirmed(t *testing.T) {
	svc, _, calls := newWorkflowFixture(t)

	err := svc.EndLease(context.Background(), upstream.Credentials{}, "b1", true)
	require.NoError(t, err)
	assert.Equal(t, 1, calls.ends)
}

func TestFlowMalformedStateReadsAsFresh(t *testing.T) {
	svc, kv, _ := newWorkflowFixture(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "workflow:sid", "{broken", time.Minute))

	flow, err := svc.Flow(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, StateBrowsing, flow.State)
}

func TestSelectHouseResetsEarlierFlow(t *testing.T) {
	svc, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "sid", upstream.Credentials{}, "h1", futureDate())
	require.NoError(t, err)

	require.NoError(t, svc.SelectHouse(ctx, "sid", &domain.House{ID: "h2", Address: "7 Hill Lane", Price: 400}))

	flow, err := svc.Flow(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, StateHouseSelected, flow.State)
	assert.Equal(t, "h2", flow.HouseID)
	assert.Empty(t, flow.BookingID)
}
