package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/events"
	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

const (
	actionConfirmBooking = "confirm_booking"
	actionPay            = "pay"

	startDateLayout = "2006-01-02"
)

// CheckoutRedirect tells the caller where the workflow goes next after a
// booking is created.
type CheckoutRedirect struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Address   string  `json:"address"`
	Location  string  `json:"location"`
}

// PaymentResult reports a successful payment: the confirmation screen is
// shown for DelaySeconds before redirecting.
type PaymentResult struct {
	Payment      *domain.Payment `json:"payment,omitempty"`
	Redirect     string          `json:"redirect"`
	DelaySeconds int             `json:"delaySeconds"`
}

// Config tunes the workflow service.
type Config struct {
	CheckoutTTL       time.Duration
	InflightTTL       time.Duration
	PaidRedirectDelay int
}

// Service drives the booking workflow: browse → select → book → pay →
// lease, with its state machine persisted per client.
type Service struct {
	api        *upstream.Client
	kv         persistence.KV
	checkout   *checkoutStore
	inflight   *inflightGuard
	dispatcher events.Dispatcher
	logger     *zap.Logger
	delay      int
}

// NewService builds the workflow service.
func NewService(api *upstream.Client, kv persistence.KV, dispatcher events.Dispatcher, logger *zap.Logger, cfg Config) *Service {
	if cfg.CheckoutTTL <= 0 {
		cfg.CheckoutTTL = 30 * time.Minute
	}
	if cfg.InflightTTL <= 0 {
		cfg.InflightTTL = 15 * time.Second
	}
	if cfg.PaidRedirectDelay <= 0 {
		cfg.PaidRedirectDelay = 3
	}
	return &Service{
		api:        api,
		kv:         kv,
		checkout:   &checkoutStore{kv: kv, ttl: cfg.CheckoutTTL},
		inflight:   &inflightGuard{kv: kv, ttl: cfg.InflightTTL},
		dispatcher: dispatcher,
		logger:     logger,
		delay:      cfg.PaidRedirectDelay,
	}
}

func flowKey(sid string) string {
	return "workflow:" + sid
}

// Flow returns the client's current workflow position, defaulting to
// Browsing. Malformed stored state reads as a fresh flow.
func (s *Service) Flow(ctx context.Context, sid string) (*Flow, error) {
	raw, err := s.kv.Get(ctx, flowKey(sid))
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return &Flow{State: StateBrowsing}, nil
	}
	if err != nil {
		return nil, err
	}
	var flow Flow
	if err := json.Unmarshal([]byte(raw), &flow); err != nil || flow.State == "" {
		return &Flow{State: StateBrowsing}, nil
	}
	return &flow, nil
}

func (s *Service) saveFlow(ctx context.Context, sid string, flow *Flow) error {
	raw, err := json.Marshal(flow)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, flowKey(sid), string(raw), s.checkout.ttl)
}

// SelectHouse records the customer's pick from the listing. Re-selecting
// from any state resets the flow to the new house.
func (s *Service) SelectHouse(ctx context.Context, sid string, house *domain.House) error {
	if house == nil || house.ID == "" {
		return util.NewValidationError("a house must be selected", nil)
	}

	flow, err := s.Flow(ctx, sid)
	if err != nil {
		return err
	}
	if flow.State != StateBrowsing {
		// Abandoning an earlier flow is legal from every state.
		if err := flow.Advance(StateBrowsing); err != nil {
			return err
		}
	}
	if err := flow.Advance(StateHouseSelected); err != nil {
		return err
	}
	flow.HouseID = house.ID
	flow.HouseAddress = house.Address
	flow.HousePrice = house.Price
	flow.BookingID = ""
	return s.saveFlow(ctx, sid, flow)
}

// SelectHouseByID resolves the house and records the selection.
func (s *Service) SelectHouseByID(ctx context.Context, sid string, creds upstream.Credentials, houseID string) (*Flow, error) {
	house, err := s.api.GetHouse(ctx, creds, houseID)
	if err != nil {
		return nil, err
	}
	if err := s.SelectHouse(ctx, sid, house); err != nil {
		return nil, err
	}
	return s.Flow(ctx, sid)
}

// CreateBooking submits the booking-creation request and prepares the
// checkout hand-off. The start date must be today or later; the check runs
// before any request is sent. A duplicate confirm while the first request
// is in flight fails with ErrActionInFlight.
func (s *Service) CreateBooking(ctx context.Context, sid string, creds upstream.Credentials, houseID, startDate string) (*CheckoutRedirect, error) {
	if houseID == "" {
		return nil, util.NewValidationError("houseId is required", nil)
	}
	if err := validateStartDate(startDate); err != nil {
		return nil, err
	}

	release, err := s.inflight.acquire(ctx, sid, actionConfirmBooking)
	if err != nil {
		return nil, err
	}
	defer release()

	flow, err := s.Flow(ctx, sid)
	if err != nil {
		return nil, err
	}

	amount, address, err := s.houseDetails(ctx, creds, flow, houseID)
	if err != nil {
		return nil, err
	}

	booking, err := s.api.CreateBooking(ctx, creds, houseID, startDate)
	if err != nil {
		return nil, err
	}

	if flow.State != StateHouseSelected {
		// Deep-linked booking request: fold the selection steps in.
		flow.State = StateHouseSelected
	}
	if err := flow.Advance(StateBookingPending); err != nil {
		return nil, err
	}
	flow.HouseID = houseID
	flow.BookingID = booking.ID

	cc := CheckoutContext{BookingID: booking.ID, Amount: amount, Address: address}
	if err := s.checkout.put(ctx, cc); err != nil {
		return nil, err
	}

	if err := flow.Advance(StateCheckoutPending); err != nil {
		return nil, err
	}
	if err := s.saveFlow(ctx, sid, flow); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, map[string]any{
		"bookingId": booking.ID,
		"houseId":   houseID,
		"startDate": startDate,
	})

	return &CheckoutRedirect{
		BookingID: booking.ID,
		Amount:    amount,
		Address:   address,
		Location:  fmt.Sprintf("/checkout?booking=%s", booking.ID),
	}, nil
}

// Checkout recovers the checkout context for a booking, or ErrNoCheckout.
func (s *Service) Checkout(ctx context.Context, bookingID string) (*CheckoutContext, error) {
	if bookingID == "" {
		return nil, ErrNoCheckout
	}
	return s.checkout.get(ctx, bookingID)
}

// Pay settles the checkout. On failure the checkout context is preserved
// so the page keeps its state; on success the context is consumed and the
// caller is redirected to the rentals list after the fixed visual delay.
func (s *Service) Pay(ctx context.Context, sid string, creds upstream.Credentials, bookingID string, method domain.PaymentMethod) (*PaymentResult, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, util.NewValidationError("a payment method must be selected", nil)
	}

	cc, err := s.checkout.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	release, err := s.inflight.acquire(ctx, sid, actionPay)
	if err != nil {
		return nil, err
	}
	defer release()

	payment, err := s.api.CreatePayment(ctx, creds, cc.BookingID, cc.Amount, method)
	if err != nil {
		return nil, err
	}

	flow, flowErr := s.Flow(ctx, sid)
	if flowErr == nil {
		if flow.State != StateCheckoutPending {
			flow.State = StateCheckoutPending
		}
		if err := flow.Advance(StatePaid); err == nil {
			_ = s.saveFlow(ctx, sid, flow)
		}
	}
	_ = s.checkout.delete(ctx, bookingID)

	s.publish(ctx, events.EventPaymentRecorded, map[string]any{
		"bookingId": bookingID,
		"amount":    cc.Amount,
		"method":    string(method),
	})

	return &PaymentResult{
		Payment:      payment,
		Redirect:     "/my-rentals",
		DelaySeconds: s.delay,
	}, nil
}

// Rentals lists the caller's bookings.
func (s *Service) Rentals(ctx context.Context, creds upstream.Credentials) ([]domain.Booking, error) {
	return s.api.ListBookings(ctx, creds)
}

// EndLease ends an active booking. Irreversible, so the explicit
// confirmation flag must be set before any request goes out. Pending
// payment records are left alone: the payment lifecycle is server-owned.
func (s *Service) EndLease(ctx context.Context, creds upstream.Credentials, bookingID string, confirmed bool) error {
	if bookingID == "" {
		return util.NewValidationError("bookingId is required", nil)
	}
	if !confirmed {
		return util.NewValidationError("ending a lease cannot be undone and must be confirmed", nil)
	}

	if err := s.api.EndBooking(ctx, creds, bookingID); err != nil {
		return err
	}

	s.publish(ctx, events.EventLeaseEnded, map[string]any{"bookingId": bookingID})
	return nil
}

func (s *Service) publish(ctx context.Context, eventType events.EventType, payload map[string]any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{Type: eventType, Payload: payload})
}

// houseDetails resolves the price and address for the checkout context,
// preferring the flow's selected house and falling back to a fetch for
// deep-linked requests.
func (s *Service) houseDetails(ctx context.Context, creds upstream.Credentials, flow *Flow, houseID string) (float64, string, error) {
	if flow.State == StateHouseSelected && flow.HouseID == houseID && flow.HouseAddress != "" {
		return flow.HousePrice, flow.HouseAddress, nil
	}
	house, err := s.api.GetHouse(ctx, creds, houseID)
	if err != nil {
		return 0, "", err
	}
	return house.Price, house.Address, nil
}

func validateStartDate(startDate string) error {
	if startDate == "" {
		return util.NewValidationError("a start date is required", nil)
	}
	parsed, err := time.Parse(startDateLayout, startDate)
	if err != nil {
		return util.NewValidationError("start date must be formatted YYYY-MM-DD", nil)
	}
	today := time.Now().Format(startDateLayout)
	if parsed.Format(startDateLayout) < today {
		return util.NewValidationError("start date must be today or later", nil)
	}
	return nil
}
