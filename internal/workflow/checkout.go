package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// ErrNoCheckout is the deliberate fallback for a checkout page opened
// without a live context (expired, paid, or never created): the caller is
// directed back to the browse page.
var ErrNoCheckout = util.NewDomainError("CHECKOUT_NOT_FOUND", "no checkout session found", http.StatusNotFound, nil)

// CheckoutContext is the booking-to-payment hand-off. Keyed by booking id
// in the store so a page reload can recover it, instead of living only in
// navigation memory as the flow originally did.
type CheckoutContext struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Address   string  `json:"address"`
}

type checkoutStore struct {
	kv  persistence.KV
	ttl time.Duration
}

func checkoutKey(bookingID string) string {
	return "checkout:" + bookingID
}

func (s *checkoutStore) put(ctx context.Context, cc CheckoutContext) error {
	raw, err := json.Marshal(cc)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, checkoutKey(cc.BookingID), string(raw), s.ttl)
}

func (s *checkoutStore) get(ctx context.Context, bookingID string) (*CheckoutContext, error) {
	raw, err := s.kv.Get(ctx, checkoutKey(bookingID))
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return nil, ErrNoCheckout
	}
	if err != nil {
		return nil, err
	}
	var cc CheckoutContext
	if err := json.Unmarshal([]byte(raw), &cc); err != nil {
		return nil, ErrNoCheckout
	}
	return &cc, nil
}

func (s *checkoutStore) delete(ctx context.Context, bookingID string) error {
	return s.kv.Delete(ctx, checkoutKey(bookingID))
}
