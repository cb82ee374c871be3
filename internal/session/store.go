package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
)

// UserSession is the admin/customer audience session: minimal profile plus
// the bearer token issued by the rental API.
type UserSession struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Token string      `json:"token"`
}

// LandlordProfile is the landlord profile returned at landlord login.
type LandlordProfile struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	NationalID  string `json:"nationalID,omitempty"`
	Address     string `json:"address,omitempty"`
}

// LandlordSession pairs the landlord bearer token with its profile. The
// landlord audience is independent of the admin/customer one; at most one
// of each is active per client.
type LandlordSession struct {
	Token   string
	Profile LandlordProfile
}

// Store holds per-client session state. It is the only component that
// touches the session keys; the auth controller is its only writer.
type Store struct {
	kv  persistence.KV
	ttl time.Duration
}

// NewStore builds a session store over the given KV backend.
func NewStore(kv persistence.KV, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

func userKey(sid string) string            { return "session:" + sid + ":user" }
func landlordTokenKey(sid string) string   { return "session:" + sid + ":landlord:token" }
func landlordProfileKey(sid string) string { return "session:" + sid + ":landlord:profile" }

// SetUser persists the admin/customer session, overwriting any prior value.
func (s *Store) SetUser(ctx context.Context, sid string, sess *UserSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, userKey(sid), string(raw), s.ttl)
}

// User returns the admin/customer session, or nil when absent. Malformed
// stored content reads as absent rather than failing. A backend failure is
// returned as an error so callers can distinguish "undetermined" from
// "determined absent".
func (s *Store) User(ctx context.Context, sid string) (*UserSession, error) {
	raw, err := s.kv.Get(ctx, userKey(sid))
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, nil
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// ClearUser removes the admin/customer session. Idempotent.
func (s *Store) ClearUser(ctx context.Context, sid string) error {
	return s.kv.Delete(ctx, userKey(sid))
}

// SetLandlord persists the landlord token and profile under separate keys.
func (s *Store) SetLandlord(ctx context.Context, sid, token string, profile LandlordProfile) error {
	if err := s.kv.Set(ctx, landlordTokenKey(sid), token, s.ttl); err != nil {
		return err
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, landlordProfileKey(sid), string(raw), s.ttl)
}

// Landlord returns the landlord session, or nil when no token is stored.
// A missing or malformed profile still yields a usable session; the token
// alone is what authenticates landlord requests.
func (s *Store) Landlord(ctx context.Context, sid string) (*LandlordSession, error) {
	token, err := s.kv.Get(ctx, landlordTokenKey(sid))
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	sess := &LandlordSession{Token: token}
	raw, err := s.kv.Get(ctx, landlordProfileKey(sid))
	if err == nil {
		_ = json.Unmarshal([]byte(raw), &sess.Profile)
	}
	return sess, nil
}

// ClearLandlord removes the landlord token and profile. Idempotent.
func (s *Store) ClearLandlord(ctx context.Context, sid string) error {
	return s.kv.Delete(ctx, landlordTokenKey(sid), landlordProfileKey(sid))
}

// Tokens reads both audience tokens in one pass for outgoing-request
// credential selection. Either may be empty.
func (s *Store) Tokens(ctx context.Context, sid string) (landlordToken, userToken string, err error) {
	landlord, err := s.Landlord(ctx, sid)
	if err != nil {
		return "", "", err
	}
	if landlord != nil {
		landlordToken = landlord.Token
	}
	user, err := s.User(ctx, sid)
	if err != nil {
		return "", "", err
	}
	if user != nil {
		userToken = user.Token
	}
	return landlordToken, userToken, nil
}
