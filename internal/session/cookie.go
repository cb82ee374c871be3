package session

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieCodec issues and validates the signed client-id cookie that ties a
// browser to its session records. The cookie carries no session data, only
// an opaque client id.
type CookieCodec struct {
	name   string
	secret []byte
	ttl    time.Duration
}

// NewCookieCodec builds a codec.
func NewCookieCodec(name, secret string, ttl time.Duration) *CookieCodec {
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &CookieCodec{name: name, secret: []byte(secret), ttl: ttl}
}

// Name returns the cookie name.
func (c *CookieCodec) Name() string {
	return c.name
}

// TTL returns the cookie lifetime.
func (c *CookieCodec) TTL() time.Duration {
	return c.ttl
}

type clientClaims struct {
	ClientID string `json:"cid"`
	jwt.RegisteredClaims
}

// Issue mints a fresh client id and its signed cookie value.
func (c *CookieCodec) Issue() (sid, signed string, expiresAt time.Time, err error) {
	sid = uuid.NewString()
	expiresAt = time.Now().Add(c.ttl)
	claims := &clientClaims{
		ClientID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err = token.SignedString(c.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return sid, signed, expiresAt, nil
}

// Parse validates a cookie value and returns the client id.
func (c *CookieCodec) Parse(value string) (string, error) {
	parsed, err := jwt.ParseWithClaims(value, &clientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*clientClaims)
	if !ok || !parsed.Valid || claims.ClientID == "" {
		return "", errors.New("invalid client cookie")
	}
	return claims.ClientID, nil
}
