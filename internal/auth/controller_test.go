package auth

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

	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
)

type fixture struct {
	ctrl     *Controller
	sessions *session.Store
	kv       *persistence.Memory
	requests *int
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	kv := persistence.NewMemory()
	sessions := session.NewStore(kv, time.Hour)
	api := upstream.NewClientWith(server.URL, server.Client())
	return &fixture{
		ctrl:     NewController(api, sessions, zap.NewNop()),
		sessions: sessions,
		kv:       kv,
		requests: &requests,
	}
}

func authOK(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]string{
		"_id":   "u1",
		"name":  "Amina",
		"email": "amina@example.com",
		"role":  "customer",
		"token": "tok-1",
	})
}

func authRejected(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
}

func TestLoginSuccessStoresSession(t *testing.T) {
	f := newFixture(t, authOK)
	ctx := context.Background()

	result, err := f.ctrl.Login(ctx, "client-1", "amina@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, result.Success)

	sess, err := f.sessions.User(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "Amina", sess.Name)
}

func TestLoginRejectedCredentialsNeverError(t *testing.T) {
	f := newFixture(t, authRejected)
	ctx := context.Background()

	result, err := f.ctrl.Login(ctx, "client-1", "amina@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)

	sess, err := f.sessions.User(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoginEmptyFieldsFailWithoutRequest(t *testing.T) {
	f := newFixture(t, authOK)

	result, err := f.ctrl.Login(context.Background(), "client-1", "", "pw")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, *f.requests)
}

func TestLoginUnreachableServiceFailsSoftly(t *testing.T) {
	kv := persistence.NewMemory()
	sessions := session.NewStore(kv, time.Hour)
	api := upstream.NewClientWith("http://127.0.0.1:1", &http.Client{Timeout: 200 * time.Millisecond})
	ctrl := NewController(api, sessions, zap.NewNop())

	result, err := ctrl.Login(context.Background(), "client-1", "a@b.c", "pw")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "unreachable")
}

func TestRegisterCustomerPasswordMismatchSkipsRequest(t *testing.T) {
	f := newFixture(t, authOK)

	result, err := f.ctrl.RegisterCustomer(context.Background(), "client-1", "Amina", "amina@example.com", "pw", "other")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Passwords do not match", result.Message)
	assert.Zero(t, *f.requests)
}

func TestRegisterCustomerDuplicateEmailSurfacesServerMessage(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
	})

	result, err := f.ctrl.RegisterCustomer(context.Background(), "client-1", "Amina", "amina@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "User already exists", result.Message)
}

func TestRegisterCustomerDefaultsRole(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"_id":   "u2",
			"name":  "Hodan",
			"email": "hodan@example.com",
			"token": "tok-2",
		})
	})
	ctx := context.Background()

	result, err := f.ctrl.RegisterCustomer(ctx, "client-1", "Hodan", "hodan@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.True(t, result.Success)

	sess, err := f.sessions.User(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "customer", string(sess.Role))
}

func TestLogoutLeavesLandlordSession(t *testing.T) {
	f := newFixture(t, authOK)
	ctx := context.Background()

	require.NoError(t, f.sessions.SetUser(ctx, "client-1", &session.UserSession{Token: "user-tok"}))
	require.NoError(t, f.sessions.SetLandlord(ctx, "client-1", "landlord-tok", session.LandlordProfile{}))

	require.NoError(t, f.ctrl.Logout(ctx, "client-1"))

	user, err := f.ctrl.Resolve(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, user)

	landlord, err := f.ctrl.ResolveLandlord(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, landlord)
	assert.Equal(t, "landlord-tok", landlord.Token)
}

func TestLoginLandlordStoresTokenAndProfile(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token": "landlord-tok",
			"_id":   "l1",
			"name":  "Hassan",
			"email": "hassan@example.com",
		})
	})
	ctx := context.Background()

	result, err := f.ctrl.LoginLandlord(ctx, "client-1", "hassan@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, result.Success)

	landlord, err := f.ctrl.ResolveLandlord(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, landlord)
	assert.Equal(t, "landlord-tok", landlord.Token)
	assert.Equal(t, "Hassan", landlord.Profile.Name)
}

func TestCredentialsPreferLandlordToken(t *testing.T) {
	f := newFixture(t, authOK)
	ctx := context.Background()

	require.NoError(t, f.sessions.SetUser(ctx, "client-1", &session.UserSession{Token: "user-tok"}))
	require.NoError(t, f.sessions.SetLandlord(ctx, "client-1", "landlord-tok", session.LandlordProfile{}))

	creds, err := f.ctrl.Credentials(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "landlord-tok", creds.Bearer())
}

func TestResolveUndeterminedOnStoreFailure(t *testing.T) {
	f := newFixture(t, authOK)
	f.kv.SetFailing(true)

	_, err := f.ctrl.Resolve(context.Background(), "client-1")
	assert.Error(t, err)
}
