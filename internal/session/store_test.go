package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
)

func newTestStore() (*Store, *persistence.Memory) {
	kv := persistence.NewMemory()
	return NewStore(kv, time.Hour), kv
}

func TestUserSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	sess := &UserSession{Name: "Amina", Email: "amina@example.com", Role: domain.RoleCustomer, Token: "tok-1"}
	require.NoError(t, store.SetUser(ctx, "client-1", sess))

	got, err := store.User(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Amina", got.Name)
	assert.Equal(t, domain.RoleCustomer, got.Role)
	assert.Equal(t, "tok-1", got.Token)
}

func TestUserAbsentForUnknownClient(t *testing.T) {
	store, _ := newTestStore()

	got, err := store.User(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserMalformedRecordReadsAsAbsent(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "session:client-1:user", "{not json", time.Hour))

	got, err := store.User(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserTokenlessRecordReadsAsAbsent(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "session:client-1:user", `{"name":"x","email":"x@y.z"}`, time.Hour))

	got, err := store.User(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserBackendFailureIsAnError(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetUser(ctx, "client-1", &UserSession{Token: "tok"}))
	kv.SetFailing(true)

	got, err := store.User(ctx, "client-1")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestClearUserIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetUser(ctx, "client-1", &UserSession{Token: "tok"}))
	require.NoError(t, store.ClearUser(ctx, "client-1"))
	require.NoError(t, store.ClearUser(ctx, "client-1"))

	got, err := store.User(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLandlordSessionIndependentOfUser(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetUser(ctx, "client-1", &UserSession{Token: "user-tok"}))
	require.NoError(t, store.SetLandlord(ctx, "client-1", "landlord-tok", LandlordProfile{Name: "Hassan"}))

	require.NoError(t, store.ClearUser(ctx, "client-1"))

	landlord, err := store.Landlord(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, landlord)
	assert.Equal(t, "landlord-tok", landlord.Token)
	assert.Equal(t, "Hassan", landlord.Profile.Name)
}

func TestLandlordMissingProfileStillUsable(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "session:client-1:landlord:token", "landlord-tok", time.Hour))

	landlord, err := store.Landlord(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, landlord)
	assert.Equal(t, "landlord-tok", landlord.Token)
	assert.Empty(t, landlord.Profile.Name)
}

func TestClearLandlordRemovesTokenAndProfile(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetLandlord(ctx, "client-1", "landlord-tok", LandlordProfile{Name: "Hassan"}))
	require.NoError(t, store.ClearLandlord(ctx, "client-1"))
	require.NoError(t, store.ClearLandlord(ctx, "client-1"))

	landlord, err := store.Landlord(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, landlord)
}

func TestTokensReturnsBothAudiences(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetUser(ctx, "client-1", &UserSession{Token: "user-tok"}))
	require.NoError(t, store.SetLandlord(ctx, "client-1", "landlord-tok", LandlordProfile{}))

	landlordToken, userToken, err := store.Tokens(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "landlord-tok", landlordToken)
	assert.Equal(t, "user-tok", userToken)
}

func TestTokensBackendFailurePropagates(t *testing.T) {
	store, kv := newTestStore()
	kv.SetFailing(true)

	_, _, err := store.Tokens(context.Background(), "client-1")
	assert.Error(t, err)
}
