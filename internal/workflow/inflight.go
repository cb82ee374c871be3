package workflow

import (
	"context"
	"net/http"
	"time"

	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// ErrActionInFlight rejects a duplicate submission while the first request
// for the same action is still running.
var ErrActionInFlight = util.NewDomainError("ACTION_IN_FLIGHT", "request already in progress", http.StatusConflict, nil)

// inflightGuard dedupes (client, action) pairs. The TTL bounds how long a
// mark can linger if a release is lost to a crash.
type inflightGuard struct {
	kv  persistence.KV
	ttl time.Duration
}

func inflightKey(sid, action string) string {
	return "inflight:" + sid + ":" + action
}

// acquire claims the action for the client, returning a release func, or
// ErrActionInFlight when the previous attempt has not finished.
func (g *inflightGuard) acquire(ctx context.Context, sid, action string) (func(), error) {
	key := inflightKey(sid, action)
	ok, err := g.kv.SetNX(ctx, key, "1", g.ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	release := func() {
		_ = g.kv.Delete(context.Background(), key)
	}
	return release, nil
}
