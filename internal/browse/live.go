package browse

import (
	"sync"
	"time"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
)

// FetchFunc resolves one page of listings for the given filters.
type FetchFunc func(Filters) (*domain.HousePage, error)

// Live models one client's search-as-you-type session. Input is debounced
// by a fixed quiet period; completions are generation-checked so a stale
// response arriving after newer input never overwrites current state.
type Live struct {
	mu      sync.Mutex
	deb     *Debouncer
	fetch   FetchFunc
	gen     uint64
	page    *domain.HousePage
	lastErr error
	stopped bool
}

// NewLive builds a live-search session.
func NewLive(fetch FetchFunc, delay time.Duration) *Live {
	return &Live{deb: NewDebouncer(delay), fetch: fetch}
}

// Input records new filter input and schedules a debounced refresh.
func (l *Live) Input(filters Filters) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.deb.Trigger(func() {
		page, err := l.fetch(filters)

		l.mu.Lock()
		defer l.mu.Unlock()
		// Liveness check: drop results that raced with newer input or
		// arrived after teardown.
		if l.stopped || gen != l.gen {
			return
		}
		l.page = page
		l.lastErr = err
	})
}

// Snapshot returns the most recent resolved listing, which may lag the
// latest input by up to the debounce delay.
func (l *Live) Snapshot() (*domain.HousePage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page, l.lastErr
}

// Stop tears the session down, cancelling any pending debounce timer.
func (l *Live) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.deb.Stop()
}

// Registry tracks live-search sessions per client and evicts idle ones so
// their timers cannot leak.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	factory  func() *Live
	idleTTL  time.Duration
}

type registryEntry struct {
	live     *Live
	lastUsed time.Time
}

// NewRegistry builds a registry. factory creates a session on first use.
func NewRegistry(factory func() *Live, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &Registry{
		sessions: make(map[string]*registryEntry),
		factory:  factory,
		idleTTL:  idleTTL,
	}
}

// Get returns the client's live session, creating it on first use.
func (r *Registry) Get(sid string) *Live {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[sid]
	if !ok {
		entry = &registryEntry{live: r.factory()}
		r.sessions[sid] = entry
	}
	entry.lastUsed = time.Now()
	return entry.live
}

// Evict stops and removes a client's session. Idempotent.
func (r *Registry) Evict(sid string) {
	r.mu.Lock()
	entry, ok := r.sessions[sid]
	delete(r.sessions, sid)
	r.mu.Unlock()
	if ok {
		entry.live.Stop()
	}
}

// PurgeIdle stops and removes sessions idle longer than the TTL.
func (r *Registry) PurgeIdle() {
	cutoff := time.Now().Add(-r.idleTTL)

	r.mu.Lock()
	var stale []*registryEntry
	for sid, entry := range r.sessions {
		if entry.lastUsed.Before(cutoff) {
			stale = append(stale, entry)
			delete(r.sessions, sid)
		}
	}
	r.mu.Unlock()

	for _, entry := range stale {
		entry.live.Stop()
	}
}

// StartJanitor purges idle sessions on an interval until stop is closed.
func (r *Registry) StartJanitor(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(r.idleTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.PurgeIdle()
			case <-stop:
				return
			}
		}
	}()
}
