// Package cache holds the process-wide caches of the catalog: the upstream
// access token and ranked result sets keyed by request shape.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Entry is a cached value and the moment it was fetched.
type Entry[V any] struct {
	Value     V         `json:"value"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Remote is an optional shared tier consulted on a local miss.
type Remote interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Results is a TTL cache where concurrent misses on one key share a single
// fetch. Entries are only ever replaced or expired, never merged.
type Results[V any] struct {
	name   string
	ttl    time.Duration
	now    func() time.Time
	remote Remote

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]Entry[V]
}

// Option configures a Results cache.
type Option func(*options)

type options struct {
	remote Remote
	now    func() time.Time
}

// WithRemote adds a shared tier behind the in-memory map.
func WithRemote(r Remote) Option {
	return func(o *options) { o.remote = r }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewResults creates a cache named name whose entries live for ttl.
func NewResults[V any](name string, ttl time.Duration, opts ...Option) *Results[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Results[V]{
		name:    name,
		ttl:     ttl,
		now:     o.now,
		remote:  o.remote,
		entries: make(map[string]Entry[V]),
	}
}

// Get returns the cached entry for key, calling fetch on a miss. Only one
// fetch per key runs at a time; callers arriving meanwhile receive its result.
// Failed fetches are not cached.
func (r *Results[V]) Get(ctx context.Context, key string, fetch func(ctx context.Context) (V, error)) (Entry[V], error) {
	if e, ok := r.lookup(key); ok {
		return e, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		if e, ok := r.lookup(key); ok {
			return e, nil
		}

		// The flight outlives the caller that started it.
		flightCtx := context.WithoutCancel(ctx)

		if e, ok := r.fromRemote(flightCtx, key); ok {
			r.store(key, e)
			return e, nil
		}

		value, err := fetch(flightCtx)
		if err != nil {
			return nil, err
		}

		e := Entry[V]{Value: value, FetchedAt: r.now()}
		r.store(key, e)
		r.toRemote(flightCtx, key, e)
		return e, nil
	})
	if err != nil {
		return Entry[V]{}, err
	}
	return v.(Entry[V]), nil
}

// Len reports the number of live entries.
func (r *Results[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	now := r.now()
	for _, e := range r.entries {
		if r.alive(e, now) {
			n++
		}
	}
	return n
}

// TTL returns the configured entry lifetime.
func (r *Results[V]) TTL() time.Duration {
	return r.ttl
}

func (r *Results[V]) lookup(key string) (Entry[V], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok || !r.alive(e, r.now()) {
		return Entry[V]{}, false
	}
	return e, true
}

func (r *Results[V]) store(key string, e Entry[V]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, old := range r.entries {
		if !r.alive(old, now) {
			delete(r.entries, k)
		}
	}
	r.entries[key] = e
}

func (r *Results[V]) alive(e Entry[V], now time.Time) bool {
	return now.Sub(e.FetchedAt) < r.ttl
}

func (r *Results[V]) remoteKey(key string) string {
	return r.name + ":" + key
}

func (r *Results[V]) fromRemote(ctx context.Context, key string) (Entry[V], bool) {
	if r.remote == nil {
		return Entry[V]{}, false
	}

	raw, ok, err := r.remote.Get(ctx, r.remoteKey(key))
	if err != nil {
		logrus.WithError(err).WithField("cache", r.name).Warn("remote cache read failed")
		return Entry[V]{}, false
	}
	if !ok {
		return Entry[V]{}, false
	}

	var e Entry[V]
	if err := json.Unmarshal(raw, &e); err != nil {
		logrus.WithError(err).WithField("cache", r.name).Warn("remote cache entry undecodable")
		return Entry[V]{}, false
	}
	if !r.alive(e, r.now()) {
		return Entry[V]{}, false
	}
	return e, true
}

func (r *Results[V]) toRemote(ctx context.Context, key string, e Entry[V]) {
	if r.remote == nil {
		return
	}

	raw, err := json.Marshal(e)
	if err != nil {
		logrus.WithError(err).WithField("cache", r.name).Warn("remote cache entry unencodable")
		return
	}
	if err := r.remote.Set(ctx, r.remoteKey(key), raw, r.ttl); err != nil {
		logrus.WithError(err).WithField("cache", r.name).Warn("remote cache write failed")
	}
}
