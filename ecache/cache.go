/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package ecache

import (
	"context"
	"sync"
	"time"

	libdur "github.com/nabbar/netcore/duration"
	liberr "github.com/nabbar/netcore/errors"

	"golang.org/x/sync/singleflight"
)

// Backend is the external "query runtime" (spec §4.5): it owns the UDP
// socket, accepts requests and returns either a value or an error. A failure
// or timeout returned here is downgraded by Cache to a negative cache entry;
// Backend implementations never need to implement caching themselves.
type Backend[K any, V any] interface {
	Query(ctx context.Context, key K) (V, error)
}

// Config carries the cache's TTL policy. Durations are expressed with
// duration.Duration so the same config struct can be decoded straight out of
// Viper/YAML the way every other component's config does.
type Config struct {
	// ProtectiveTTL is the negative-cache lifetime applied on failure/timeout.
	ProtectiveTTL libdur.Duration
	// VanishWait: a positive entry within this long of expiry may still be
	// served while a refresh is launched opportunistically (refresh-ahead).
	VanishWait libdur.Duration
	// PositiveDefault is used as a positive entry's TTL when V does not
	// implement TTLer (no server-reported lifetime available on the wire).
	PositiveDefault libdur.Duration
}

type entry[V any] struct {
	value    V
	err      error
	expireAt time.Time
	refresh  bool
}

// Cache is the generic single-flight, negatively-caching, TTL-bounded cache
// (C5). K need not be comparable: callers supply a keyFunc reducing it to a
// map key, since the spec's keys are tuples (host+service, ip, user+host+ip)
// that are cheaper to compare as a formatted string than to make comparable.
type Cache[K any, V any] struct {
	cfg     Config
	backend Backend[K, V]
	keyFunc func(K) string

	mu      sync.Mutex
	entries map[string]*entry[V]

	group singleflight.Group
}

// New builds a Cache. backend owns the UDP socket; keyFunc must be a pure,
// deterministic reduction of K to its cache key string.
func New[K any, V any](cfg Config, backend Backend[K, V], keyFunc func(K) string) *Cache[K, V] {
	return &Cache[K, V]{
		cfg:     cfg,
		backend: backend,
		keyFunc: keyFunc,
		entries: make(map[string]*entry[V]),
	}
}

// Fetch returns a cached value if present and fresh; otherwise it issues
// exactly one backend query per key among all concurrent callers
// (golang.org/x/sync/singleflight, spec §8.1) and waits up to timeout for
// the result to arrive.
func (c *Cache[K, V]) Fetch(ctx context.Context, key K, timeout time.Duration) (V, error) {
	k := c.keyFunc(key)
	now := time.Now()

	c.mu.Lock()
	if e, ok := c.entries[k]; ok {
		if now.Before(e.expireAt) {
			if e.err == nil && !e.refresh && now.Add(c.cfg.VanishWait.Time()).After(e.expireAt) {
				e.refresh = true
				c.mu.Unlock()
				c.refreshAhead(k, key)
				return e.value, nil
			}

			v, err := e.value, e.err
			c.mu.Unlock()
			return v, err
		}
	}
	c.mu.Unlock()

	return c.fetchFromBackend(ctx, k, key, timeout)
}

// refreshAhead launches an opportunistic background refresh without making
// the caller that triggered it wait.
func (c *Cache[K, V]) refreshAhead(k string, key K) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, _, _ = c.group.Do(k, func() (interface{}, error) {
			v, err := c.backend.Query(ctx, key)
			c.store(k, v, err)
			return v, err
		})
	}()
}

func (c *Cache[K, V]) fetchFromBackend(ctx context.Context, k string, key K, timeout time.Duration) (V, error) {
	resultCh := c.group.DoChan(k, func() (interface{}, error) {
		v, err := c.backend.Query(ctx, key)
		c.store(k, v, err)
		return v, err
	})

	var zero V

	select {
	case res := <-resultCh:
		if res.Val == nil {
			return zero, res.Err
		}
		return res.Val.(V), res.Err

	case <-time.After(timeout):
		// The in-flight backend query continues; its result still populates
		// the cache. This caller sees no value (spec §5: "Cache waiters are
		// detached on cancel").
		return zero, liberr.New(ErrorTimeout.Uint16(), "")
	}
}

func (c *Cache[K, V]) store(k string, v V, err error) {
	ttl := c.cfg.ProtectiveTTL.Time()
	if err == nil {
		ttl = v2ttl(v)
		if ttl <= 0 {
			ttl = c.cfg.PositiveDefault.Time()
		}
	}

	c.mu.Lock()
	c.entries[k] = &entry[V]{value: v, err: err, expireAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// TTLer is implemented by values that carry their own server-reported TTL
// (e.g. a cert bundle's ttl field). Values that do not implement it, or that
// report a TTL of zero or less, fall back to Config.PositiveDefault on success.
type TTLer interface {
	TTL() time.Duration
}

func v2ttl[V any](v V) time.Duration {
	if t, ok := any(v).(TTLer); ok {
		return t.TTL()
	}

	return 0
}

// Len reports the number of keys currently tracked (for tests and metrics).
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
