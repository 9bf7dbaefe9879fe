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

package resolver

import (
	"context"
	"sync"
	"time"

	libatm "github.com/nabbar/netcore/atomic"
	liberr "github.com/nabbar/netcore/errors"
	librtm "github.com/nabbar/netcore/runtime"
)

// Named is one running, named resolver: a StatId that survives in-place
// reloads plus the currently active driver and its config (spec §4.9 "a
// resolver reload keeps the same StatId").
type Named struct {
	id  librtm.StatId
	cur libatm.Value[*generation]

	wg sync.WaitGroup
}

type generation struct {
	cfg Config
	drv driver
}

// New creates a named resolver from cfg and starts its driver.
func New(cfg Config) *Named {
	n := &Named{
		id:  librtm.NewStatId(),
		cur: libatm.NewValue[*generation](),
	}

	n.cur.Store(&generation{cfg: cfg, drv: newDriver(cfg)})

	return n
}

func newDriver(cfg Config) driver {
	if cfg.Kind == KindMiekgDNS && len(cfg.Nameservers) > 0 {
		return newDNSDriver(cfg.Nameservers, cfg.ProtectiveQueryWait.Time())
	}

	return newSystemDriver()
}

// StatId is stable across Reload calls. A kind change through Pool.Set builds
// a new Named, which mints a new one.
func (n *Named) StatId() librtm.StatId {
	return n.id
}

// Reload swaps the driver in place when only tunables changed (same Kind):
// the StatId and any in-flight Resolve calls against the old generation are
// left untouched; they simply finish against the retiring driver.
func (n *Named) Reload(cfg Config) {
	gen := &generation{cfg: cfg, drv: newDriver(cfg)}
	old := n.cur.Load()
	n.cur.Store(gen)

	if old != nil && old.drv != nil {
		old.drv.close()
	}
}

// Resolve queries the active generation's driver, normalising its answer
// into a TTL-clamped ResolvedRecord and enforcing the protective per-query
// timeout independent of the driver itself.
func (n *Named) Resolve(ctx context.Context, name string) (ResolvedRecord, error) {
	if name == "" {
		return ResolvedRecord{}, liberr.New(ErrorEmptyDomain.Uint16(), "")
	}

	gen := n.cur.Load()
	if gen == nil || gen.drv == nil {
		return ResolvedRecord{}, liberr.New(ErrorNoResolverSet.Uint16(), "")
	}

	n.wg.Add(1)
	defer n.wg.Done()

	cfg := gen.cfg

	qctx := ctx
	var cancel context.CancelFunc
	if wait := cfg.ProtectiveQueryWait.Time(); wait > 0 {
		qctx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
	}

	now := time.Now()
	addrs, ttl, err := gen.drv.lookup(qctx, name)

	if err != nil {
		if qctx.Err() == context.DeadlineExceeded {
			return negativeRecord(name, now, cfg.ProtectiveCacheTTL.Time(), KindDriverTimedOut), nil
		}

		kind := KindServFail
		if de, ok := err.(*driverError); ok {
			kind = de.kind
		}

		return negativeRecord(name, now, cfg.NegativeTTL.Time(), kind), nil
	}

	if len(addrs) == 0 {
		return negativeRecord(name, now, cfg.NegativeTTL.Time(), KindEmptyResult), nil
	}

	clamped := clampTTL(ttl, cfg)

	return ResolvedRecord{
		Domain:    name,
		CreatedAt: now,
		Expiry:    now.Add(clamped),
		Outcome:   Outcome{Addresses: addrs},
	}, nil
}

func negativeRecord(name string, now time.Time, ttl time.Duration, kind CodeErrorKind) ResolvedRecord {
	return ResolvedRecord{
		Domain:    name,
		CreatedAt: now,
		Expiry:    now.Add(ttl),
		Outcome:   Outcome{ErrorCode: kind},
	}
}

// Drain blocks until every in-flight Resolve against the current (or any
// retired) generation returns, for use before a full process shutdown.
func (n *Named) Drain() {
	n.wg.Wait()
}

// Pool is a registry of named resolvers keyed by name, mirroring the
// runtime.Pool worker-registry shape (C1) for the resolver's own lifecycle.
type Pool struct {
	mu        sync.RWMutex
	resolvers map[string]*Named
}

// NewPool builds an empty resolver pool.
func NewPool() *Pool {
	return &Pool{resolvers: make(map[string]*Named)}
}

// Set installs or reloads the named resolver identified by name. If one
// already exists and its Kind is unchanged, it is reloaded in place
// (StatId preserved); otherwise a new Named replaces it (spec §4.9 "a
// completely new config spawns a new driver").
func (p *Pool) Set(name string, cfg Config) librtm.StatId {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.resolvers[name]; ok {
		if gen := existing.cur.Load(); gen != nil && gen.cfg.Kind == cfg.Kind {
			existing.Reload(cfg)
			return existing.id
		}
	}

	n := New(cfg)
	p.resolvers[name] = n

	return n.id
}

// Get returns the named resolver, or false if none is configured.
func (p *Pool) Get(name string) (*Named, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n, ok := p.resolvers[name]
	return n, ok
}

// Resolve looks up name against the pool's named resolver.
func (p *Pool) Resolve(ctx context.Context, resolverName, domain string) (ResolvedRecord, error) {
	n, ok := p.Get(resolverName)
	if !ok {
		return ResolvedRecord{}, liberr.New(ErrorNoResolverRunning.Uint16(), "")
	}

	return n.Resolve(ctx, domain)
}
