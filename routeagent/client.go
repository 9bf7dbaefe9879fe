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

package routeagent

import (
	"context"
	"sync"
	"time"

	libeca "github.com/nabbar/netcore/ecache"
)

// rpcBackend is the subset of ecache.UDPBackend this agent depends on,
// declared locally so tests can substitute a fake without a real socket.
type rpcBackend interface {
	Roundtrip(ctx context.Context, req any, resp any) error
}

// Key identifies a routing decision (spec §4.8: "keyed (user, host,
// client_ip?)").
type Key struct {
	User     string
	Host     string
	ClientIP string
}

func keyString(k Key) string {
	return k.User + "/" + k.Host + "/" + k.ClientIP
}

// record is the cached response decoded off the wire plus its TTL.
type record struct {
	Set        PeerSet `msgpack:"peers"`
	TTLSeconds int64   `msgpack:"ttl"`
}

func (r record) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// Agent is the C8 peer/route agent.
type Agent struct {
	cache  *libeca.Cache[Key, record]
	policy Policy

	mu  sync.Mutex
	rrs map[string]*rrCounter
}

// New wires an Agent on top of an already-dialed UDP backend, applying
// policy to every fetched PeerSet.
func New(backend rpcBackend, cfg libeca.Config, policy Policy) *Agent {
	return &Agent{
		cache:  libeca.New[Key, record](cfg, &roundtripper{backend: backend}, keyString),
		policy: policy,
		rrs:    make(map[string]*rrCounter),
	}
}

type roundtripper struct {
	backend rpcBackend
}

func (r *roundtripper) Query(ctx context.Context, key Key) (record, error) {
	var rec record
	if err := r.backend.Roundtrip(ctx, key, &rec); err != nil {
		return record{}, err
	}

	return rec, nil
}

// Resolve fetches the PeerSet for (user, host, clientIP) and applies the
// agent's pick policy, keyed on clientIP for the consistent-hash policies so
// repeated lookups from the same client land on the same peer.
func (a *Agent) Resolve(ctx context.Context, user, host, clientIP string, timeout time.Duration) (WeightedPeer, error) {
	k := Key{User: user, Host: host, ClientIP: clientIP}

	rec, err := a.cache.Fetch(ctx, k, timeout)
	if err != nil {
		return WeightedPeer{}, err
	}

	a.mu.Lock()
	rr, ok := a.rrs[keyString(k)]
	if !ok {
		rr = &rrCounter{}
		a.rrs[keyString(k)] = rr
	}
	a.mu.Unlock()

	return rec.Set.Pick(a.policy, clientIP, rr)
}
