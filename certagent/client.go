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

package certagent

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	libeca "github.com/nabbar/netcore/ecache"
)

// Key identifies a leaf certificate by hostname and logical service.
type Key struct {
	Host    string
	Service string
}

func keyString(k Key) string {
	return k.Host + "/" + k.Service
}

// rpcBackend is the subset of ecache.UDPBackend this agent depends on,
// declared locally so tests can substitute a fake without a real socket.
type rpcBackend interface {
	Roundtrip(ctx context.Context, req any, resp any) error
}

// Agent is the C6 cert agent: a thin ecache.Cache specialization that turns
// (host, service) lookups into served-side *tls.Config values.
type Agent struct {
	cache *libeca.Cache[Key, Response]
}

// New wires an Agent on top of an already-dialed UDP backend (shared with
// the IP-location and route agents per spec §4.5 "shared query runtime").
func New(backend rpcBackend, cfg libeca.Config) *Agent {
	return &Agent{
		cache: libeca.New[Key, Response](cfg, &roundtripper{backend: backend}, keyString),
	}
}

type roundtripper struct {
	backend rpcBackend
}

func (r *roundtripper) Query(ctx context.Context, key Key) (Response, error) {
	var resp Response

	req := Request{Host: key.Host, Service: key.Service}
	if err := r.backend.Roundtrip(ctx, req, &resp); err != nil {
		return Response{}, err
	}

	return resp, nil
}

// Fetch resolves the certificate bundle for (host, service), waiting at most
// timeout for an in-flight backend roundtrip.
func (a *Agent) Fetch(ctx context.Context, host, service string, timeout time.Duration) (Response, error) {
	return a.cache.Fetch(ctx, Key{Host: host, Service: service}, timeout)
}

// ServeTLSConfig resolves the bundle and assembles a *tls.Config ready to be
// handed to a listener (C2) for this connection's SNI name.
func (a *Agent) ServeTLSConfig(ctx context.Context, host, service string, timeout time.Duration) (*tls.Config, error) {
	resp, err := a.Fetch(ctx, host, service, timeout)
	if err != nil {
		return nil, err
	}

	return resp.TLSConfig(host)
}

func (a *Agent) String() string {
	return fmt.Sprintf("certagent(entries=%d)", a.cache.Len())
}
