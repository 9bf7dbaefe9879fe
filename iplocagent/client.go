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

package iplocagent

import (
	"context"
	"net"
	"time"

	liberr "github.com/nabbar/netcore/errors"

	libeca "github.com/nabbar/netcore/ecache"
)

// Record is the server's computed answer for one IP (spec §4.7). Network is
// the CIDR block the lookup matched against, not the bare IP.
type Record struct {
	IP         string `msgpack:"ip"`
	Network    string `msgpack:"network"`
	Country    string `msgpack:"country"`
	Continent  string `msgpack:"continent"`
	ASNumber   uint32 `msgpack:"as_number"`
	ISPName    string `msgpack:"isp_name"`
	ISPDomain  string `msgpack:"isp_domain"`
	TTLSeconds int64  `msgpack:"ttl"`
}

// TTL implements ecache.TTLer.
func (r Record) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// rpcBackend is the subset of ecache.UDPBackend this agent depends on,
// declared locally so tests can substitute a fake without a real socket.
type rpcBackend interface {
	Roundtrip(ctx context.Context, req any, resp any) error
}

// Agent is the C7 IP-location agent.
type Agent struct {
	cache *libeca.Cache[net.IP, Record]
}

// New wires an Agent on top of an already-dialed UDP backend.
func New(backend rpcBackend, cfg libeca.Config) *Agent {
	return &Agent{
		cache: libeca.New[net.IP, Record](cfg, &roundtripper{backend: backend}, func(ip net.IP) string {
			return ip.String()
		}),
	}
}

type roundtripper struct {
	backend rpcBackend
}

func (r *roundtripper) Query(ctx context.Context, ip net.IP) (Record, error) {
	if ip == nil {
		return Record{}, liberr.New(ErrorInvalidIP.Uint16(), "nil IP")
	}

	var rec Record
	req := struct {
		IP string `msgpack:"ip"`
	}{IP: ip.String()}

	if err := r.backend.Roundtrip(ctx, req, &rec); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Lookup resolves the geo/ASN record for ip, waiting at most timeout for an
// in-flight backend roundtrip.
func (a *Agent) Lookup(ctx context.Context, ip net.IP, timeout time.Duration) (Record, error) {
	return a.cache.Fetch(ctx, ip, timeout)
}

// Len reports the number of cached IP entries (metrics/tests).
func (a *Agent) Len() int {
	return a.cache.Len()
}
