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

package meteredio

import (
	"sync"
	"sync/atomic"
)

// StatsSink receives exact byte/packet counts from a LimitedStream or
// LimitedDatagram. All counters are lock-free atomics (spec §5: "Metric
// stats are lock-free atomics").
type StatsSink interface {
	AddBytesIn(n int64)
	AddBytesOut(n int64)
	AddPacketsIn(n int64)
	AddPacketsOut(n int64)

	BytesIn() int64
	BytesOut() int64
	PacketsIn() int64
	PacketsOut() int64
}

type sink struct {
	bytesIn    atomic.Int64
	bytesOut   atomic.Int64
	packetsIn  atomic.Int64
	packetsOut atomic.Int64
}

// NewStatsSink returns a bare counter sink (tcp-in/out or udp-in/out role).
func NewStatsSink() StatsSink {
	return &sink{}
}

func (s *sink) AddBytesIn(n int64)    { s.bytesIn.Add(n) }
func (s *sink) AddBytesOut(n int64)   { s.bytesOut.Add(n) }
func (s *sink) AddPacketsIn(n int64)  { s.packetsIn.Add(n) }
func (s *sink) AddPacketsOut(n int64) { s.packetsOut.Add(n) }

func (s *sink) BytesIn() int64    { return s.bytesIn.Load() }
func (s *sink) BytesOut() int64   { return s.bytesOut.Load() }
func (s *sink) PacketsIn() int64  { return s.packetsIn.Load() }
func (s *sink) PacketsOut() int64 { return s.packetsOut.Load() }

// FanOut derives a composite StatsSink that forwards every update to the
// process-wide sink plus a per-user and a per-site bucket, found-or-inserted
// under a mutex held only long enough to locate the bucket (spec §5:
// "a mutex over a hash map, held only long enough to find-or-insert the
// per-(user, server) stats bucket; the bucket itself is atomic").
type FanOut struct {
	global StatsSink

	mu      sync.Mutex
	byUser  map[string]StatsSink
	bySite  map[string]StatsSink
}

// NewFanOut wraps global and lazily creates per-user/per-site buckets.
func NewFanOut(global StatsSink) *FanOut {
	return &FanOut{
		global: global,
		byUser: make(map[string]StatsSink),
		bySite: make(map[string]StatsSink),
	}
}

func (f *FanOut) bucket(m map[string]StatsSink, key string) StatsSink {
	f.mu.Lock()
	s, ok := m[key]
	if !ok {
		s = NewStatsSink()
		m[key] = s
	}
	f.mu.Unlock()

	return s
}

// For returns a StatsSink that fans an update out to the global sink plus
// the named user and site buckets.
func (f *FanOut) For(user, site string) StatsSink {
	return &fanoutView{
		global: f.global,
		user:   f.bucket(f.byUser, user),
		site:   f.bucket(f.bySite, site),
	}
}

// User returns the per-user bucket's accumulated counters, or nil if unseen.
func (f *FanOut) User(user string) StatsSink {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byUser[user]
}

// Site returns the per-site bucket's accumulated counters, or nil if unseen.
func (f *FanOut) Site(site string) StatsSink {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bySite[site]
}

type fanoutView struct {
	global, user, site StatsSink
}

func (v *fanoutView) AddBytesIn(n int64) {
	v.global.AddBytesIn(n)
	v.user.AddBytesIn(n)
	v.site.AddBytesIn(n)
}

func (v *fanoutView) AddBytesOut(n int64) {
	v.global.AddBytesOut(n)
	v.user.AddBytesOut(n)
	v.site.AddBytesOut(n)
}

func (v *fanoutView) AddPacketsIn(n int64) {
	v.global.AddPacketsIn(n)
	v.user.AddPacketsIn(n)
	v.site.AddPacketsIn(n)
}

func (v *fanoutView) AddPacketsOut(n int64) {
	v.global.AddPacketsOut(n)
	v.user.AddPacketsOut(n)
	v.site.AddPacketsOut(n)
}

func (v *fanoutView) BytesIn() int64    { return v.global.BytesIn() }
func (v *fanoutView) BytesOut() int64   { return v.global.BytesOut() }
func (v *fanoutView) PacketsIn() int64  { return v.global.PacketsIn() }
func (v *fanoutView) PacketsOut() int64 { return v.global.PacketsOut() }
