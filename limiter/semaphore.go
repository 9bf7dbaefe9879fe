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

package limiter

import (
	"math"
	"sync/atomic"

	liberr "github.com/nabbar/netcore/errors"
)

// gaugeCounter is the shared counter a Gauge and every semaphore produced by
// its Reconfigure share: spec §4.3.3 requires that reconfiguration "creates a
// new semaphore that shares the underlying counter with the old one".
type gaugeCounter struct {
	value atomic.Int64
}

// Gauge is the counting-semaphore limiter (spec §4.3.3). A ceiling of 0
// disables the admission check entirely while still tracking the gauge, per
// "new_updated(0) disables the check but preserves gauge".
type Gauge struct {
	permits atomic.Int64
	counter *gaugeCounter
}

// NewGauge creates a Gauge with its own fresh counter, starting at zero.
func NewGauge(permits int64) *Gauge {
	g := &Gauge{counter: &gaugeCounter{}}
	g.permits.Store(permits)
	return g
}

// Reconfigure returns a new Gauge with a different ceiling that shares this
// Gauge's live counter: in-flight permits already taken remain accounted for
// by both instances, giving a live-resize with no lost or double count.
func (g *Gauge) Reconfigure(permits int64) *Gauge {
	n := &Gauge{counter: g.counter}
	n.permits.Store(permits)
	return n
}

// Permit is returned by TryAcquire; Release must be called exactly once.
type Permit struct {
	g *Gauge
	n int64
}

// Release returns the permit's count to the gauge. Safe to call at most
// once; calling it a second time would double-release (the caller, e.g. a
// connection-close handler invoked via defer, is responsible for exactly-once
// semantics, mirroring a dropped RAII guard in the source design).
func (p *Permit) Release() {
	if p == nil || p.g == nil {
		return
	}

	p.g.counter.value.Add(-p.n)
}

// TryAcquire admits n iff gauge+n <= permits (when permits > 0), or always
// when permits <= 0 (check disabled). Returns ErrorOverflow if the addition
// would overflow int64, ErrorNoPermits if the ceiling would be exceeded.
func (g *Gauge) TryAcquire(n int64) (*Permit, error) {
	if n <= 0 {
		return &Permit{g: g, n: 0}, nil
	}

	ceiling := g.permits.Load()

	for {
		cur := g.counter.value.Load()

		if cur > math.MaxInt64-n {
			return nil, liberr.New(ErrorOverflow.Uint16(), "")
		}

		next := cur + n

		if ceiling > 0 && next > ceiling {
			return nil, liberr.New(ErrorNoPermits.Uint16(), "")
		}

		if g.counter.value.CompareAndSwap(cur, next) {
			return &Permit{g: g, n: n}, nil
		}
	}
}

// Value is the current outstanding count, shared across every Gauge produced
// from the same lineage via Reconfigure.
func (g *Gauge) Value() int64 {
	return g.counter.value.Load()
}

// Ceiling is the configured permit limit (0 means unchecked).
func (g *Gauge) Ceiling() int64 {
	return g.permits.Load()
}
