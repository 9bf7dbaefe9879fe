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
	"sync/atomic"
	"time"
)

// TokenBucket is a global limiter shared by many tasks: replenishBytes
// tokens are added every replenishInterval, capped at maxBurstBytes. Token
// accounting is lock-free (compare-and-swap), safe against concurrent
// Take/Release from arbitrary goroutines (spec §4.3.2, §5).
type TokenBucket struct {
	replenish     int64
	interval      time.Duration
	maxBurst      int64
	available     atomic.Int64
	lastRefillNs  atomic.Int64
}

// NewTokenBucket creates a bucket starting full (available == maxBurst).
func NewTokenBucket(replenishBytes int64, interval time.Duration, maxBurstBytes int64) *TokenBucket {
	b := &TokenBucket{
		replenish: replenishBytes,
		interval:  interval,
		maxBurst:  maxBurstBytes,
	}

	b.available.Store(maxBurstBytes)
	b.lastRefillNs.Store(time.Now().UnixNano())

	return b
}

func (b *TokenBucket) refill(now time.Time) {
	last := b.lastRefillNs.Load()
	elapsed := now.UnixNano() - last

	if elapsed < int64(b.interval) {
		return
	}

	ticks := elapsed / int64(b.interval)
	if ticks <= 0 {
		return
	}

	if !b.lastRefillNs.CompareAndSwap(last, last+ticks*int64(b.interval)) {
		return
	}

	add := ticks * b.replenish

	for {
		cur := b.available.Load()
		next := cur + add
		if next > b.maxBurst {
			next = b.maxBurst
		}

		if b.available.CompareAndSwap(cur, next) {
			return
		}
	}
}

// Take consumes up to request tokens, returning the share actually granted
// (min(request, available)). When the bucket is empty it grants 0 and
// returns the time until the next replenish tick; otherwise retryAfter is 0.
func (b *TokenBucket) Take(now time.Time, request int64) (granted int64, retryAfter time.Duration) {
	b.refill(now)

	for {
		cur := b.available.Load()
		if cur <= 0 {
			next := time.Unix(0, b.lastRefillNs.Load()).Add(b.interval)
			return 0, next.Sub(now)
		}

		take := request
		if take > cur {
			take = cur
		}

		if b.available.CompareAndSwap(cur, cur-take) {
			return take, 0
		}
	}
}

// Release returns n tokens to the bucket. Per the monotonicity property
// (spec §8.4), Release never decreases Available and Available never
// exceeds maxBurst.
func (b *TokenBucket) Release(n int64) {
	if n <= 0 {
		return
	}

	for {
		cur := b.available.Load()
		next := cur + n
		if next > b.maxBurst {
			next = b.maxBurst
		}

		if b.available.CompareAndSwap(cur, next) {
			return
		}
	}
}

// Available is the current token count.
func (b *TokenBucket) Available() int64 {
	return b.available.Load()
}
