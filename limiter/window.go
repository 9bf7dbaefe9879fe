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
	"sync"
	"time"
)

// FixedWindow is a per-task limiter over a window of width shiftMillis,
// a power-of-two count of milliseconds: the window id is the wall-clock
// millisecond divided by shiftMillis, so no timer goroutine is needed.
//
// Policy (spec §4.3.1): the first operation admitted into a new window
// always passes in full, even if it alone exceeds the quota, so a single
// large packet cannot deadlock a stream that never gets a second chance.
//
// Admit serializes on a mutex: the window boundary decision and the usage
// update must be observed together, unlike the lock-free stats counters in
// §5 which only ever move in one direction.
type FixedWindow struct {
	shiftMillis int64
	maxBytes    int64

	mu       sync.Mutex
	windowID int64
	used     int64
}

// NewFixedWindow builds a window limiter. shiftMillis must be a power of two;
// non-power-of-two values are rounded down to the nearest one, minimum 1.
func NewFixedWindow(shiftMillis, maxBytes int64) *FixedWindow {
	return &FixedWindow{
		shiftMillis: roundDownPow2(shiftMillis),
		maxBytes:    maxBytes,
		windowID:    -1,
	}
}

func roundDownPow2(n int64) int64 {
	if n <= 1 {
		return 1
	}

	p := int64(1)
	for p*2 <= n {
		p *= 2
	}

	return p
}

func (w *FixedWindow) currentWindow(now time.Time) int64 {
	return now.UnixMilli() / w.shiftMillis
}

// Admit reserves n bytes (or packets) from the current window. It returns
// (true, 0) if admitted, or (false, delay) with the delay until the next
// window boundary if the quota is exhausted. The very first admission of a
// newly observed window always succeeds regardless of n.
func (w *FixedWindow) Admit(now time.Time, n int64) (bool, time.Duration) {
	cur := w.currentWindow(now)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.windowID != cur {
		// New window observed: reset usage and unconditionally admit the
		// first packet, per the first-packet carve-out.
		w.windowID = cur
		w.used = n
		return true, 0
	}

	if w.used+n <= w.maxBytes {
		w.used += n
		return true, 0
	}

	nextBoundary := time.UnixMilli((cur + 1) * w.shiftMillis)
	return false, nextBoundary.Sub(now)
}

// Used reports bytes admitted within the current window.
func (w *FixedWindow) Used() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.used
}
