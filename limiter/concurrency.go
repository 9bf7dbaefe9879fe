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
	"context"

	"golang.org/x/sync/semaphore"
)

// ConcurrentTasks bounds the number of in-flight tasks a component may run
// at once (e.g. C11's per-worker concurrent signing operations, or C2's
// accept-loop fan-out). Unlike Gauge, which only tracks a count for metrics
// and admission decisions, ConcurrentTasks blocks the caller until a slot is
// free, so it is built directly on golang.org/x/sync/semaphore.Weighted
// rather than reimplementing blocking acquire.
type ConcurrentTasks struct {
	sem *semaphore.Weighted
	max int64
}

// NewConcurrentTasks bounds concurrency at max simultaneous holders.
func NewConcurrentTasks(max int64) *ConcurrentTasks {
	return &ConcurrentTasks{sem: semaphore.NewWeighted(max), max: max}
}

// Acquire blocks until a slot is free or ctx is done.
func (c *ConcurrentTasks) Acquire(ctx context.Context) error {
	return c.sem.Acquire(ctx, 1)
}

// TryAcquire returns immediately: true if a slot was free and claimed.
func (c *ConcurrentTasks) TryAcquire() bool {
	return c.sem.TryAcquire(1)
}

// Release returns a slot claimed by Acquire or TryAcquire.
func (c *ConcurrentTasks) Release() {
	c.sem.Release(1)
}

// Max is the configured concurrency ceiling.
func (c *ConcurrentTasks) Max() int64 {
	return c.max
}
