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

// Package limiter implements the three rate/resource-limiting patterns of
// the core (C3): a per-task fixed-window limiter, a shared token bucket and
// a counting gauge semaphore. Ordering guarantee (spec §4.3): callers must
// check the fixed window before any global bucket; both must admit.
package limiter

import (
	liberr "github.com/nabbar/netcore/errors"
)

const (
	ErrorOverflow liberr.CodeError = liberr.MinPkgLimiter + iota
	ErrorNoPermits
	ErrorRetryLater
)

func init() {
	liberr.RegisterIdFctMessage(ErrorOverflow, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorOverflow:
		return "semaphore arithmetic overflow"
	case ErrorNoPermits:
		return "no permits available under the configured ceiling"
	case ErrorRetryLater:
		return "quota exhausted, retry after the reported delay"
	}

	return ""
}
