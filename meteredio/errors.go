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

// Package meteredio wraps byte and packet transports so every operation
// reserves quota from the limiter package (C3) before it is submitted, and
// accounts the exact, never-over-reported result afterward (C4). Grounded on
// the teacher's ioutils/ioprogress byte-counting reader/writer and
// ioutils/multi fan-out writer, generalized from a progress callback to a
// limiter-gated StatsSink.
package meteredio

import (
	liberr "github.com/nabbar/netcore/errors"
)

const (
	ErrorRetryLater liberr.CodeError = liberr.MinPkgMeteredIO + iota
	ErrorClosed
)

func init() {
	liberr.RegisterIdFctMessage(ErrorRetryLater, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorRetryLater:
		return "limiter quota exhausted, retry after the reported delay"
	case ErrorClosed:
		return "stream closed"
	}

	return ""
}
