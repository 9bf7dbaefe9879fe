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
	"io"
	"time"

	liberr "github.com/nabbar/netcore/errors"
	liblim "github.com/nabbar/netcore/limiter"
)

// LimitedStream wraps a byte stream with C3 accounting: every Read/Write
// reserves quota from the per-task FixedWindow and every configured global
// TokenBucket before the underlying I/O call, then records the exact bytes
// the OS actually moved into Stats. Per spec §4.4 it "never over-reports":
// a short read or write only ever accounts the portion actually transferred.
type LimitedStream struct {
	rw     io.ReadWriteCloser
	window *liblim.FixedWindow
	global []*liblim.TokenBucket
	stats  StatsSink
}

// NewLimitedStream wraps rw. window may be nil (no per-task cap); global may
// be empty (no shared caps). stats must not be nil.
func NewLimitedStream(rw io.ReadWriteCloser, window *liblim.FixedWindow, global []*liblim.TokenBucket, stats StatsSink) *LimitedStream {
	return &LimitedStream{rw: rw, window: window, global: global, stats: stats}
}

// reserve computes how many of the requested bytes may be submitted to the
// OS right now: the minimum of the caller's buffer, the per-task window's
// remaining quota and every global bucket's available share. Per the
// ordering guarantee (spec §4.3), the window is checked first.
func (s *LimitedStream) reserve(want int) (int, time.Duration) {
	n := int64(want)

	if s.window != nil {
		ok, delay := s.window.Admit(time.Now(), n)
		if !ok {
			return 0, delay
		}
	}

	for _, b := range s.global {
		granted, delay := b.Take(time.Now(), n)
		if granted < n {
			// Partial grant from this bucket is insufficient: hand it back
			// and fail the whole reservation rather than fragment it further.
			if granted > 0 {
				b.Release(granted)
			}
			return 0, delay
		}
	}

	return want, 0
}

func (s *LimitedStream) Read(p []byte) (int, error) {
	allowed, delay := s.reserve(len(p))
	if allowed == 0 {
		if delay > 0 {
			return 0, liberr.New(ErrorRetryLater.Uint16(), delay.String())
		}
		return 0, liberr.New(ErrorRetryLater.Uint16(), "")
	}

	n, err := s.rw.Read(p[:allowed])

	if n < allowed {
		// Unused reservation on a short read: release global share back;
		// the fixed window has no release (it is a use-it-or-lose-it quota
		// by design, matching the teacher's per-interval accounting style).
		for _, b := range s.global {
			b.Release(int64(allowed - n))
		}
	}

	if n > 0 {
		s.stats.AddBytesIn(int64(n))
	}

	return n, err
}

func (s *LimitedStream) Write(p []byte) (int, error) {
	var total int

	for total < len(p) {
		allowed, delay := s.reserve(len(p) - total)
		if allowed == 0 {
			if total > 0 {
				return total, nil
			}
			if delay > 0 {
				return 0, liberr.New(ErrorRetryLater.Uint16(), delay.String())
			}
			return 0, liberr.New(ErrorRetryLater.Uint16(), "")
		}

		n, err := s.rw.Write(p[total : total+allowed])

		if n < allowed {
			for _, b := range s.global {
				b.Release(int64(allowed - n))
			}
		}

		if n > 0 {
			s.stats.AddBytesOut(int64(n))
			total += n
		}

		if err != nil {
			return total, err
		}

		if n == 0 {
			break
		}
	}

	return total, nil
}

func (s *LimitedStream) Close() error {
	return s.rw.Close()
}

// Stats returns the sink accumulating this stream's accounted traffic.
func (s *LimitedStream) Stats() StatsSink {
	return s.stats
}
