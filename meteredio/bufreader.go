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
)

// LimitedBufReader adds a peek buffer in front of a LimitedStream, used by
// the stream inspector (C10) to classify the protocol on the wire without
// consuming bytes: Peek returns up to n bytes without advancing the read
// cursor, and Unread replays bytes the protocol handler did not want back
// onto the stream (spec §4.4: "the session can 'unread' bytes back to the
// protocol handler").
//
// Grounded on the teacher's ioutils/bufferReadCloser, generalized from a
// general-purpose buffered closer to a peek-then-replay reader feeding a
// classifier.
type LimitedBufReader struct {
	r   io.Reader
	buf []byte
	off int
}

// NewLimitedBufReader wraps r.
func NewLimitedBufReader(r io.Reader) *LimitedBufReader {
	return &LimitedBufReader{r: r}
}

// Peek returns up to n bytes from the stream without consuming them. It may
// return fewer than n bytes (with a nil error) at EOF.
func (b *LimitedBufReader) Peek(n int) ([]byte, error) {
	for len(b.buf)-b.off < n {
		chunk := make([]byte, n-(len(b.buf)-b.off))
		rn, err := b.r.Read(chunk)
		if rn > 0 {
			b.buf = append(b.buf, chunk[:rn]...)
		}
		if err != nil {
			return b.buf[b.off:], err
		}
		if rn == 0 {
			break
		}
	}

	end := b.off + n
	if end > len(b.buf) {
		end = len(b.buf)
	}

	return b.buf[b.off:end], nil
}

// Read consumes buffered bytes first, then falls through to the underlying
// reader once the peek buffer is drained.
func (b *LimitedBufReader) Read(p []byte) (int, error) {
	if b.off < len(b.buf) {
		n := copy(p, b.buf[b.off:])
		b.off += n

		if b.off == len(b.buf) {
			b.buf = nil
			b.off = 0
		}

		return n, nil
	}

	return b.r.Read(p)
}

// Unread pushes bytes back in front of whatever remains buffered, so a
// classifier that peeked ahead and committed to a protocol can hand the
// unconsumed prefix back to that protocol's handler.
func (b *LimitedBufReader) Unread(p []byte) {
	if len(p) == 0 {
		return
	}

	remaining := b.buf[b.off:]
	b.buf = append(append([]byte(nil), p...), remaining...)
	b.off = 0
}

// Buffered reports how many peeked-but-unconsumed bytes remain.
func (b *LimitedBufReader) Buffered() int {
	return len(b.buf) - b.off
}
