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
	"net"
	"time"

	liberr "github.com/nabbar/netcore/errors"
	liblim "github.com/nabbar/netcore/limiter"
)

// PacketConn is the subset of net.PacketConn a LimitedDatagram wraps.
type PacketConn interface {
	ReadFrom(p []byte) (n int, addr net.Addr, err error)
	WriteTo(p []byte, addr net.Addr) (n int, err error)
	Close() error
}

// LimitedDatagram is the packet-oriented counterpart of LimitedStream: it
// enforces a max-packets and max-bytes window per datagram, since a single
// oversized or excessively frequent packet is the resource the fixed window
// polices for UDP (spec §3 LimitedDatagram, §4.3.1).
type LimitedDatagram struct {
	pc       PacketConn
	window   *liblim.FixedWindow
	global   []*liblim.TokenBucket
	stats    StatsSink
	maxBytes int
}

// NewLimitedDatagram wraps pc. maxBytes bounds a single packet's payload.
func NewLimitedDatagram(pc PacketConn, window *liblim.FixedWindow, global []*liblim.TokenBucket, stats StatsSink, maxBytes int) *LimitedDatagram {
	return &LimitedDatagram{pc: pc, window: window, global: global, stats: stats, maxBytes: maxBytes}
}

func (d *LimitedDatagram) admit(n int64) (bool, time.Duration) {
	if d.window != nil {
		if ok, delay := d.window.Admit(time.Now(), n); !ok {
			return false, delay
		}
	}

	for _, b := range d.global {
		granted, delay := b.Take(time.Now(), n)
		if granted < n {
			if granted > 0 {
				b.Release(granted)
			}
			return false, delay
		}
	}

	return true, 0
}

// ReadFrom reads one datagram, accounting exactly one packet and its length
// only after the OS confirms receipt (never-over-report per spec §4.4).
func (d *LimitedDatagram) ReadFrom(p []byte) (int, net.Addr, error) {
	if d.maxBytes > 0 && len(p) > d.maxBytes {
		p = p[:d.maxBytes]
	}

	n, addr, err := d.pc.ReadFrom(p)
	if n > 0 {
		d.stats.AddBytesIn(int64(n))
		d.stats.AddPacketsIn(1)
	}

	return n, addr, err
}

// WriteTo admits one packet before submitting it whole: UDP datagrams are
// not fragmentable at this layer, so a write that cannot be fully admitted
// fails rather than partially sending.
func (d *LimitedDatagram) WriteTo(p []byte, addr net.Addr) (int, error) {
	ok, delay := d.admit(int64(len(p)))
	if !ok {
		if delay > 0 {
			return 0, liberr.New(ErrorRetryLater.Uint16(), delay.String())
		}
		return 0, liberr.New(ErrorRetryLater.Uint16(), "")
	}

	n, err := d.pc.WriteTo(p, addr)
	if n > 0 {
		d.stats.AddBytesOut(int64(n))
		d.stats.AddPacketsOut(1)
	}

	return n, err
}

func (d *LimitedDatagram) Close() error {
	return d.pc.Close()
}
