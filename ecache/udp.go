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

package ecache

import (
	"context"
	"net"

	liberr "github.com/nabbar/netcore/errors"

	"github.com/vmihailenco/msgpack/v5"
)

// UDPBackend is the shared "query runtime" for every C5-backed agent
// (spec §4.5 "an external 'query runtime' owns the UDP socket"): it connects
// in SOCK_DGRAM connected mode, MsgPack-encodes one request per call and
// decodes one reply, matching the ≤1024B request / ≤4096B response budget
// from spec §6.
type UDPBackend struct {
	conn     *net.UDPConn
	respSize int
}

// DialUDPBackend connects to addr. The connection is used for the lifetime
// of the backend; I/O errors surface to the caller, who downgrades them to
// negative caching (Cache.store on error).
func DialUDPBackend(addr string) (*UDPBackend, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, liberr.New(ErrorUnreachable.Uint16(), err.Error())
	}

	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, liberr.New(ErrorUnreachable.Uint16(), err.Error())
	}

	return &UDPBackend{conn: conn, respSize: 4096}, nil
}

// Roundtrip encodes req as MsgPack, sends it, reads one reply (truncated and
// logged by the caller if it exceeds the response budget) and decodes it
// into resp.
func (b *UDPBackend) Roundtrip(ctx context.Context, req any, resp any) error {
	payload, err := msgpack.Marshal(req)
	if err != nil {
		return liberr.New(ErrorUnreachable.Uint16(), err.Error())
	}

	if len(payload) > 1024 {
		payload = payload[:1024]
	}

	if dl, ok := ctx.Deadline(); ok {
		_ = b.conn.SetDeadline(dl)
	}

	if _, err = b.conn.Write(payload); err != nil {
		return liberr.New(ErrorUnreachable.Uint16(), err.Error())
	}

	buf := make([]byte, b.respSize)
	n, err := b.conn.Read(buf)
	if err != nil {
		return liberr.New(ErrorTimeout.Uint16(), err.Error())
	}

	if err = msgpack.Unmarshal(buf[:n], resp); err != nil {
		return liberr.New(ErrorUnreachable.Uint16(), err.Error())
	}

	return nil
}

// Close releases the underlying socket.
func (b *UDPBackend) Close() error {
	return b.conn.Close()
}
