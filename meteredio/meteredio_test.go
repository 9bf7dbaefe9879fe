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

package meteredio_test

import (
	"bytes"
	"io"

	. "github.com/nabbar/netcore/meteredio"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type rwc struct {
	*bytes.Buffer
}

func (rwc) Close() error { return nil }

var _ = Describe("meteredio", func() {
	Describe("LimitedStream", func() {
		It("accounts exact bytes written and read", func() {
			backing := &rwc{Buffer: bytes.NewBuffer(nil)}
			stats := NewStatsSink()

			s := NewLimitedStream(backing, nil, nil, stats)

			n, err := s.Write([]byte("hello world"))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(11))
			Expect(stats.BytesOut()).To(Equal(int64(11)))

			p := make([]byte, 64)
			n, err = s.Read(p)
			Expect(err).To(Or(BeNil(), Equal(io.EOF)))
			Expect(n).To(Equal(11))
			Expect(stats.BytesIn()).To(Equal(int64(11)))
		})
	})

	Describe("FanOut", func() {
		It("updates global, per-user and per-site buckets together", func() {
			f := NewFanOut(NewStatsSink())
			v := f.For("alice", "example.com")

			v.AddBytesIn(100)

			Expect(f.User("alice").BytesIn()).To(Equal(int64(100)))
			Expect(f.Site("example.com").BytesIn()).To(Equal(int64(100)))
		})
	})

	Describe("LimitedBufReader", func() {
		It("peeks without consuming, then replays on Unread", func() {
			b := NewLimitedBufReader(bytes.NewBufferString("GET / HTTP/1.1\r\n"))

			peeked, err := b.Peek(3)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(peeked)).To(Equal("GET"))

			all := make([]byte, 16)
			n, _ := io.ReadFull(b, all)
			Expect(string(all[:n])).To(Equal("GET / HTTP/1.1\r\n"))
		})

		It("replays unread bytes ahead of whatever remains buffered", func() {
			b := NewLimitedBufReader(bytes.NewBufferString("world"))
			_, _ = b.Peek(5)
			b.Unread([]byte("hello "))

			out := make([]byte, 32)
			n, _ := b.Read(out)
			Expect(string(out[:n])).To(Equal("hello world"))
		})
	})
})
