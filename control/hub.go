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

package control

import (
	"sync"

	librtm "github.com/nabbar/netcore/runtime"
)

// Hub is a bounded-lag broadcast of NodeName notifications: every
// subscriber gets its own buffered channel, and a subscriber that falls
// behind has its oldest pending notification dropped rather than blocking
// the notifier (spec §4.12: "a dependent that overflows ... re-resolves its
// upstream by name").
type Hub struct {
	mu   sync.Mutex
	subs []chan librtm.NodeName
	cap  int
}

func newHub(capacity int) *Hub {
	return &Hub{cap: capacity}
}

func (h *Hub) subscribe() <-chan librtm.NodeName {
	ch := make(chan librtm.NodeName, h.cap)

	h.mu.Lock()
	h.subs = append(h.subs, ch)
	h.mu.Unlock()

	return ch
}

func (h *Hub) notify(name librtm.NodeName) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- name:
		default:
			// Overflow: drop the oldest pending notification and retry once,
			// rather than block the registry mutation that triggered this.
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- name:
			default:
			}
		}
	}
}
