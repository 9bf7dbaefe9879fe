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

package runtime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	libatm "github.com/nabbar/netcore/atomic"
	liberr "github.com/nabbar/netcore/errors"
	librun "github.com/nabbar/netcore/runner"
)

// worker is the concrete Worker: a cancellable context plus a WaitGroup that
// tracks in-flight tasks, so Stop can drain cooperatively instead of killing
// goroutines outright.
type worker struct {
	idx int
	cpu []int

	ctx  libatm.Value[context.Context]
	can  libatm.Value[context.CancelFunc]
	wg   sync.WaitGroup
	run  atomic.Bool
	pend atomic.Int64
}

func newWorker(parent context.Context, idx int, cpu []int) *worker {
	c, cancel := context.WithCancel(parent)

	w := &worker{
		idx: idx,
		cpu: append([]int(nil), cpu...),
		ctx: libatm.NewValue[context.Context](),
		can: libatm.NewValue[context.CancelFunc](),
	}

	w.ctx.Store(c)
	w.can.Store(cancel)
	w.run.Store(true)

	return w
}

func (w *worker) Index() int {
	return w.idx
}

func (w *worker) CPU() []int {
	return append([]int(nil), w.cpu...)
}

func (w *worker) Running() bool {
	return w.run.Load()
}

func (w *worker) Pending() int64 {
	return w.pend.Load()
}

func (w *worker) Spawn(fn Task) error {
	if !w.run.Load() {
		return liberr.New(ErrorWorkerStopped.Uint16(), "")
	}

	if fn == nil {
		return liberr.New(ErrorParamEmpty.Uint16(), "")
	}

	ctx := w.ctx.Load()
	w.wg.Add(1)
	w.pend.Add(1)

	go func() {
		defer func() {
			w.pend.Add(-1)
			w.wg.Done()

			if r := recover(); r != nil {
				librun.RecoveryCaller("runtime/worker", r, "worker", itoa(w.idx))
			}
		}()

		fn(ctx)
	}()

	return nil
}

// Stop cancels the worker's context and waits for in-flight tasks to return.
// Per spec §4.1, a panicking worker's tasks are considered lost: the pool
// does not restart the worker, only the process restart recovers it.
func (w *worker) Stop() {
	if !w.run.CompareAndSwap(true, false) {
		return
	}

	if cancel := w.can.Load(); cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}

	neg := i < 0
	if neg {
		i = -i
	}

	var b [20]byte
	p := len(b)

	for i > 0 {
		p--
		b[p] = byte('0' + i%10)
		i /= 10
	}

	if neg {
		p--
		b[p] = '-'
	}

	return string(b[p:])
}
