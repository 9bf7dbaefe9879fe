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
	"math/rand"
	"runtime"
	"sync/atomic"
)

// pool is the concrete Pool. Workers are laid out once at New and never
// resized: a live-resize would break the "tasks do not migrate" invariant.
type pool struct {
	main    *worker
	workers []*worker

	rr  atomic.Uint64
	cpu map[int]*worker
}

// Config drives worker-pool construction.
type Config struct {
	// Workers is the number of pinned reactors. Zero disables the pool:
	// every Select call then returns the main reactor.
	Workers int

	// Affinity maps worker index (0-based, within Workers) to the CPU core
	// ids it should be pinned to. A worker absent from the map runs unpinned.
	Affinity map[int][]int
}

// New builds the pool's main reactor and, if cfg.Workers > 0, one goroutine
// group per worker, locked to its own OS thread and (when cfg.Affinity names
// it) pinned to specific cores. Thread-creation failure is fatal per spec
// §4.1; since Go goroutines cannot fail to "start" the way OS threads can,
// the failure mode modeled here is pinning failure, returned rather than
// panicking so the caller decides whether affinity is mandatory.
func New(ctx context.Context, cfg Config) (Pool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p := &pool{
		main: newWorker(ctx, 0, nil),
		cpu:  make(map[int]*worker),
	}

	for i := 0; i < cfg.Workers; i++ {
		cores := cfg.Affinity[i]
		w := newWorker(ctx, i+1, cores)
		p.workers = append(p.workers, w)

		if len(cores) > 0 {
			pinned := make(chan error, 1)
			if err := w.Spawn(func(ctx context.Context) {
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()

				pinned <- pinCurrentThread(cores)
				<-ctx.Done()
			}); err != nil {
				return nil, err
			}

			if err := <-pinned; err != nil {
				p.Shutdown(ctx)
				return nil, err
			}

			for _, c := range cores {
				p.cpu[c] = w
			}
		}
	}

	return p, nil
}

func (p *pool) Main() Worker {
	return p.main
}

func (p *pool) Len() int {
	return len(p.workers)
}

func (p *pool) Worker(i int) Worker {
	if i == 0 {
		return p.main
	}

	idx := i - 1
	if idx < 0 || idx >= len(p.workers) {
		return nil
	}

	return p.workers[idx]
}

func (p *pool) Select(d Select, cpuHint int) Worker {
	if len(p.workers) == 0 {
		return p.main
	}

	switch d {
	case SelectByCPU:
		if w, ok := p.cpu[cpuHint]; ok && w.Running() {
			return w
		}

		return p.roundRobin()

	case SelectRandom:
		return p.workers[rand.Intn(len(p.workers))]

	case SelectLocalRoundRobin, SelectRoundRobin:
		return p.roundRobin()

	default:
		return p.roundRobin()
	}
}

func (p *pool) roundRobin() Worker {
	n := uint64(len(p.workers))
	i := p.rr.Add(1) - 1
	return p.workers[i%n]
}

func (p *pool) Shutdown(ctx context.Context) {
	for _, w := range p.workers {
		w.Stop()
	}

	p.main.Stop()
}
