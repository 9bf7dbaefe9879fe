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

// Package runtime implements the main reactor plus an optional pool of
// per-CPU worker reactors with affinity (C1). Every other core component
// spawns its background work through a Pool rather than calling `go` directly,
// so that operators get one place to reason about scheduling.
package runtime

import (
	"context"
	"sync/atomic"
)

// NodeName is a short, non-empty identifier for a registered component.
// Unique within its kind; a reload with the same name supersedes the prior
// version logically without changing identity.
type NodeName string

func (n NodeName) String() string {
	return string(n)
}

// statSeq mints process-wide unique StatId values. Never reset.
var statSeq atomic.Uint64

// StatId is a process-wide unique identifier minted atomically at object
// creation. Components use it to deduplicate metric emission across
// hot-swapped instances: reload-in-place keeps the StatId, reload-and-respawn
// mints a fresh one.
type StatId uint64

// NewStatId mints the next StatId. Safe for concurrent use.
func NewStatId() StatId {
	return StatId(statSeq.Add(1))
}

// Select names a worker-selection discipline (spec §4.1).
type Select uint8

const (
	// SelectRoundRobin spreads work evenly; used by listeners to spread accepts.
	SelectRoundRobin Select = iota
	// SelectRandom picks a uniformly random worker; used by tasks spawning sub-tasks.
	SelectRandom
	// SelectLocalRoundRobin is accepted for callers spawning sub-tasks and is
	// served by the same shared round-robin counter as SelectRoundRobin; there
	// is no goroutine-local cursor.
	SelectLocalRoundRobin
	// SelectByCPU routes to the worker owning the CPU core the OS reports for
	// the originating socket (SO_INCOMING_CPU on Linux), keeping NUMA locality.
	SelectByCPU
)

// Task is a unit of work run on a Worker. It must honor ctx cancellation:
// the pool cancels ctx when the worker is asked to stop.
type Task func(ctx context.Context)

// Worker is one reactor: either the main reactor (index 0, unpinned) or one
// member of the CPU-pinned pool. Tasks spawned on a Worker never migrate to
// another worker; the caller choosing a different Worker for sub-tasks is a
// deliberate Select decision, not a runtime default.
type Worker interface {
	// Index is the worker's position in the pool; 0 is always the main reactor.
	Index() int

	// CPU returns the set of CPU core ids this worker is pinned to, or nil if
	// the worker carries no affinity mask (always true for the main reactor).
	CPU() []int

	// Spawn runs fn on this worker's goroutine group. Returns an
	// ErrorWorkerStopped error if the worker has already been asked to stop.
	Spawn(fn Task) error

	// Running reports whether the worker still accepts new tasks.
	Running() bool

	// Pending is the number of tasks spawned on this worker that have not
	// yet returned.
	Pending() int64

	// Stop cancels the worker's context and waits up to 30 seconds for
	// in-flight tasks to return. The wait is fixed; Config has no setting for it.
	Stop()
}

// Pool is the worker registry returned by New. Each call to New builds an
// independent Pool; the package keeps no global reference to it, so callers
// pass the Pool to the components that spawn work on it.
type Pool interface {
	// Main returns the unpinned main reactor that runs the control plane,
	// logging and any scheduling-insensitive, low-throughput component.
	Main() Worker

	// Len returns the number of pinned workers (excluding the main reactor).
	Len() int

	// Worker returns the pinned worker at index i (1-based: 0 is Main), or
	// nil if i is out of range.
	Worker(i int) Worker

	// Select picks a worker per the named discipline. cpuHint is consulted
	// only for SelectByCPU, which falls back to round-robin when no running
	// worker owns that core.
	Select(d Select, cpuHint int) Worker

	// Shutdown stops every pinned worker, then the main reactor, each waiting
	// up to 30 seconds as Worker.Stop does. ctx is not consulted.
	Shutdown(ctx context.Context)
}
