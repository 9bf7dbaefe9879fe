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

//go:build linux

package runtime

import (
	"golang.org/x/sys/unix"
)

// pinCurrentThread sets the calling OS thread's CPU affinity mask to cores.
// It does not lock the goroutine to the thread itself: it must be called from
// the goroutine that will run the worker's event loop, after
// runtime.LockOSThread.
func pinCurrentThread(cores []int) error {
	if len(cores) == 0 {
		return nil
	}

	var set unix.CPUSet
	set.Zero()

	for _, c := range cores {
		set.Set(c)
	}

	return unix.SchedSetaffinity(0, &set)
}

// incomingCPU reads SO_INCOMING_CPU for fd, returning -1 if unavailable.
// Used by Pool.Select(SelectByCPU, ...) callers to keep a connection's
// processing on the NUMA node that received it.
func incomingCPU(fd int) int {
	cpu, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_INCOMING_CPU)
	if err != nil {
		return -1
	}

	return cpu
}
