/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

package hooksyslog

import (
	"fmt"
)

// WriteSev enqueues a formatted payload tagged with the given syslog severity
// onto the channel consumed by Run()'s background writer. It never blocks on
// the network: a full buffer or a hook that has not connected yet both
// return an error immediately.
func (o *hks) WriteSev(sev SyslogSeverity, p []byte) (n int, err error) {
	if !o.r.Load() {
		return 0, fmt.Errorf("%s is not running", o.getSyslogInfo())
	}

	c, ok := o.d.Load().(chan []data)
	if !ok || c == nil {
		return 0, fmt.Errorf("%s is not running", o.getSyslogInfo())
	}

	select {
	case c <- []data{newData(sev, p)}:
		return len(p), nil
	default:
		return 0, fmt.Errorf("%s write buffer is full", o.getSyslogInfo())
	}
}

// Write implements io.Writer by enqueueing the payload at the Info severity.
func (o *hks) Write(p []byte) (n int, err error) {
	return o.WriteSev(SyslogSeverityInfo, p)
}

// Close signals the background writer goroutine started by Run() to stop
// and marks the hook as no longer running. It is safe to call multiple
// times and safe to call before Run() has established its first
// connection, in which case it is a no-op. This method implements the
// io.Closer interface.
func (o *hks) Close() error {
	if !o.r.CompareAndSwap(true, false) {
		return nil
	}

	if c, ok := o.s.Load().(chan struct{}); ok && c != nil {
		close(c)
	}

	return nil
}
