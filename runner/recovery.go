/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package runner provides panic-recovery logging for background goroutines,
// shared by the long-running components of the daemon suite. It holds no
// start/stop lifecycle manager and no periodic ticker.
package runner

import (
	"fmt"
	"os"
	"strings"
)

// RecoveryCaller logs a recovered panic value captured by a deferred
// recover() call in a background goroutine. tag identifies the caller
// (typically "<package>/<file>"), rec is the recover() return value (a no-op
// if nil), and extra are optional context lines appended to the message.
func RecoveryCaller(tag string, rec interface{}, extra ...string) {
	if rec == nil {
		return
	}

	msg := fmt.Sprintf("recovered panic in %s: %v", tag, rec)

	if len(extra) > 0 {
		msg += " (" + strings.Join(extra, ", ") + ")"
	}

	_, _ = fmt.Fprintln(os.Stderr, msg)
}
