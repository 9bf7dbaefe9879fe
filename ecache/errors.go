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

// Package ecache implements the "effective cache": a generic, single-flight,
// negatively-caching, TTL-bounded request/response cache over a UDP RPC
// backend (C5), underlying the cert (C6), IP-location (C7) and peer/route
// (C8) agents. Single-flight coalescing is delegated to
// golang.org/x/sync/singleflight rather than hand-rolled, since that is
// exactly the shape of the guarantee spec §4.5 and §8.1 ask for.
package ecache

import (
	liberr "github.com/nabbar/netcore/errors"
)

const (
	ErrorTimeout liberr.CodeError = liberr.MinPkgECache + iota
	ErrorEmpty
	ErrorUnreachable
)

func init() {
	liberr.RegisterIdFctMessage(ErrorTimeout, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorTimeout:
		return "cache fetch timed out"
	case ErrorEmpty:
		return "backend returned an empty/negative result"
	case ErrorUnreachable:
		return "backend unreachable"
	}

	return ""
}
