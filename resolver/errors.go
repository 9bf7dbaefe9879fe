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

// Package resolver implements the named resolver pool (C9): one driver per
// configured resolver (system or github.com/miekg/dns-backed), normalising
// every answer to ResolvedRecord with TTL clamping and a coarse error
// taxonomy (spec §4.9).
package resolver

import (
	liberr "github.com/nabbar/netcore/errors"
)

const (
	ErrorFormErr liberr.CodeError = liberr.MinPkgResolver + iota
	ErrorServFail
	ErrorNotFound
	ErrorNotImp
	ErrorRefused
	ErrorBadQuery
	ErrorBadName
	ErrorBadFamily
	ErrorBadResp
	ErrorConnRefused
	ErrorTimeout
	ErrorInternal
	ErrorEmptyDomain
	ErrorEmptyResult
	ErrorNoResolverSet
	ErrorNoResolverRunning
	ErrorDriverTimedOut
)

func init() {
	liberr.RegisterIdFctMessage(ErrorFormErr, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorFormErr:
		return "malformed DNS query"
	case ErrorServFail:
		return "server failure"
	case ErrorNotFound:
		return "name not found"
	case ErrorNotImp:
		return "query type not implemented"
	case ErrorRefused:
		return "query refused"
	case ErrorBadQuery:
		return "bad query"
	case ErrorBadName:
		return "bad domain name"
	case ErrorBadFamily:
		return "unsupported address family"
	case ErrorBadResp:
		return "malformed response"
	case ErrorConnRefused:
		return "connection refused"
	case ErrorTimeout:
		return "protective query timeout exceeded"
	case ErrorInternal:
		return "internal resolver error"
	case ErrorEmptyDomain:
		return "empty domain name"
	case ErrorEmptyResult:
		return "empty result set"
	case ErrorNoResolverSet:
		return "no resolver configured"
	case ErrorNoResolverRunning:
		return "no resolver currently running"
	case ErrorDriverTimedOut:
		return "driver timed out"
	}

	return ""
}
