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

package resolver

import (
	"net"
	"time"

	libdur "github.com/nabbar/netcore/duration"
)

// Strategy selects one address out of a ResolvedRecord's positive answer.
type Strategy uint8

const (
	StrategyIPv4First Strategy = iota
	StrategyIPv6First
	StrategyIPv4Only
	StrategyIPv6Only
	StrategyRandom
)

// Kind names a resolver driver implementation.
type Kind uint8

const (
	KindSystem Kind = iota
	KindMiekgDNS
)

// Config carries one named resolver's policy. Durations use duration.Duration
// so it decodes straight out of Viper/YAML like every other component.
type Config struct {
	Kind Kind

	// Nameservers is used by KindMiekgDNS only; empty falls back to the
	// resolv.conf search list the net.DefaultResolver would otherwise read.
	Nameservers []string

	PositiveMin         libdur.Duration
	PositiveMax         libdur.Duration
	NegativeTTL         libdur.Duration
	ProtectiveCacheTTL  libdur.Duration
	ProtectiveQueryWait libdur.Duration
}

func clampTTL(ttl time.Duration, cfg Config) time.Duration {
	if ttl < cfg.PositiveMin.Time() {
		return cfg.PositiveMin.Time()
	}

	if cfg.PositiveMax.Time() > 0 && ttl > cfg.PositiveMax.Time() {
		return cfg.PositiveMax.Time()
	}

	return ttl
}

// Outcome is the normalised shape of a driver's answer: either a positive
// address list or a negative/error code, never both.
type Outcome struct {
	Addresses []net.IP
	ErrorCode CodeErrorKind
}

// CodeErrorKind mirrors the coarse error taxonomy from spec §4.9, kept
// distinct from liberr.CodeError so callers can switch on it without
// depending on the error package's numeric allocation.
type CodeErrorKind uint8

const (
	KindNone CodeErrorKind = iota
	KindFormErr
	KindServFail
	KindNotFound
	KindNotImp
	KindRefused
	KindBadQuery
	KindBadName
	KindBadFamily
	KindBadResp
	KindConnRefused
	KindTimeout
	KindInternal
	KindEmptyDomain
	KindEmptyResult
	KindDriverTimedOut
)

// ResolvedRecord is the normalised, TTL-clamped answer for one domain name
// (spec §3).
type ResolvedRecord struct {
	Domain    string
	CreatedAt time.Time
	Expiry    time.Time
	Outcome   Outcome
}

// Positive reports whether the record carries a usable address list.
func (r ResolvedRecord) Positive() bool {
	return r.Outcome.ErrorCode == KindNone && len(r.Outcome.Addresses) > 0
}

// Pick selects one address per strategy. Returns false if no address
// matches the requested family.
func (r ResolvedRecord) Pick(strategy Strategy) (net.IP, bool) {
	if !r.Positive() {
		return nil, false
	}

	v4, v6 := splitFamily(r.Outcome.Addresses)

	switch strategy {
	case StrategyIPv4Only:
		return firstOrNone(v4)
	case StrategyIPv6Only:
		return firstOrNone(v6)
	case StrategyIPv6First:
		if ip, ok := firstOrNone(v6); ok {
			return ip, true
		}
		return firstOrNone(v4)
	case StrategyRandom:
		all := r.Outcome.Addresses
		return all[pseudoRandIndex(len(all))], true
	default: // StrategyIPv4First
		if ip, ok := firstOrNone(v4); ok {
			return ip, true
		}
		return firstOrNone(v6)
	}
}

func splitFamily(addrs []net.IP) (v4, v6 []net.IP) {
	for _, a := range addrs {
		if a.To4() != nil {
			v4 = append(v4, a)
		} else {
			v6 = append(v6, a)
		}
	}

	return v4, v6
}

func firstOrNone(addrs []net.IP) (net.IP, bool) {
	if len(addrs) == 0 {
		return nil, false
	}

	return addrs[0], true
}
