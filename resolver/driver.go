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
	"context"
	"net"
	"time"

	"github.com/miekg/dns"
)

// driver is one concrete lookup implementation: system resolver or a
// github.com/miekg/dns client pointed at explicit nameservers.
type driver interface {
	lookup(ctx context.Context, name string) ([]net.IP, time.Duration, error)
	close()
}

// systemDriver defers to the platform resolver (cgo/getaddrinfo where
// available), matching net.DefaultResolver's behavior. It reports no TTL of
// its own; the pool falls back to PositiveMin.
type systemDriver struct {
	res *net.Resolver
}

func newSystemDriver() *systemDriver {
	return &systemDriver{res: net.DefaultResolver}
}

func (d *systemDriver) lookup(ctx context.Context, name string) ([]net.IP, time.Duration, error) {
	addrs, err := d.res.LookupIP(ctx, "ip", name)
	if err != nil {
		return nil, 0, err
	}

	return addrs, 0, nil
}

func (d *systemDriver) close() {}

// dnsDriver issues A and AAAA queries directly against a configured
// nameserver set via github.com/miekg/dns, which is the only way to recover
// a record's own TTL rather than the platform stub resolver's synthetic one.
type dnsDriver struct {
	client      *dns.Client
	nameservers []string
}

func newDNSDriver(nameservers []string, timeout time.Duration) *dnsDriver {
	return &dnsDriver{
		client:      &dns.Client{Timeout: timeout},
		nameservers: nameservers,
	}
}

func (d *dnsDriver) lookup(ctx context.Context, name string) ([]net.IP, time.Duration, error) {
	fqdn := dns.Fqdn(name)

	var (
		addrs  []net.IP
		minTTL uint32 = 0
		seen   bool
	)

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(fqdn, qtype)
		msg.RecursionDesired = true

		for _, ns := range d.nameservers {
			resp, _, err := d.client.ExchangeContext(ctx, msg, ns)
			if err != nil || resp == nil {
				continue
			}

			if resp.Rcode != dns.RcodeSuccess {
				continue
			}

			for _, rr := range resp.Answer {
				var (
					ip  net.IP
					ttl uint32
				)

				switch rec := rr.(type) {
				case *dns.A:
					ip, ttl = rec.A, rec.Hdr.Ttl
				case *dns.AAAA:
					ip, ttl = rec.AAAA, rec.Hdr.Ttl
				default:
					continue
				}

				addrs = append(addrs, ip)
				if !seen || ttl < minTTL {
					minTTL = ttl
					seen = true
				}
			}

			break
		}
	}

	if len(addrs) == 0 {
		return nil, 0, errEmptyResult
	}

	return addrs, time.Duration(minTTL) * time.Second, nil
}

func (d *dnsDriver) close() {}

var errEmptyResult = &driverError{kind: KindEmptyResult}

type driverError struct {
	kind CodeErrorKind
}

func (e *driverError) Error() string {
	return "resolver: empty result"
}
