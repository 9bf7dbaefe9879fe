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

package certagent

import (
	"crypto/tls"
	"time"

	libcrt "github.com/nabbar/netcore/certificates"
)

// Request is the wire shape sent to the cert-minting backend (spec §4.6):
// host/service identify the leaf to mint or fetch; Mimic optionally carries
// an existing certificate's DER bytes so the backend can copy its subject/SAN
// shape ("mimicry").
type Request struct {
	Host    string `msgpack:"host"`
	Service string `msgpack:"service"`
	Mimic   []byte `msgpack:"cert,omitempty"`
}

// Response carries a PEM certificate, its DER/PKCS8 private key and a
// server-reported TTL in seconds.
type Response struct {
	Cert       string `msgpack:"cert"`
	Key        []byte `msgpack:"key"`
	TTLSeconds int64  `msgpack:"ttl"`
}

// TTL implements ecache.TTLer so Response values drive the cache's positive
// expiry directly from the backend's answer instead of the generic default.
func (r Response) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// TLSConfig assembles a *tls.Config serving this bundle, reusing the
// certificates package's PEM/key loader and cipher/curve defaults rather than
// re-implementing x509 parsing.
func (r Response) TLSConfig(serverName string) (*tls.Config, error) {
	cfg := libcrt.New()

	if err := cfg.AddCertificatePairString(string(r.Key), r.Cert); err != nil {
		return nil, err
	}

	return cfg.TlsConfig(serverName), nil
}
