/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package protocol defines the small enumeration of network transport kinds
// (TCP/UDP/IP/Unix variants) shared by listener dispatch, resolver dialing and
// the syslog forwarding hook, along with string/Viper/marshal conversions.
package protocol

// NetworkProtocol identifies a network transport understood by net.Dial and
// net.Listen. The zero value, NetworkEmpty, represents an unset/invalid protocol.
type NetworkProtocol uint8

const (
	NetworkEmpty NetworkProtocol = iota
	NetworkUnix
	NetworkTCP
	NetworkTCP4
	NetworkTCP6
	NetworkUDP
	NetworkUDP4
	NetworkUDP6
	NetworkIP
	NetworkIP4
	NetworkIP6
	NetworkUnixGram
)

var names = map[NetworkProtocol]string{
	NetworkUnix:     "unix",
	NetworkTCP:      "tcp",
	NetworkTCP4:     "tcp4",
	NetworkTCP6:     "tcp6",
	NetworkUDP:      "udp",
	NetworkUDP4:     "udp4",
	NetworkUDP6:     "udp6",
	NetworkIP:       "ip",
	NetworkIP4:      "ip4",
	NetworkIP6:      "ip6",
	NetworkUnixGram: "unixgram",
}

var values = func() map[string]NetworkProtocol {
	m := make(map[string]NetworkProtocol, len(names))
	for k, v := range names {
		m[v] = k
	}
	return m
}()

// String returns the canonical lowercase name of the protocol, or an empty
// string for NetworkEmpty and any undefined value.
func (n NetworkProtocol) String() string {
	return names[n]
}

// Code is an alias of String kept for symmetry with other enum types in this
// module family.
func (n NetworkProtocol) Code() string {
	return n.String()
}

// Int returns the numeric representation of the protocol, 0 for invalid values.
func (n NetworkProtocol) Int() int {
	if _, ok := names[n]; !ok {
		return 0
	}
	return int(n)
}

// Int64 returns the numeric representation of the protocol, 0 for invalid values.
func (n NetworkProtocol) Int64() int64 {
	return int64(n.Int())
}

// Uint returns the numeric representation of the protocol, 0 for invalid values.
func (n NetworkProtocol) Uint() uint {
	return uint(n.Int())
}

// Uint64 returns the numeric representation of the protocol, 0 for invalid values.
func (n NetworkProtocol) Uint64() uint64 {
	return uint64(n.Int())
}
