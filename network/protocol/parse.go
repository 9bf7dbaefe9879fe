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

package protocol

import (
	"math"
	"strings"
)

func unquote(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			s = s[1 : len(s)-1]
			continue
		}
		break
	}
	return s
}

// Parse converts a protocol name to its NetworkProtocol value. It trims
// surrounding whitespace and every layer of matching quotes (double, single
// or backtick), and compares
// case-insensitively. Unknown or empty input returns NetworkEmpty.
func Parse(s string) NetworkProtocol {
	s = unquote(strings.TrimSpace(s))
	return values[strings.ToLower(s)]
}

// ParseBytes is the []byte variant of Parse.
func ParseBytes(p []byte) NetworkProtocol {
	return Parse(string(p))
}

// ParseInt64 converts a numeric protocol code (as produced by Int64) back
// into a NetworkProtocol. Values outside the valid uint8 range, negative
// values and unknown codes all return NetworkEmpty.
func ParseInt64(i int64) NetworkProtocol {
	if i <= 0 || i > math.MaxUint8 {
		return NetworkEmpty
	}

	n := NetworkProtocol(i)
	if _, ok := names[n]; !ok {
		return NetworkEmpty
	}

	return n
}
