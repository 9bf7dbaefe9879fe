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

package size

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reSize = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([A-Za-z]*)$`)

var unitMultiplier = map[string]Size{
	"":   SizeUnit,
	"B":  SizeUnit,
	"K":  SizeKilo,
	"KB": SizeKilo,
	"M":  SizeMega,
	"MB": SizeMega,
	"G":  SizeGiga,
	"GB": SizeGiga,
	"T":  SizeTera,
	"TB": SizeTera,
	"P":  SizePeta,
	"PB": SizePeta,
	"E":  SizeExa,
	"EB": SizeExa,
}

// Parse reads a human-readable byte size such as "512MB" or "1.5GB", in
// binary (1024-based) units ("B", "KB", "MB", "GB", "TB", "PB", "EB",
// case-insensitive, the "B" suffix of a prefixed unit being optional) and
// returns the corresponding Size. A unit is required, "KiB"-style units are
// rejected, and no space is allowed between the number and the unit.
//
// Surrounding whitespace and a single matching pair of quotes are stripped
// before parsing; a leading '+' is accepted but a leading '-' is rejected.
func Parse(s string) (Size, error) {
	s = strings.TrimSpace(s)
	s = unquote(s)
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, fmt.Errorf("invalid size: empty string")
	}

	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("invalid size: negative value %q", s)
	}

	s = strings.TrimPrefix(s, "+")

	m := reSize.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid size: %q", s)
	}

	numStr, unitStr := m[1], strings.ToUpper(m[2])

	if unitStr == "" {
		return 0, fmt.Errorf("invalid size: missing unit in %q", s)
	}

	mul, ok := unitMultiplier[unitStr]
	if !ok {
		return 0, fmt.Errorf("invalid size: unknown unit %q in %q", m[2], s)
	}

	val, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %q: %w", s, err)
	}

	res := val * mul.Float64()

	if res > math.MaxUint64 {
		return Size(math.MaxUint64), fmt.Errorf("invalid size: %q overflows maximum size", s)
	}

	return Size(math.Round(res)), nil
}

// ParseByte behaves like Parse, reading the size from a byte slice.
func ParseByte(b []byte) (Size, error) {
	return Parse(string(b))
}

// ParseSize is a deprecated alias of Parse.
//
// Deprecated: use Parse instead.
func ParseSize(s string) (Size, error) {
	return Parse(s)
}

// ParseByteAsSize is a deprecated alias of ParseByte.
//
// Deprecated: use ParseByte instead.
func ParseByteAsSize(b []byte) (Size, error) {
	return ParseByte(b)
}

// GetSize is a deprecated alias of Parse.
//
// Deprecated: use Parse instead.
func GetSize(s string) (Size, error) {
	return Parse(s)
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}

	return s
}
