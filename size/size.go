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

// Package size provides a binary (1024-based) byte-size type with human-readable
// parsing and formatting, used across the daemons' configuration to express
// buffer, quota and bandwidth limits (e.g. "512MB", "2GB") instead of raw integers.
package size

import "sync/atomic"

// Size is a count of bytes stored as an unsigned 64 bits integer.
type Size uint64

// Binary size constants, each one 1024 times the previous.
const (
	SizeNul  Size = 0
	SizeUnit Size = 1 << (10 * iota)
	SizeKilo
	SizeMega
	SizeGiga
	SizeTera
	SizePeta
	SizeExa
)

// Format precision constants usable with Size.Format.
const (
	FormatRound0 = "%.0f"
	FormatRound1 = "%.1f"
	FormatRound2 = "%.2f"
	FormatRound3 = "%.3f"
)

var defaultUnit atomic.Int32

func init() {
	defaultUnit.Store(int32('B'))
}

// SetDefaultUnit changes the suffix rune appended by Code and Unit when no
// explicit rune is given (0). The zero value resets nothing on its own;
// callers pass an explicit rune such as 'B' or 'o'.
func SetDefaultUnit(r rune) {
	defaultUnit.Store(int32(r))
}

func getDefaultUnit() rune {
	return rune(defaultUnit.Load())
}

// bracket returns the binary prefix letter ("", "K", "M", ...) matching the
// largest unit not exceeding the receiver, along with the divisor for that unit.
func (s Size) bracket() (string, Size) {
	switch {
	case s >= SizeExa:
		return "E", SizeExa
	case s >= SizePeta:
		return "P", SizePeta
	case s >= SizeTera:
		return "T", SizeTera
	case s >= SizeGiga:
		return "G", SizeGiga
	case s >= SizeMega:
		return "M", SizeMega
	case s >= SizeKilo:
		return "K", SizeKilo
	default:
		return "", SizeUnit
	}
}

// Code returns the unit code (e.g. "KB", "MB") matching the receiver's magnitude.
// If r is 0, the suffix set through SetDefaultUnit (default 'B') is used;
// otherwise r itself is used as the suffix rune.
func (s Size) Code(r rune) string {
	prefix, _ := s.bracket()

	if r == 0 {
		r = getDefaultUnit()
	}

	return prefix + string(r)
}

// Unit returns the unit code matching the receiver's magnitude. It behaves
// like Code and is provided so format helpers can name it after what it
// decorates (a formatted value) rather than after the rune it accepts.
func (s Size) Unit(r rune) string {
	return s.Code(r)
}

// Format renders the receiver, scaled to its own magnitude bracket, using the
// given fmt verb (typically one of the FormatRoundN constants).
func (s Size) Format(format string) string {
	_, div := s.bracket()
	return formatFloat(format, s.Float64()/div.Float64())
}

// String renders the receiver scaled to its magnitude bracket with two decimal
// digits of precision, followed by its unit code (e.g. "5.50 MB").
func (s Size) String() string {
	return s.Format(FormatRound2) + " " + s.Unit(0)
}
