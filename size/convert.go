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
)

func formatFloat(format string, v float64) string {
	return fmt.Sprintf(format, v)
}

// ParseInt64 returns the Size matching the absolute value of i.
func ParseInt64(i int64) Size {
	if i < 0 {
		u := uint64(i)
		return Size(-u)
	}
	return Size(i)
}

// SizeFromInt64 is an alias of ParseInt64.
func SizeFromInt64(i int64) Size {
	return ParseInt64(i)
}

// ParseUint64 returns the Size matching u.
func ParseUint64(u uint64) Size {
	return Size(u)
}

// ParseFloat64 returns the Size matching the absolute, floored value of f,
// capping at math.MaxUint64 on overflow.
func ParseFloat64(f float64) Size {
	f = math.Floor(f)

	if f < 0 {
		f = -f
	}

	if f >= math.MaxUint64 {
		return Size(math.MaxUint64)
	}

	return Size(f)
}

// SizeFromFloat64 is an alias of ParseFloat64.
func SizeFromFloat64(f float64) Size {
	return ParseFloat64(f)
}

// Uint64 returns the receiver as a uint64.
func (s Size) Uint64() uint64 {
	return uint64(s)
}

// Uint32 returns the receiver as a uint32, capping at math.MaxUint32 on overflow.
func (s Size) Uint32() uint32 {
	if s > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}

// Uint returns the receiver as a uint, capping at math.MaxUint on overflow.
func (s Size) Uint() uint {
	if uint64(s) > math.MaxUint {
		return math.MaxUint
	}
	return uint(s)
}

// Int64 returns the receiver as an int64, capping at math.MaxInt64 on overflow.
func (s Size) Int64() int64 {
	if s > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(s)
}

// Int32 returns the receiver as an int32, capping at math.MaxInt32 on overflow.
func (s Size) Int32() int32 {
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(s)
}

// Int returns the receiver as an int, capping at math.MaxInt on overflow.
func (s Size) Int() int {
	if uint64(s) > math.MaxInt {
		return math.MaxInt
	}
	return int(s)
}

// Float64 returns the receiver as a float64, capping at math.MaxFloat64 on overflow.
func (s Size) Float64() float64 {
	f := float64(s)
	if f > math.MaxFloat64 {
		return math.MaxFloat64
	}
	return f
}

// Float32 returns the receiver as a float32, capping at math.MaxFloat32 on overflow.
func (s Size) Float32() float32 {
	f := s.Float64()
	if f > math.MaxFloat32 {
		return math.MaxFloat32
	}
	return float32(f)
}

// KiloBytes returns the number of whole kilobytes in the receiver.
func (s Size) KiloBytes() uint64 {
	return s.Uint64() / SizeKilo.Uint64()
}

// MegaBytes returns the number of whole megabytes in the receiver.
func (s Size) MegaBytes() uint64 {
	return s.Uint64() / SizeMega.Uint64()
}

// GigaBytes returns the number of whole gigabytes in the receiver.
func (s Size) GigaBytes() uint64 {
	return s.Uint64() / SizeGiga.Uint64()
}

// TeraBytes returns the number of whole terabytes in the receiver.
func (s Size) TeraBytes() uint64 {
	return s.Uint64() / SizeTera.Uint64()
}

// PetaBytes returns the number of whole petabytes in the receiver.
func (s Size) PetaBytes() uint64 {
	return s.Uint64() / SizePeta.Uint64()
}

// ExaBytes returns the number of whole exabytes in the receiver.
func (s Size) ExaBytes() uint64 {
	return s.Uint64() / SizeExa.Uint64()
}
