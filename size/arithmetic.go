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

// Mul multiplies the receiver in place by f, rounding the result up to the
// nearest byte and capping at math.MaxUint64 on overflow. Errors are discarded;
// use MulErr to observe them.
func (s *Size) Mul(f float64) {
	_ = s.MulErr(f)
}

// MulErr multiplies the receiver in place by f, rounding the result up to the
// nearest byte. It returns an error, without discarding the capped result,
// when f is negative or the product overflows math.MaxUint64.
func (s *Size) MulErr(f float64) error {
	if f < 0 {
		*s = SizeNul
		return fmt.Errorf("invalid multiplier: %v", f)
	}

	r := math.Ceil(s.Float64() * f)

	if r > math.MaxUint64 {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("overflow: result exceeds maximum size")
	}

	*s = Size(r)
	return nil
}

// Div divides the receiver in place by f, rounding the result up to the
// nearest byte. Errors are discarded; use DivErr to observe them.
func (s *Size) Div(f float64) {
	_ = s.DivErr(f)
}

// DivErr divides the receiver in place by f, rounding the result up to the
// nearest byte. It returns an error, leaving the receiver unchanged, when f
// is zero or negative.
func (s *Size) DivErr(f float64) error {
	if f <= 0 {
		return fmt.Errorf("invalid diviser: %v", f)
	}

	*s = Size(math.Ceil(s.Float64() / f))
	return nil
}

// Add adds n to the receiver in place, capping at math.MaxUint64 on overflow.
// Errors are discarded; use AddErr to observe them.
func (s *Size) Add(n uint64) {
	_ = s.AddErr(n)
}

// AddErr adds n to the receiver in place. It returns an error, capping the
// result at math.MaxUint64, when the addition overflows.
func (s *Size) AddErr(n uint64) error {
	if n > math.MaxUint64-s.Uint64() {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("overflow: addition exceeds maximum size")
	}

	*s += Size(n)
	return nil
}

// Sub subtracts n from the receiver in place, capping at zero on underflow.
// Errors are discarded; use SubErr to observe them.
func (s *Size) Sub(n uint64) {
	_ = s.SubErr(n)
}

// SubErr subtracts n from the receiver in place. It returns an error, capping
// the result at zero, when n is greater than the receiver.
func (s *Size) SubErr(n uint64) error {
	if n > s.Uint64() {
		*s = SizeNul
		return fmt.Errorf("invalid substractor: %d is greater than %d", n, s.Uint64())
	}

	*s -= Size(n)
	return nil
}
