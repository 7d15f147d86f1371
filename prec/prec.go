// SPDX-License-Identifier: MIT

package prec

import (
	"math"
	"strconv"
)

// DefaultWeylPrecision is the number of decimal digits kept for Weyl
// coordinates and local invariants unless an Option overrides it.
const DefaultWeylPrecision = 8

// panicDigitsInvalid is the stable panic message for WithDigits(n < 0).
const panicDigitsInvalid = "prec: WithDigits requires n >= 0"

// Options is the resolved rounding policy.
type Options struct {
	digits int
	exact  bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions rounds to DefaultWeylPrecision digits.
func DefaultOptions() Options {
	return Options{digits: DefaultWeylPrecision}
}

// WithDigits rounds to n decimal digits. Panics if n < 0.
func WithDigits(n int) Option {
	if n < 0 {
		panic(panicDigitsInvalid)
	}

	return func(o *Options) {
		o.digits = n
		o.exact = false
	}
}

// Exact disables rounding; only -0 is normalised.
func Exact() Option {
	return func(o *Options) { o.exact = true }
}

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	var o Options
	o = DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Digits reports the configured number of digits, or -1 when exact.
func (o Options) Digits() int {
	if o.exact {
		return -1
	}

	return o.digits
}

// Apply rounds x according to the policy.
func (o Options) Apply(x float64) float64 {
	if o.exact {
		if x == 0 {
			return 0
		}
		return x
	}

	return Round(x, o.digits)
}

// Round returns x rounded to n decimal digits, with ties resolved on the
// exact binary value (the same result as a correctly rounded decimal
// conversion). NaN and ±Inf are returned unchanged; -0 becomes +0.
func Round(x float64, n int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	var (
		s   string
		r   float64
		err error
	)
	s = strconv.FormatFloat(x, 'f', n, 64)
	r, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}

	return r
}
