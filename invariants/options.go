// SPDX-License-Identifier: MIT

package invariants

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// Method names a local minimiser used by ClosestLI.
type Method string

const (
	// MethodLeastSq minimises the stacked real/imaginary residual with
	// Levenberg-Marquardt.
	MethodLeastSq Method = "leastsq"
	// MethodNelderMead is gonum's optimize.NelderMead (derivative-free).
	MethodNelderMead Method = "nelder-mead"
	// MethodBFGS is gonum's optimize.BFGS with finite-difference gradients.
	MethodBFGS Method = "bfgs"
	// MethodLBFGS is gonum's optimize.LBFGS with finite-difference gradients.
	MethodLBFGS Method = "lbfgs"
	// MethodCG is gonum's optimize.CG with finite-difference gradients.
	MethodCG Method = "cg"
	// MethodGradientDescent is gonum's optimize.GradientDescent.
	MethodGradientDescent Method = "gradient-descent"
)

var methods = map[Method]struct{}{
	MethodLeastSq:         {},
	MethodNelderMead:      {},
	MethodBFGS:            {},
	MethodLBFGS:           {},
	MethodCG:              {},
	MethodGradientDescent: {},
}

// Methods lists the registered method names in sorted order.
func Methods() []Method {
	out := make([]Method, 0, len(methods))
	for m := range methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	if _, ok := methods[Method(s)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return Method(s), nil
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod is the local minimiser.
	DefaultMethod = MethodLeastSq

	// DefaultLimit is the initial agreement tolerance between two
	// successive successful distances.
	DefaultLimit = 1e-6

	// DefaultMaxRestarts of 0 means no cap.
	DefaultMaxRestarts = 0

	// RelaxEvery is the number of restarts after which the limit grows
	// tenfold.
	RelaxEvery = 100

	// paramCount is the number of real parameters of k1 and k2.
	paramCount = 16
)

const (
	panicMethodInvalid      = "invariants: WithMethod: unknown method"
	panicLimitInvalid       = "invariants: WithLimit: limit must be finite and > 0"
	panicMaxRestartsInvalid = "invariants: WithMaxRestarts: n must be >= 0"
)

// Option configures ClosestLI.
type Option func(*Options)

// Options is the resolved ClosestLI configuration.
type Options struct {
	method      Method
	limit       float64
	maxRestarts int
	rng         *rand.Rand
	log         logrus.FieldLogger
}

// WithMethod selects the local minimiser.
//
// Panics on an unregistered method; use ParseMethod for untrusted input.
func WithMethod(m Method) Option {
	if _, ok := methods[m]; !ok {
		panic(panicMethodInvalid)
	}
	return func(o *Options) { o.method = m }
}

// WithLimit sets the initial distance agreement tolerance.
//
// Panics unless limit is finite and positive.
func WithLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		panic(panicLimitInvalid)
	}
	return func(o *Options) { o.limit = limit }
}

// WithMaxRestarts caps the number of restarts; 0 removes the cap. When the
// cap is hit, ClosestLI returns the best gate with ErrNotConverged.
//
// Panics if n < 0.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic(panicMaxRestartsInvalid)
	}
	return func(o *Options) { o.maxRestarts = n }
}

// WithRand sets the source of starting points. A nil rng (the default)
// uses the goroutine-safe top-level math/rand functions.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithLogger receives debug traces of the restart loop. A nil logger
// restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.log = l }
}

func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		method:      DefaultMethod,
		limit:       DefaultLimit,
		maxRestarts: DefaultMaxRestarts,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.log == nil {
		o.log = silentLogger()
	}
	return o
}

func (o Options) uniform() float64 {
	if o.rng == nil {
		return rand.Float64()
	}
	return o.rng.Float64()
}
