// SPDX-License-Identifier: MIT
// Random sampling of Weyl points and gates.
//
// Goals:
//   - Determinism when asked: the same seed gives the same points and gates.
//   - No time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRand for per-worker streams. A nil source uses the
//     locked top-level math/rand functions and is safe everywhere.

package coordinates

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic source. seed==0 selects a fixed default.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once, so reusing a stream id still
// yields a fresh child. A nil base uses the default seed as parent.
// Call it during setup, not from concurrent goroutines sharing base.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// float64From draws from [0,1) on rng, or on the shared source when nil.
func float64From(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// RandomWeylPoint draws a uniform point of the Weyl chamber, restricted to
// region unless it is RegionAny.
//
// Implementation: rejection sampling of c1 ∈ [0,1), c2, c3 ∈ [0,½) until the
// point is in the chamber (and in region). There is no iteration cap; every
// region covers a sizable share of the sampling box.
//
// Errors: ErrUnknownRegion (RegionSQ is not a chamber region).
func RandomWeylPoint(rng *rand.Rand, region Region) (c1, c2, c3 float64, err error) {
	switch region {
	case RegionAny, RegionW0, RegionW0Star, RegionW1, RegionPE:
	default:
		return 0, 0, 0, coordinatesErrorf(opRandomPoint,
			fmt.Errorf("%w: %q is not in %v", ErrUnknownRegion, string(region), Regions()))
	}
	var in bool
	for {
		c1 = float64From(rng)
		c2 = 0.5 * float64From(rng)
		c3 = 0.5 * float64From(rng)
		if !PointInWeylChamber(c1, c2, c3) {
			continue
		}
		if region == RegionAny {
			return c1, c2, c3, nil
		}
		if in, err = PointInRegion(region, c1, c2, c3, false); err != nil {
			return 0, 0, 0, err
		}
		if in {
			return c1, c2, c3, nil
		}
	}
}

// randomAngles returns n values uniform in [0, 2π).
func randomAngles(rng *rand.Rand, n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 2 * math.Pi * float64From(rng)
	}
	return p
}

// RandomGate returns a random two-qubit gate.
//
// For RegionSQ the gate is local: SQUnitary of 8 random angles. Otherwise a
// random Weyl point in region is turned into its canonical gate A and dressed
// as SQ(p[0:8])·A·SQ(p[8:16]); the dressing leaves the coordinates and the
// region unchanged.
//
// Errors: ErrUnknownRegion.
func RandomGate(rng *rand.Rand, region Region) (*mat.CDense, error) {
	if region == RegionSQ {
		g, err := gates.SQUnitary(randomAngles(rng, 8))
		if err != nil {
			return nil, coordinatesErrorf(opRandomGate, err)
		}
		return g, nil
	}
	c1, c2, c3, err := RandomWeylPoint(rng, region)
	if err != nil {
		return nil, coordinatesErrorf(opRandomGate, err)
	}
	a, err := gates.CanonicalGate(c1, c2, c3)
	if err != nil {
		return nil, coordinatesErrorf(opRandomGate, err)
	}
	p := randomAngles(rng, 16)
	left, err := gates.SQUnitary(p[:8])
	if err != nil {
		return nil, coordinatesErrorf(opRandomGate, err)
	}
	right, err := gates.SQUnitary(p[8:])
	if err != nil {
		return nil, coordinatesErrorf(opRandomGate, err)
	}

	return matrix.MulAll(left, a, right)
}
