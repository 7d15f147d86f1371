// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Constructors and element-wise helpers over gonum's *mat.CDense.
//   - Every helper allocates a fresh result; inputs are never mutated.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// New allocates a zero r×c complex matrix.
//
// Errors: ErrBadShape if r<=0 or c<=0.
func New(r, c int) (*mat.CDense, error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}

	return mat.NewCDense(r, c, nil), nil
}

// FromRows builds a matrix from row slices. All rows must share one length.
//
// Errors: ErrBadShape for empty input, ErrDimensionMismatch for ragged rows.
func FromRows(rows [][]complex128) (*mat.CDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	var (
		r, c = len(rows), len(rows[0])
		data = make([]complex128, 0, r*c)
	)
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return mat.NewCDense(r, c, data), nil
}

// MustFromRows is FromRows for package-level literals; it panics on error.
func MustFromRows(rows [][]complex128) *mat.CDense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns the n×n identity. n must be positive.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Diag returns the square diagonal matrix with the given entries.
func Diag(d []complex128) *mat.CDense {
	m := mat.NewCDense(len(d), len(d), nil)
	for i, v := range d {
		m.Set(i, i, v)
	}

	return m
}

// Clone returns a deep copy of a as *mat.CDense.
func Clone(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}

	return out
}

// asDense returns a itself when it already is a *mat.CDense, a copy otherwise.
func asDense(a mat.CMatrix) *mat.CDense {
	if d, ok := a.(*mat.CDense); ok {
		return d
	}

	return Clone(a)
}

// Rows returns the rows of a as fresh slices.
func Rows(a mat.CMatrix) [][]complex128 {
	r, c := a.Dims()
	out := make([][]complex128, r)
	for i := range out {
		out[i] = make([]complex128, c)
		for j := 0; j < c; j++ {
			out[i][j] = a.At(i, j)
		}
	}

	return out
}

// apply maps f over the entries of a, optionally reading a transposed.
func apply(a mat.CMatrix, transpose bool, f func(complex128) complex128) *mat.CDense {
	r, c := a.Dims()
	if transpose {
		r, c = c, r
	}
	out := mat.NewCDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if transpose {
				out.Set(i, j, f(a.At(j, i)))
			} else {
				out.Set(i, j, f(a.At(i, j)))
			}
		}
	}

	return out
}

func identity(v complex128) complex128 { return v }

// Transpose returns aᵀ (no conjugation).
func Transpose(a mat.CMatrix) *mat.CDense { return apply(a, true, identity) }

// ConjTranspose returns the Hermitian adjoint a†.
func ConjTranspose(a mat.CMatrix) *mat.CDense { return apply(a, true, cmplx.Conj) }

// Conj returns the element-wise conjugate of a.
func Conj(a mat.CMatrix) *mat.CDense { return apply(a, false, cmplx.Conj) }

// Scale returns alpha·a.
func Scale(alpha complex128, a mat.CMatrix) *mat.CDense {
	return apply(a, false, func(v complex128) complex128 { return alpha * v })
}

// addSub computes a + sign·b for sign ∈ {+1, -1}.
func addSub(a, b mat.CMatrix, sign complex128, tag string) (*mat.CDense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, a.At(i, j)+sign*b.At(i, j))
		}
	}

	return out, nil
}

// Add returns a + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b mat.CMatrix) (*mat.CDense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b mat.CMatrix) (*mat.CDense, error) { return addSub(a, b, -1, opSub) }

// FrobeniusNorm returns sqrt(Σ|a_ij|²), the 2-norm of the column-stacked
// vectorisation of a.
func FrobeniusNorm(a mat.CMatrix) float64 {
	r, c := a.Dims()
	var (
		i, j   int
		v      complex128
		scale  float64
		sumSq  = 1.0
		absVal float64
	)
	// scaled sum of squares, as in LAPACK's zlassq
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			v = a.At(i, j)
			for _, x := range [2]float64{real(v), imag(v)} {
				if x == 0 {
					continue
				}
				absVal = math.Abs(x)
				if scale < absVal {
					sumSq = 1 + sumSq*(scale/absVal)*(scale/absVal)
					scale = absVal
				} else {
					sumSq += (absVal / scale) * (absVal / scale)
				}
			}
		}
	}

	return scale * math.Sqrt(sumSq)
}

// Distance returns FrobeniusNorm(a − b).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Distance(a, b mat.CMatrix) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, err
	}

	return FrobeniusNorm(d), nil
}

// MaxAbsDiff returns max |a_ij − b_ij|. Shapes must match.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b mat.CMatrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opSub, err)
	}
	r, c := a.Dims()
	var (
		i, j int
		best float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			best = math.Max(best, cmplx.Abs(a.At(i, j)-b.At(i, j)))
		}
	}

	return best, nil
}

// embed returns the real 2n×2m embedding [[Re a, −Im a], [Im a, Re a]].
// The map is an algebra homomorphism: embed(ab) = embed(a)·embed(b).
func embed(a mat.CMatrix) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(2*r, 2*c, nil)
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			out.Set(i, j, real(v))
			out.Set(i, j+c, -imag(v))
			out.Set(i+r, j, imag(v))
			out.Set(i+r, j+c, real(v))
		}
	}

	return out
}

// unembed reads the complex matrix back from the left block column of an
// embedding: Re from the top-left block, Im from the bottom-left block.
func unembed(e mat.Matrix) *mat.CDense {
	r2, c2 := e.Dims()
	r, c := r2/2, c2/2
	out := mat.NewCDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, complex(e.At(i, j), e.At(i+r, j)))
		}
	}

	return out
}
