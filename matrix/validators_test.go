// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/matrix"
)

// zeros returns an r×c zero matrix.
func zeros(t *testing.T, r, c int) *mat.CDense {
	m, err := matrix.New(r, c)
	require.NoError(t, err)
	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	var typedNil *mat.CDense
	tests := []struct {
		name    string
		a, b    mat.CMatrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(t, 2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
		{"hidden dense", hide{zeros(t, 4, 4)}, zeros(t, 4, 4), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    mat.CMatrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", zeros(t, 1, 1), nil},
		{"4x4", zeros(t, 4, 4), nil},
		{"2x3", zeros(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateShapeAndMul checks the fixed-shape guard and the product guard.
func TestValidateShapeAndMul(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateShape(zeros(t, 4, 4), 4, 4))
	err := matrix.ValidateShape(zeros(t, 2, 2), 4, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "got 2x2")
	require.ErrorIs(t, matrix.ValidateShape(nil, 4, 4), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestValidateFinite rejects NaN and infinities in either component.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []complex128{
		cmplx.NaN(),
		complex(math.Inf(1), 0),
		complex(0, math.Inf(-1)),
	} {
		m := zeros(t, 2, 2)
		m.Set(1, 0, v)
		err := matrix.ValidateFinite(m)
		require.ErrorIs(t, err, matrix.ErrNaNInf, "value %v", v)
		require.Contains(t, err.Error(), "(1,0)")
	}
	require.NoError(t, matrix.ValidateFinite(zeros(t, 3, 3)))
}
