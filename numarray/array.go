// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"slices"

	"cogentcore.org/numarray/math32/minmax"
	"golang.org/x/exp/constraints"
)

// Array is a sequence of floating point values with all of the
// numarray operations available as methods. The mutating methods
// update Values in place and return the Array, so that calls
// can be chained.
type Array[F constraints.Float] struct {

	// Values are the values in the sequence.
	Values []F
}

// Wrap returns a new Array using the given slice directly, without copying.
// Operations that pad the Array may reallocate Values, after which it
// no longer shares memory with the given slice.
func Wrap[F constraints.Float](values []F) *Array[F] {
	return &Array[F]{Values: values}
}

// NewFromValues returns a new Array holding a copy of the given values.
func NewFromValues[F constraints.Float](values ...F) *Array[F] {
	return &Array[F]{Values: slices.Clone(values)}
}

// Len returns the number of values.
func (a *Array[F]) Len() int {
	return len(a.Values)
}

// Strip returns a copy of the values as a plain slice.
func (a *Array[F]) Strip() []F {
	return slices.Clone(a.Values)
}

// Clone returns a new Array with a copy of the values.
func (a *Array[F]) Clone() *Array[F] {
	return &Array[F]{Values: a.Strip()}
}

// Sum returns the [Sum] of the values.
func (a *Array[F]) Sum() F { return Sum(a.Values) }

// Mean returns the [Mean] of the values.
func (a *Array[F]) Mean() F { return Mean(a.Values) }

// StdDevPop returns the population standard deviation ([StdDevPop]).
func (a *Array[F]) StdDevPop() F { return StdDevPop(a.Values) }

// StdDev returns the sample standard deviation ([StdDev]).
func (a *Array[F]) StdDev() F { return StdDev(a.Values) }

// Max returns the [Max] of the values.
func (a *Array[F]) Max() (F, error) { return Max(a.Values) }

// Min returns the [Min] of the values.
func (a *Array[F]) Min() (F, error) { return Min(a.Values) }

// MinMax returns the [MinMax] range of the values.
func (a *Array[F]) MinMax() (minmax.Range[F], error) { return MinMax(a.Values) }

// Describe returns the [Describe] statistics of the values.
func (a *Array[F]) Describe() (Description[F], error) { return Describe(a.Values) }

// Pad appends val until there are at least n values. See [Pad].
func (a *Array[F]) Pad(n int, val F) *Array[F] {
	a.Values = Pad(a.Values, n, val)
	return a
}

// Add adds b elementwise. See [Add].
func (a *Array[F]) Add(b []F) *Array[F] {
	a.Values = Add(a.Values, b)
	return a
}

// Subtract subtracts b elementwise. See [Subtract].
func (a *Array[F]) Subtract(b []F) *Array[F] {
	a.Values = Subtract(a.Values, b)
	return a
}

// Multiply multiplies by b elementwise. See [Multiply].
func (a *Array[F]) Multiply(b []F) *Array[F] {
	a.Values = Multiply(a.Values, b)
	return a
}

// Scale multiplies every value by k. See [Scale].
func (a *Array[F]) Scale(k F) *Array[F] {
	a.Values = Scale(a.Values, k)
	return a
}

// Dot returns the dot product with b, without modifying either. See [Dot].
func (a *Array[F]) Dot(b []F) F {
	return Dot(a.Values, b)
}

// AddArray adds the values of b elementwise.
func (a *Array[F]) AddArray(b *Array[F]) *Array[F] {
	return a.Add(b.Values)
}

// SubtractArray subtracts the values of b elementwise.
func (a *Array[F]) SubtractArray(b *Array[F]) *Array[F] {
	return a.Subtract(b.Values)
}

// MultiplyArray multiplies by the values of b elementwise.
func (a *Array[F]) MultiplyArray(b *Array[F]) *Array[F] {
	return a.Multiply(b.Values)
}

// DotArray returns the dot product with the values of b.
func (a *Array[F]) DotArray(b *Array[F]) F {
	return a.Dot(b.Values)
}

// Normalize rescales the values to the 0-1 range in place, returning
// the original range. See [Normalize].
func (a *Array[F]) Normalize() (minmax.Range[F], error) {
	_, mr, err := Normalize(a.Values)
	return mr, err
}

// Project maps normalized values into the given range. See [Project].
func (a *Array[F]) Project(mr minmax.Range[F]) *Array[F] {
	a.Values = Project(a.Values, mr)
	return a
}

// Clip limits the values to [lo, hi]. See [Clip].
func (a *Array[F]) Clip(lo, hi F) (*Array[F], error) {
	_, err := Clip(a.Values, lo, hi)
	return a, err
}
