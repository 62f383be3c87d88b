// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"fmt"
	"math"

	"cogentcore.org/numarray/base/errors"
	"cogentcore.org/numarray/math32/minmax"
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned (wrapped) by operations that are not defined
// on an empty sequence, such as [Max] and [Min].
var ErrEmpty = errors.New("empty sequence")

// Sum returns the sum of the values in s, which is 0 for an empty sequence.
func Sum[F constraints.Float](s []F) F {
	var sum F
	for _, v := range s {
		sum += v
	}
	return sum
}

// Mean returns the mean of the values in s: [Sum] / len(s).
// It returns NaN for an empty sequence.
func Mean[F constraints.Float](s []F) F {
	if len(s) == 0 {
		return nan[F]()
	}
	return Sum(s) / F(len(s))
}

// StdDevPop returns the population standard deviation of the values in s,
// which is the square root of the sum of squared deviations from the
// mean divided by n. It returns NaN for an empty sequence and 0 for a
// sequence of length 1.
func StdDevPop[F constraints.Float](s []F) F {
	switch len(s) {
	case 0:
		return nan[F]()
	case 1:
		return 0
	}
	return sqrt(sumSqDev(s) / F(len(s)))
}

// StdDev returns the sample standard deviation of the values in s,
// which is the square root of the sum of squared deviations from the
// mean divided by n-1. It returns NaN for an empty sequence and 0
// for a sequence of length 1.
func StdDev[F constraints.Float](s []F) F {
	switch len(s) {
	case 0:
		return nan[F]()
	case 1:
		return 0
	}
	return sqrt(sumSqDev(s) / F(len(s)-1))
}

// sumSqDev returns the sum of squared deviations from the mean of s,
// which must not be empty.
func sumSqDev[F constraints.Float](s []F) F {
	mu := Mean(s)
	var ss F
	for _, v := range s {
		dv := v - mu
		ss += dv * dv
	}
	return ss
}

// MinMax returns the minimum and maximum of the values in s.
// If any value is NaN, both Min and Max are NaN.
// It returns an error wrapping [ErrEmpty] for an empty sequence.
func MinMax[F constraints.Float](s []F) (minmax.Range[F], error) {
	var mr minmax.Range[F]
	if len(s) == 0 {
		n := nan[F]()
		mr.Set(n, n)
		return mr, fmt.Errorf("numarray.MinMax: %w", ErrEmpty)
	}
	mr.SetInfinity()
	for _, v := range s {
		if isNaN(v) {
			mr.Set(v, v)
			return mr, nil
		}
		mr.FitValueInRange(v)
	}
	return mr, nil
}

// Max returns the largest value in s, or NaN if any value is NaN.
// It returns NaN and an error wrapping [ErrEmpty] for an empty sequence.
func Max[F constraints.Float](s []F) (F, error) {
	mr, err := MinMax(s)
	if err != nil {
		return mr.Max, fmt.Errorf("numarray.Max: %w", ErrEmpty)
	}
	return mr.Max, nil
}

// Min returns the smallest value in s, or NaN if any value is NaN.
// It returns NaN and an error wrapping [ErrEmpty] for an empty sequence.
func Min[F constraints.Float](s []F) (F, error) {
	mr, err := MinMax(s)
	if err != nil {
		return mr.Min, fmt.Errorf("numarray.Min: %w", ErrEmpty)
	}
	return mr.Min, nil
}

// sqrt uses float32 math for float32 values.
func sqrt[F constraints.Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sqrt(v))
	}
	return F(math.Sqrt(float64(x)))
}

func nan[F constraints.Float]() F {
	var x F
	if _, ok := any(x).(float32); ok {
		return F(math32.NaN())
	}
	return F(math.NaN())
}

func isNaN[F constraints.Float](x F) bool {
	if v, ok := any(x).(float32); ok {
		return math32.IsNaN(v)
	}
	return math.IsNaN(float64(x))
}
