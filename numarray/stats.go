// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"fmt"

	"cogentcore.org/numarray/base/errors"
	"golang.org/x/exp/constraints"
)

// Stats is a list of the standard reductions, which can be used
// to choose a reduction by value or by name.
// Its String, SetString, Desc and text marshaling methods are in
// enumgen.go, which has the shape of enumgen output and is kept
// in sync with this list by hand.
type Stats int32 //enums:enum -trim-prefix Stat

const (
	// sum of elements.
	StatSum Stats = iota

	// mean value = sum / count.
	StatMean

	// population standard deviation (squared deviations from mean, divided by n, square root).
	StatStdDevPop

	// sample standard deviation (squared deviations from mean, divided by n-1, square root).
	StatStdDev

	// minimum value.
	StatMin

	// maximum value.
	StatMax
)

// Reduce computes the given standard reduction of s.
// Errors are those of the underlying function (e.g., [Max]),
// or an invalid stat value.
func Reduce[F constraints.Float](stat Stats, s []F) (F, error) {
	switch stat {
	case StatSum:
		return Sum(s), nil
	case StatMean:
		return Mean(s), nil
	case StatStdDevPop:
		return StdDevPop(s), nil
	case StatStdDev:
		return StdDev(s), nil
	case StatMin:
		return Min(s)
	case StatMax:
		return Max(s)
	}
	return nan[F](), fmt.Errorf("numarray.Reduce: invalid Stats value %v", stat)
}

// Call computes the reduction of s with the given name, which is
// the String of a [Stats] value (case insensitive).
// Returns an error if the name is not found.
func Call[F constraints.Float](name string, s []F) (F, error) {
	stat, err := StatsFromString(name)
	if err != nil {
		return nan[F](), fmt.Errorf("numarray.Call: function %q not registered", name)
	}
	return Reduce(stat, s)
}

// Standard computes the given standard reduction of s,
// logging any error and returning NaN in that case.
func Standard[F constraints.Float](stat Stats, s []F) F {
	return errors.Log1(Reduce(stat, s))
}
