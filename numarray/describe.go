// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DescriptiveStats are the stats computed by [Describe], in order.
var DescriptiveStats = []Stats{StatSum, StatMean, StatStdDev, StatStdDevPop, StatMin, StatMax}

// Description holds standard descriptive statistics for a sequence.
type Description[F constraints.Float] struct {
	Count     int
	Sum       F
	Mean      F
	StdDev    F
	StdDevPop F
	Min       F
	Max       F

	// Range is Max - Min.
	Range F

	// Midpoint is halfway between Min and Max.
	Midpoint F
}

// Describe returns the [DescriptiveStats] of s.
// It returns an error wrapping [ErrEmpty] for an empty sequence.
func Describe[F constraints.Float](s []F) (Description[F], error) {
	mr, err := MinMax(s)
	if err != nil {
		return Description[F]{}, fmt.Errorf("numarray.Describe: %w", ErrEmpty)
	}
	return Description[F]{
		Count:     len(s),
		Sum:       Sum(s),
		Mean:      Mean(s),
		StdDev:    StdDev(s),
		StdDevPop: StdDevPop(s),
		Min:       mr.Min,
		Max:       mr.Max,
		Range:     mr.Range(),
		Midpoint:  mr.Midpoint(),
	}, nil
}

// Value returns the value of the given stat in the description,
// or NaN if the stat is not one of the [DescriptiveStats].
func (d *Description[F]) Value(stat Stats) F {
	switch stat {
	case StatSum:
		return d.Sum
	case StatMean:
		return d.Mean
	case StatStdDev:
		return d.StdDev
	case StatStdDevPop:
		return d.StdDevPop
	case StatMin:
		return d.Min
	case StatMax:
		return d.Max
	}
	return nan[F]()
}
