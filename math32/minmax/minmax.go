// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range represents a min / max range for floating point values.
// Supports clipping, normalizing and projecting values.
type Range[F constraints.Float] struct {
	Min F
	Max F
}

// F64 is a [Range] of float64 values.
type F64 = Range[float64]

// F32 is a [Range] of float32 values.
type F32 = Range[float32]

// Set sets the min and max values
func (mr *Range[F]) Set(mn, mx F) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValueInRange
func (mr *Range[F]) SetInfinity() {
	mr.Min = F(math.Inf(1))
	mr.Max = F(math.Inf(-1))
}

// IsValid returns true if Min <= Max
func (mr *Range[F]) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr *Range[F]) Range() F {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range -- if Range = 0 then returns 0
func (mr *Range[F]) Scale() F {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns point halfway between Min and Max
func (mr *Range[F]) Midpoint() F {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValueInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *Range[F]) FitValueInRange(val F) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range
// Clips the value within Min-Max range first.
func (mr *Range[F]) NormValue(val F) F {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range (inverse of NormValue)
func (mr *Range[F]) ProjValue(val F) F {
	return mr.Min + (val * mr.Range())
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr *Range[F]) ClipValue(val F) F {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}
