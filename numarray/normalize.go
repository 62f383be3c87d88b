// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"fmt"

	"cogentcore.org/numarray/math32/minmax"
	"golang.org/x/exp/constraints"
)

// Normalize rescales s in place so that its minimum maps to 0 and its
// maximum to 1, and returns s. A constant sequence becomes all zeros,
// and a sequence containing NaN becomes all NaN. It returns the range
// that was used, which can be passed to [Project] to undo the mapping.
// It returns an error wrapping [ErrEmpty] for an empty sequence.
func Normalize[F constraints.Float](s []F) ([]F, minmax.Range[F], error) {
	mr, err := MinMax(s)
	if err != nil {
		return s, mr, fmt.Errorf("numarray.Normalize: %w", ErrEmpty)
	}
	for i, v := range s {
		s[i] = mr.NormValue(v)
	}
	return s, mr, nil
}

// Project maps normalized 0-1 values in s into the given range in place,
// the inverse of [Normalize], and returns s.
func Project[F constraints.Float](s []F, mr minmax.Range[F]) []F {
	for i, v := range s {
		s[i] = mr.ProjValue(v)
	}
	return s
}

// Clip limits each value in s to the range [lo, hi] in place and returns s.
// NaN values are left as NaN. It returns an error if lo > hi.
func Clip[F constraints.Float](s []F, lo, hi F) ([]F, error) {
	var mr minmax.Range[F]
	mr.Set(lo, hi)
	if !mr.IsValid() {
		return s, fmt.Errorf("numarray.Clip: invalid range [%v, %v]", lo, hi)
	}
	for i, v := range s {
		s[i] = mr.ClipValue(v)
	}
	return s, nil
}
