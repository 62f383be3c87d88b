// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Pad appends val to s until it has at least n elements, and returns
// the resulting slice. It does nothing if len(s) >= n.
func Pad[F constraints.Float](s []F, n int, val F) []F {
	if len(s) >= n {
		return s
	}
	s = slices.Grow(s, n-len(s))
	for len(s) < n {
		s = append(s, val)
	}
	return s
}

// Add adds b to a elementwise, a[i] += b[i], and returns a.
// See [Combine] for the handling of unequal lengths.
func Add[F constraints.Float](a, b []F) []F {
	return Combine(a, b, func(av, bv F) F {
		return av + bv
	})
}

// Subtract subtracts b from a elementwise, a[i] -= b[i], and returns a.
// See [Combine] for the handling of unequal lengths.
func Subtract[F constraints.Float](a, b []F) []F {
	return Combine(a, b, func(av, bv F) F {
		return av - bv
	})
}

// Multiply multiplies a by b elementwise, a[i] *= b[i], and returns a.
// See [Combine] for the handling of unequal lengths.
func Multiply[F constraints.Float](a, b []F) []F {
	return Combine(a, b, func(av, bv F) F {
		return bv * av
	})
}

// Combine sets a[i] = fun(a[i], b[i]) for each element and returns a.
// If a is shorter than b, it is first padded with zeros to the length
// of b. If b is shorter than a, its missing elements are passed to fun
// as zeros. The returned slice has the length of the longer of the two.
// Combine reads the values of b from a private copy and never writes
// to b, so a and b may be overlapping views of the same array, as in
// Subtract(s[1:], s[:len(s)-1]). Any such overlap of course reflects
// the updates made to a.
func Combine[F constraints.Float](a, b []F, fun func(av, bv F) F) []F {
	b = slices.Clone(b)
	a = Pad(a, len(b), 0)
	for i := range a {
		var bv F
		if i < len(b) {
			bv = b[i]
		}
		a[i] = fun(a[i], bv)
	}
	return a
}

// Scale multiplies every element of s by k in place and returns s.
func Scale[F constraints.Float](s []F, k F) []F {
	for i, v := range s {
		s[i] = k * v
	}
	return s
}

// Dot returns the dot product of a and b, with the shorter one treated
// as padded with zeros. Neither a nor b is modified.
func Dot[F constraints.Float](a, b []F) F {
	return Sum(Multiply(slices.Clone(a), b))
}
