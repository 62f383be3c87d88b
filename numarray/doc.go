// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package numarray provides reductions and elementwise operations on
ordered sequences of floating point numbers, represented as plain
Go slices of any type satisfying [constraints.Float].

Reductions ([Sum], [Mean], [StdDevPop], [StdDev], [Max], [Min], [MinMax])
only read their input. [Mean], [StdDev] and [StdDevPop] return NaN for an
empty sequence, which callers must check for, while [Max] and [Min] return
an error wrapping [ErrEmpty].

Binary elementwise operations ([Add], [Subtract], [Multiply]) mutate the
first (left) sequence in place. If the sequences differ in length, the
left one is padded with zeros up to the length of the right one, and
positions beyond the end of the right one are treated as zero. The right
sequence is never modified. Like the builtin append, these functions
return the resulting left slice, which must be used in place of the
original since padding may reallocate it:

	a = numarray.Add(a, b)

[Dot] computes the dot product on a copy of its left operand, so neither
argument is changed.

The [Array] type wraps a slice and provides all of the operations as
methods, with the mutating ones returning the receiver for chaining:

	arr := numarray.NewFromValues(1.0, 2, 3)
	arr.Add([]float64{1, 1, 1, 1}).Scale(2)

[Normalize], [Project] and [Clip] rescale or limit a sequence in place
using the range computed by [MinMax].

The [Stats] enum names the reductions, and [Call] and [Reduce] dispatch
to them by name or value. [Standard] logs errors with [log/slog]
instead of returning them; host programs can call
[cogentcore.org/numarray/base/logx.SetDefaultLogger] to get leveled,
colored output for those messages.

None of the functions do any locking: sequences that are mutated must
not be shared across goroutines without external synchronization.
*/
package numarray
