// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"math"
	"testing"

	"cogentcore.org/numarray/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	s := []float64{2, 4, 6, 10}
	r, mr, err := Normalize(s)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 1}, r)
	assert.Equal(t, []float64{0, 0.25, 0.5, 1}, s)
	assert.Equal(t, minmax.F64{Min: 2, Max: 10}, mr)

	Project(s, mr)
	assert.Equal(t, []float64{2, 4, 6, 10}, s)

	r, _, err = Normalize([]float64{3, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, r)

	_, _, err = Normalize([]float64{})
	assert.ErrorIs(t, err, ErrEmpty)

	r, _, err = Normalize([]float64{1, math.NaN()})
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(r[0]))
	assert.True(t, math.IsNaN(r[1]))
}

func TestProject(t *testing.T) {
	got := Project([]float32{0, 0.5, 1}, minmax.F32{Min: -2, Max: 2})
	assert.Equal(t, []float32{-2, 0, 2}, got)
}

func TestClip(t *testing.T) {
	s, err := Clip([]float64{-5, 0.5, 3, math.NaN()}, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, s[:3])
	assert.True(t, math.IsNaN(s[3]))

	orig := []float64{1, 2}
	_, err = Clip(orig, 2, 1)
	assert.Error(t, err)
	assert.Equal(t, []float64{1, 2}, orig)
}

func TestArrayNormalize(t *testing.T) {
	arr := NewFromValues(1.0, 3, 5)
	mr, err := arr.Normalize()
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, arr.Values)
	assert.Equal(t, []float64{1, 3, 5}, arr.Project(mr).Values)

	_, err = arr.Clip(2, 4)
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, arr.Values)

	_, err = NewFromValues[float64]().Normalize()
	assert.ErrorIs(t, err, ErrEmpty)
}
