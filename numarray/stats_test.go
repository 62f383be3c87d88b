// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsString(t *testing.T) {
	assert.Equal(t, "Sum", StatSum.String())
	assert.Equal(t, "StdDevPop", StatStdDevPop.String())
	assert.Equal(t, "Max", StatMax.String())
	assert.Equal(t, "42", Stats(42).String())
	assert.Equal(t, "minimum value.", StatMin.Desc())
	assert.Equal(t, "42", Stats(42).Desc())
	assert.True(t, StatMax.IsValid())
	assert.False(t, StatsN.IsValid())
	assert.Equal(t, int64(3), StatStdDev.Int64())
	var si Stats
	si.SetInt64(2)
	assert.Equal(t, StatStdDevPop, si)
	assert.Len(t, StatsValues(), int(StatsN))

	for _, st := range StatsValues() {
		got, err := StatsFromString(st.String())
		assert.NoError(t, err)
		assert.Equal(t, st, got)
	}
	got, err := StatsFromString("STDDEV")
	assert.NoError(t, err)
	assert.Equal(t, StatStdDev, got)
	_, err = StatsFromString("Median")
	assert.Error(t, err)
}

func TestStatsText(t *testing.T) {
	b, err := StatMean.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Mean", string(b))

	var st Stats
	assert.NoError(t, st.UnmarshalText([]byte("Min")))
	assert.Equal(t, StatMin, st)
	assert.Error(t, st.UnmarshalText([]byte("bogus")))
}

func TestReduce(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	results := []float64{10, 2.5, math.Sqrt(5.0 / 4), math.Sqrt(5.0 / 3), 1, 4}
	for _, st := range StatsValues() {
		v, err := Reduce(st, s)
		assert.NoError(t, err)
		assert.InDelta(t, results[st], v, tol, st.String())
	}
	v, err := Reduce(Stats(-1), s)
	assert.Error(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestCall(t *testing.T) {
	s := []float64{1, 1, 4}
	v, err := Call("Mean", s)
	assert.NoError(t, err)
	assert.Equal(t, Mean(s), v)

	_, err = Call("Bogus", s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"Bogus"`)

	_, err = Call("Max", []float64{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStandard(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.Equal(t, 4.0, Standard(StatSum, []float64{1, 1, 2}))
	assert.Empty(t, buf.String())

	assert.True(t, math.IsNaN(Standard(StatMax, []float64{})))
	assert.Contains(t, buf.String(), "empty sequence")
}

func TestDescribe(t *testing.T) {
	d, err := Describe([]float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 4, d.Count)
	assert.Equal(t, 10.0, d.Sum)
	assert.Equal(t, 2.5, d.Mean)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)
	assert.Equal(t, 3.0, d.Range)
	assert.Equal(t, 2.5, d.Midpoint)
	for _, st := range DescriptiveStats {
		want, err := Reduce(st, []float64{1, 2, 3, 4})
		assert.NoError(t, err)
		assert.InDelta(t, want, d.Value(st), tol, st.String())
	}
	assert.True(t, math.IsNaN(d.Value(StatsN)))

	_, err = Describe([]float64{})
	assert.ErrorIs(t, err, ErrEmpty)

	arr := NewFromValues(5.0)
	d, err = arr.Describe()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d.StdDev)
	assert.Equal(t, 5.0, d.Max)
}
