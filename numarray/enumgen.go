// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numarray

import (
	"fmt"
	"strconv"
	"strings"
)

var _StatsValues = []Stats{0, 1, 2, 3, 4, 5}

// StatsN is the highest valid value for type Stats, plus one.
const StatsN Stats = 6

var _StatsNameToValueMap = map[string]Stats{`Sum`: 0, `sum`: 0, `Mean`: 1, `mean`: 1, `StdDevPop`: 2, `stddevpop`: 2, `StdDev`: 3, `stddev`: 3, `Min`: 4, `min`: 4, `Max`: 5, `max`: 5}

var _StatsDescMap = map[Stats]string{0: `sum of elements.`, 1: `mean value = sum / count.`, 2: `population standard deviation (squared deviations from mean, divided by n, square root).`, 3: `sample standard deviation (squared deviations from mean, divided by n-1, square root).`, 4: `minimum value.`, 5: `maximum value.`}

var _StatsMap = map[Stats]string{0: `Sum`, 1: `Mean`, 2: `StdDevPop`, 3: `StdDev`, 4: `Min`, 5: `Max`}

// String returns the string representation of this Stats value.
func (i Stats) String() string {
	if str, ok := _StatsMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Stats value from its
// string representation, and returns an
// error if the string is invalid.
func (i *Stats) SetString(s string) error {
	if val, ok := _StatsNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _StatsNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Stats", s)
}

// StatsFromString returns the Stats value with the given name.
func StatsFromString(s string) (Stats, error) {
	var i Stats
	err := i.SetString(s)
	return i, err
}

// Int64 returns the Stats value as an int64.
func (i Stats) Int64() int64 { return int64(i) }

// SetInt64 sets the Stats value from an int64.
func (i *Stats) SetInt64(in int64) { *i = Stats(in) }

// Desc returns the description of the Stats value.
func (i Stats) Desc() string {
	if str, ok := _StatsDescMap[i]; ok {
		return str
	}
	return i.String()
}

// StatsValues returns all possible values for the type Stats.
func StatsValues() []Stats { return _StatsValues }

// IsValid returns whether the value is a
// valid option for its enum type.
func (i Stats) IsValid() bool {
	_, ok := _StatsMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Stats) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Stats) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
