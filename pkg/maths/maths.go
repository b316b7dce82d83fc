// Package maths provides the directional decimal rounding used for all
// monetary calculations in the tax engine.
package maths

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode selects the rounding direction.
type Mode int

const (
	ModeNearest Mode = iota // half away from zero at the target precision
	ModeUp                  // toward +Inf
	ModeDown                // toward -Inf
)

// Version selects between the two historical rounding algorithms.
// V1 applies the directional epsilon only for fractional precision and
// ignores direction entirely at zero places. V2 degenerates to exact
// ceiling/floor at zero places under ModeUp/ModeDown.
type Version int

const (
	V1 Version = iota + 1
	V2
)

// ErrNegativePlaces is returned when a caller asks for a negative precision.
var ErrNegativePlaces = errors.New("maths: places must not be negative")

// epsilon is the directional offset applied at the target precision before
// the half-up primitive. It compensates for representation error flipping a
// halfway value to the wrong side.
var epsilon = decimal.New(45, -2) // 0.45

// Round rounds value to the given number of decimal places in the
// requested direction. ModeUp pushes toward +Inf and ModeDown toward
// -Inf, for negative values too.
func Round(value decimal.Decimal, places int32, mode Mode, version Version) (decimal.Decimal, error) {
	if places < 0 {
		return decimal.Decimal{}, ErrNegativePlaces
	}

	if version == V2 && places == 0 {
		switch mode {
		case ModeUp:
			return value.Ceil(), nil
		case ModeDown:
			return value.Floor(), nil
		}
	}

	offset := decimal.Zero
	if places != 0 {
		switch mode {
		case ModeUp:
			offset = epsilon.Shift(-places)
		case ModeDown:
			offset = epsilon.Shift(-places).Neg()
		}
	}

	// decimal.Round is half away from zero, the same primitive both
	// historical algorithms were built on.
	return value.Add(offset).Round(places), nil
}

// RoundUp rounds value toward +Inf at the given precision.
func RoundUp(value decimal.Decimal, places int32, version Version) (decimal.Decimal, error) {
	return Round(value, places, ModeUp, version)
}

// RoundDown rounds value toward -Inf at the given precision.
func RoundDown(value decimal.Decimal, places int32, version Version) (decimal.Decimal, error) {
	return Round(value, places, ModeDown, version)
}

// RoundNearest rounds value half away from zero at the given precision.
func RoundNearest(value decimal.Decimal, places int32, version Version) (decimal.Decimal, error) {
	return Round(value, places, ModeNearest, version)
}

// ParseMode maps a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "nearest":
		return ModeNearest, nil
	case "up":
		return ModeUp, nil
	case "down":
		return ModeDown, nil
	}
	return ModeNearest, fmt.Errorf("maths: unknown rounding mode %q", s)
}

// ParseVersion maps a configuration string to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "v1":
		return V1, nil
	case "", "v2":
		return V2, nil
	}
	return V2, fmt.Errorf("maths: unknown algorithm version %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeUp:
		return "up"
	case ModeDown:
		return "down"
	}
	return "nearest"
}

func (v Version) String() string {
	if v == V1 {
		return "v1"
	}
	return "v2"
}
