package css

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Unit is a CSS length unit.
type Unit int

const (
	UnitPx Unit = iota
	UnitEm
	UnitEx
	UnitRem
	UnitCh
	UnitVh
	UnitVw
	UnitVmin
	UnitVmax
	UnitMm
	UnitQ
	UnitCm
	UnitIn
	UnitPt
	UnitPc
	UnitPercent
)

var unitNames = [...]string{
	UnitPx:      "px",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitRem:     "rem",
	UnitCh:      "ch",
	UnitVh:      "vh",
	UnitVw:      "vw",
	UnitVmin:    "vmin",
	UnitVmax:    "vmax",
	UnitMm:      "mm",
	UnitQ:       "q",
	UnitCm:      "cm",
	UnitIn:      "in",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitPercent: "%",
}

// String returns the unit suffix as written in CSS.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// ParseUnit maps a lower-cased suffix to a unit.
func ParseUnit(suffix string) (Unit, bool) {
	for u, name := range unitNames {
		if name == suffix {
			return Unit(u), true
		}
	}
	return UnitPx, false
}

// Units returns all units in declaration order.
func Units() []Unit {
	units := make([]Unit, len(unitNames))
	for i := range unitNames {
		units[i] = Unit(i)
	}
	return units
}

// ParseLength splits raw into magnitude and unit. Unknown units become px and
// unparsable magnitudes become 0.
//
// Unless fractional is set the magnitude is the run of digits in front of the
// first non-digit, everything after it belongs to the unit, so "1.5em" is 1
// with the unknown unit ".5em", i.e. 1px.
func ParseLength(raw string, fractional bool) Length {
	var num, suffix string
	if fractional {
		num, suffix = splitDecimal(raw)
	} else {
		num, suffix = splitDigits(raw)
	}

	var magnitude float32
	// too many digits give infinity rather than 0
	if f, err := strconv.ParseFloat(num, 32); err == nil || errors.Is(err, strconv.ErrRange) {
		magnitude = float32(f)
	}
	unit, _ := ParseUnit(suffix)
	return Length{Magnitude: magnitude, Unit: unit}
}

func splitDigits(raw string) (string, string) {
	end := strings.IndexFunc(raw, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		return raw, ""
	}
	return raw[:end], raw[end:]
}

// splitDecimal takes an optionally signed decimal number off the front of raw.
func splitDecimal(raw string) (string, string) {
	i := 0
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digits := 0
	for i < len(raw) && '0' <= raw[i] && raw[i] <= '9' {
		i++
		digits++
	}
	if i < len(raw) && raw[i] == '.' {
		j := i + 1
		for j < len(raw) && '0' <= raw[j] && raw[j] <= '9' {
			j++
			digits++
		}
		i = j
	}
	if digits == 0 {
		return "", raw
	}
	return raw[:i], raw[i:]
}
