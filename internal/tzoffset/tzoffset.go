// Package tzoffset renders and parses the four numeric-offset pattern
// families (Z, x, xx, xxx). internal/compiler and internal/interp share its
// Parse* functions; neither calls the Format* functions, since their format
// routines write the caller's zone label for every timezone op.
package tzoffset

import (
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/numfmt"
	"github.com/datefmtc/datefmtc/internal/sink"
)

const millisPerHour = 3600000
const millisPerMinute = 60000

// FormatRFC822 writes offsetMillis as "+HHMM"/"-HHMM" (the 'Z' symbol).
func FormatRFC822(offsetMillis int64, s sink.Sink) {
	writeSigned(offsetMillis, s, false, false)
}

// FormatISO1 writes offsetMillis as "+HH"/"-HH" (the 'x' symbol).
func FormatISO1(offsetMillis int64, s sink.Sink) {
	h := offsetMillis / millisPerHour
	if h < 0 {
		h = -h
	}
	if offsetMillis < 0 {
		s.WriteByte('-')
	} else {
		s.WriteByte('+')
	}
	numfmt.WritePadded(s, int(h), 2)
}

// FormatISO2 writes offsetMillis as "+HHMM"/"-HHMM" (the 'xx' symbol).
func FormatISO2(offsetMillis int64, s sink.Sink) {
	writeSigned(offsetMillis, s, false, false)
}

// FormatISO3 writes offsetMillis as "+HH:MM"/"-HH:MM" (the 'xxx' symbol).
func FormatISO3(offsetMillis int64, s sink.Sink) {
	writeSigned(offsetMillis, s, true, false)
}

func writeSigned(offsetMillis int64, s sink.Sink, colon, _ bool) {
	abs := offsetMillis
	if abs < 0 {
		abs = -abs
	}
	h := abs / millisPerHour
	m := (abs % millisPerHour) / millisPerMinute
	if offsetMillis < 0 {
		s.WriteByte('-')
	} else {
		s.WriteByte('+')
	}
	numfmt.WritePadded(s, int(h), 2)
	if colon {
		s.WriteByte(':')
	}
	numfmt.WritePadded(s, int(m), 2)
}

// ParseRFC822 parses "+HHMM"/"-HHMM" at pos, matching the 'Z' symbol.
func ParseRFC822(text string, pos, hi int) (offsetMillis int64, newPos int, err error) {
	return parseSigned(text, pos, hi, false)
}

// ParseISO1 parses "+HH"/"-HH" at pos, matching the 'x' symbol.
func ParseISO1(text string, pos, hi int) (offsetMillis int64, newPos int, err error) {
	sign, p, err := readSign(text, pos, hi)
	if err != nil {
		return 0, pos, err
	}
	h, p, err := numfmt.ParseFixed(text, p, hi, 2)
	if err != nil {
		return 0, pos, err
	}
	return sign * int64(h) * millisPerHour, p, nil
}

// ParseISO2 parses "+HHMM"/"-HHMM" at pos, matching the 'xx' symbol.
func ParseISO2(text string, pos, hi int) (offsetMillis int64, newPos int, err error) {
	return parseSigned(text, pos, hi, false)
}

// ParseISO3 parses "+HH:MM"/"-HH:MM" at pos, matching the 'xxx' symbol.
func ParseISO3(text string, pos, hi int) (offsetMillis int64, newPos int, err error) {
	return parseSigned(text, pos, hi, true)
}

func parseSigned(text string, pos, hi int, colon bool) (offsetMillis int64, newPos int, err error) {
	sign, p, err := readSign(text, pos, hi)
	if err != nil {
		return 0, pos, err
	}
	h, p, err := numfmt.ParseFixed(text, p, hi, 2)
	if err != nil {
		return 0, pos, err
	}
	if colon {
		if p >= hi || text[p] != ':' {
			return 0, pos, &dterrors.DelimiterMismatchError{Pos: p, Expected: ":"}
		}
		p++
	}
	m, p, err := numfmt.ParseFixed(text, p, hi, 2)
	if err != nil {
		return 0, pos, err
	}
	return sign * (int64(h)*millisPerHour + int64(m)*millisPerMinute), p, nil
}

func readSign(text string, pos, hi int) (sign int64, newPos int, err error) {
	if pos >= hi {
		return 0, pos, &dterrors.ShortInputError{Pos: pos, Wanted: 1, Remained: 0}
	}
	switch text[pos] {
	case '+':
		return 1, pos + 1, nil
	case '-':
		return -1, pos + 1, nil
	default:
		return 0, pos, &dterrors.BadDigitError{Pos: pos, Got: text[pos]}
	}
}
