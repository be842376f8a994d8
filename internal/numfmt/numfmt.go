// Package numfmt holds the digit-parsing and zero-padded-rendering helpers
// spec.md §1 lists as a fixed external collaborator ("numeric digit parsing
// helpers"). Every specialized and generic parse/format routine funnels its
// numeric work through this package so the width/padding rules live in
// exactly one place.
package numfmt

import (
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/sink"
)

// --- formatting ---

// WritePadded zero-pads a non-negative value to width digits (or more, if
// value itself needs more digits than width) and writes it to s.
func WritePadded(s sink.Sink, value, width int) {
	digits := countDigits(value)
	for i := digits; i < width; i++ {
		s.WriteByte('0')
	}
	s.WriteString(itoa(value))
}

// WriteUnpadded writes value with no leading zeros, used for width-1 and
// greedy numeric ops.
func WriteUnpadded(s sink.Sink, value int) {
	s.WriteString(itoa(value))
}

// WriteYear4 implements spec.md §8's negative-year boundary case: a
// negative astronomical year formats as '-' followed by the zero-padded
// (to 4 digits) absolute value.
func WriteYear4(s sink.Sink, year int) {
	if year < 0 {
		s.WriteByte('-')
		WritePadded(s, -year, 4)
		return
	}
	WritePadded(s, year, 4)
}

// WriteYear2 implements YEAR_TWO_DIGITS: emit year mod 100, zero-padded to
// 2 digits.
func WriteYear2(s sink.Sink, year int) {
	v := year % 100
	if v < 0 {
		v += 100
	}
	WritePadded(s, v, 2)
}

func countDigits(v int) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := v < 0
	if neg {
		v = -v
	}
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// --- parsing ---

// ParseFixed reads exactly n decimal digits starting at pos, returning the
// parsed value and the new position. Fails with ShortInputError if fewer
// than n bytes remain, or BadDigitError on the first non-digit byte.
func ParseFixed(text string, pos, hi, n int) (value, newPos int, err error) {
	if hi-pos < n {
		return 0, pos, &dterrors.ShortInputError{Pos: pos, Wanted: n, Remained: hi - pos}
	}
	v := 0
	for i := 0; i < n; i++ {
		c := text[pos+i]
		if c < '0' || c > '9' {
			return 0, pos, &dterrors.BadDigitError{Pos: pos + i, Got: c}
		}
		v = v*10 + int(c-'0')
	}
	return v, pos + n, nil
}

// ParseGreedy reads 1..(hi-pos) decimal digits starting at pos and stops at
// the first non-digit byte or at hi, matching spec.md §4.7's "parse-int-
// safely" helper. An empty read (no digits at all) is a BadDigitError,
// matching the documented "Greedy field at end of input: empty read is
// BadDigit" boundary case.
func ParseGreedy(text string, pos, hi int) (value, newPos int, err error) {
	start := pos
	v := 0
	for pos < hi {
		c := text[pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		pos++
	}
	if pos == start {
		var got byte
		if pos < hi {
			got = text[pos]
		}
		return 0, start, &dterrors.BadDigitError{Pos: start, Got: got}
	}
	return v, pos, nil
}
