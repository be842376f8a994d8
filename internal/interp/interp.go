// Package interp is the generic op-list walker spec.md §4.8 calls for: a
// single switch-dispatch loop that re-derives, at call time, exactly what
// internal/compiler's closure tree resolves once at compile time. It exists
// to give spec.md §8's "generic == specialized" testable property something
// independent to check the fast path against, grounded on the
// switch-over-opcode dispatch loop of internal/vm/vm_exec.go in the teacher
// corpus.
package interp

import (
	"strings"

	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/dataflow"
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/numfmt"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/sink"
	"github.com/datefmtc/datefmtc/internal/symtab"
	"github.com/datefmtc/datefmtc/internal/tzoffset"
)

// Exec walks an oplist.Program directly, without specializing it first. Its
// zero value is ready to use.
type Exec struct{}

// Format renders instant by walking prog.Ops in order, dispatching on each
// op's opcode on every call rather than via precompiled closures.
func (Exec) Format(prog *oplist.Program, instant int64, loc *locale.Locale, zoneLabel string, s sink.Sink) {
	if loc == nil {
		loc = locale.Default()
	}
	f := calendar.Decompose(instant)
	attrs := dataflow.FormatAttrs(prog.Ops)
	dow := 0
	if attrs.Has(dataflow.AttrDayOfWeek) {
		dow = calendar.DayOfWeek(instant)
	}

	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			s.WriteString(prog.Delimiters[op.DelimIndex()])
			continue
		}
		formatOne(op.Opcode(), f, dow, loc, zoneLabel, s)
	}
}

func formatOne(op symtab.Opcode, f calendar.Fields, dow int, loc *locale.Locale, zoneLabel string, s sink.Sink) {
	switch op {
	case symtab.OpEra:
		s.WriteString(loc.FormatEraByYear(f.Year))
	case symtab.OpYear1:
		numfmt.WriteUnpadded(s, absYear(f.Year))
	case symtab.OpYear2, symtab.OpYearGreedy:
		numfmt.WriteYear2(s, f.Year)
	case symtab.OpYear4:
		numfmt.WriteYear4(s, f.Year)
	case symtab.OpMonth1, symtab.OpMonthGreedy:
		numfmt.WriteUnpadded(s, f.Month)
	case symtab.OpMonth2:
		numfmt.WritePadded(s, f.Month, 2)
	case symtab.OpMonthShort:
		s.WriteString(loc.FormatMonthShort(f.Month))
	case symtab.OpMonthLong:
		s.WriteString(loc.FormatMonthLong(f.Month))
	case symtab.OpDay1, symtab.OpDayGreedy:
		numfmt.WriteUnpadded(s, f.Day)
	case symtab.OpDay2:
		numfmt.WritePadded(s, f.Day, 2)
	case symtab.OpDayNameShort:
		s.WriteString(loc.FormatWeekdayShort(dow))
	case symtab.OpDayNameLong:
		s.WriteString(loc.FormatWeekdayLong(dow))
	case symtab.OpDayOfWeek:
		numfmt.WriteUnpadded(s, dow)
	case symtab.OpAMPM:
		s.WriteString(loc.FormatAMPM(f.Hour))
	case symtab.OpHour24_1, symtab.OpHour24Greedy:
		numfmt.WriteUnpadded(s, f.Hour)
	case symtab.OpHour24_2:
		numfmt.WritePadded(s, f.Hour, 2)
	case symtab.OpHour23_1, symtab.OpHour23Greedy:
		numfmt.WriteUnpadded(s, hour23(f.Hour))
	case symtab.OpHour23_2:
		numfmt.WritePadded(s, hour23(f.Hour), 2)
	case symtab.OpHour12_1, symtab.OpHour12Greedy:
		numfmt.WriteUnpadded(s, f.Hour%12)
	case symtab.OpHour12_2:
		numfmt.WritePadded(s, f.Hour%12, 2)
	case symtab.OpHour11_1, symtab.OpHour11Greedy:
		numfmt.WriteUnpadded(s, hour11(f.Hour))
	case symtab.OpHour11_2:
		numfmt.WritePadded(s, hour11(f.Hour), 2)
	case symtab.OpMinute1, symtab.OpMinuteGreedy:
		numfmt.WriteUnpadded(s, f.Minute)
	case symtab.OpMinute2:
		numfmt.WritePadded(s, f.Minute, 2)
	case symtab.OpSecond1, symtab.OpSecondGreedy:
		numfmt.WriteUnpadded(s, f.Second)
	case symtab.OpSecond2:
		numfmt.WritePadded(s, f.Second, 2)
	case symtab.OpMillis1, symtab.OpMillisGreedy:
		numfmt.WriteUnpadded(s, f.Millis)
	case symtab.OpMillis3:
		numfmt.WritePadded(s, f.Millis, 3)
	case symtab.OpTZShort, symtab.OpTZGmt, symtab.OpTZLong,
		symtab.OpTZRfc822, symtab.OpTZIso1, symtab.OpTZIso2, symtab.OpTZIso3:
		// All seven timezone opcodes resolve to the same sink call per
		// spec.md §4.6/§9: formatting writes the caller-supplied zone label
		// verbatim regardless of which timezone symbol was used.
		s.WriteString(zoneLabel)
	}
}

func absYear(year int) int {
	if year < 0 {
		return -year
	}
	return year
}

func hour23(hour24 int) int {
	if hour24 == 0 {
		return 24
	}
	return hour24
}

func hour11(hour24 int) int {
	h := hour24 % 12
	if h == 0 {
		return 12
	}
	return h
}

// state is the interpreter's running parse accumulator, the generic
// counterpart of internal/compiler's parseFrame.
type state struct {
	year, month, day         int
	hour, minute, second, ms int
	era                      bool
	hourType                 calendar.HourType
	timezone                 int
	offset                   int64
	dow                      int
}

func newState() *state {
	return &state{year: 1970, month: 1, day: 1, era: true, hourType: calendar.HourType24, timezone: -1, offset: calendar.SentinelOffset}
}

func (st *state) fields() calendar.Fields {
	year := st.year
	if !st.era {
		year = -year
	}
	return calendar.Fields{
		Year: year, Month: st.month, Day: st.day,
		Hour: st.hour, Minute: st.minute, Second: st.second, Millis: st.ms,
		Timezone: st.timezone, Offset: st.offset,
	}
}

// Parse reads text[lo:hi] against prog, dispatching on every op at call
// time.
func (Exec) Parse(prog *oplist.Program, text string, lo, hi int, loc *locale.Locale) (int64, error) {
	if loc == nil {
		loc = locale.Default()
	}
	st := newState()
	pos := lo
	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			lit := prog.Delimiters[op.DelimIndex()]
			if hi-pos < len(lit) || !strings.HasPrefix(text[pos:hi], lit) {
				return 0, &dterrors.DelimiterMismatchError{Pos: pos, Expected: lit}
			}
			pos += len(lit)
			continue
		}
		newPos, err := parseOne(op.Opcode(), text, pos, hi, loc, st)
		if err != nil {
			return 0, err
		}
		pos = newPos
	}
	if pos != hi {
		return 0, &dterrors.TailGarbageError{Pos: pos, Hi: hi}
	}
	return calendar.Compute(st.fields(), st.hourType, pos)
}

func twoDigitYearPivot(v int) int {
	if v >= 70 {
		return 1900 + v
	}
	return 2000 + v
}

func readOptionalSign(text string, pos, hi int) (int, int) {
	if pos < hi && text[pos] == '-' {
		return -1, pos + 1
	}
	return 1, pos
}

func parseOne(op symtab.Opcode, text string, pos, hi int, loc *locale.Locale, st *state) (int, error) {
	switch op {
	case symtab.OpEra:
		isAD, n, ok := loc.MatchEra(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "era"}
		}
		st.era = isAD
		return pos + n, nil

	case symtab.OpYear1:
		v, p, err := numfmt.ParseFixed(text, pos, hi, 1)
		if err != nil {
			return pos, err
		}
		st.year = v
		return p, nil
	case symtab.OpYear2:
		v, p, err := numfmt.ParseFixed(text, pos, hi, 2)
		if err != nil {
			return pos, err
		}
		st.year = twoDigitYearPivot(v)
		return p, nil
	case symtab.OpYear4:
		sign, p := readOptionalSign(text, pos, hi)
		v, p, err := numfmt.ParseFixed(text, p, hi, 4)
		if err != nil {
			return pos, err
		}
		st.year = sign * v
		return p, nil
	case symtab.OpYearGreedy:
		sign, start := readOptionalSign(text, pos, hi)
		v, p, err := numfmt.ParseGreedy(text, start, hi)
		if err != nil {
			return pos, err
		}
		if sign > 0 && p-start == 2 {
			v = twoDigitYearPivot(v)
		}
		st.year = sign * v
		return p, nil

	case symtab.OpMonth1:
		return fixedInto(text, pos, hi, 1, &st.month)
	case symtab.OpMonth2:
		return fixedInto(text, pos, hi, 2, &st.month)
	case symtab.OpMonthGreedy:
		return greedyInto(text, pos, hi, &st.month)
	case symtab.OpMonthShort:
		m, n, ok := loc.MatchMonthShort(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "month"}
		}
		st.month = m
		return pos + n, nil
	case symtab.OpMonthLong:
		m, n, ok := loc.MatchMonthLong(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "month"}
		}
		st.month = m
		return pos + n, nil

	case symtab.OpDay1:
		return fixedInto(text, pos, hi, 1, &st.day)
	case symtab.OpDay2:
		return fixedInto(text, pos, hi, 2, &st.day)
	case symtab.OpDayGreedy:
		return greedyInto(text, pos, hi, &st.day)
	case symtab.OpDayNameShort:
		dow, n, ok := loc.MatchWeekdayShort(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "weekday"}
		}
		st.dow = dow
		return pos + n, nil
	case symtab.OpDayNameLong:
		dow, n, ok := loc.MatchWeekdayLong(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "weekday"}
		}
		st.dow = dow
		return pos + n, nil
	case symtab.OpDayOfWeek:
		return fixedInto(text, pos, hi, 1, &st.dow)

	case symtab.OpAMPM:
		isPM, n, ok := loc.MatchAMPM(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "am/pm"}
		}
		if isPM {
			st.hourType = calendar.HourTypePM
		} else {
			st.hourType = calendar.HourTypeAM
		}
		return pos + n, nil

	case symtab.OpHour24_1:
		return fixedInto(text, pos, hi, 1, &st.hour)
	case symtab.OpHour24_2:
		return fixedInto(text, pos, hi, 2, &st.hour)
	case symtab.OpHour24Greedy:
		return greedyInto(text, pos, hi, &st.hour)

	case symtab.OpHour23_1:
		return fixedDecremented(text, pos, hi, 1, &st.hour)
	case symtab.OpHour23_2:
		return fixedDecremented(text, pos, hi, 2, &st.hour)
	case symtab.OpHour23Greedy:
		return greedyDecremented(text, pos, hi, &st.hour)

	case symtab.OpHour12_1:
		return fixedInto(text, pos, hi, 1, &st.hour)
	case symtab.OpHour12_2:
		return fixedInto(text, pos, hi, 2, &st.hour)
	case symtab.OpHour12Greedy:
		return greedyInto(text, pos, hi, &st.hour)

	case symtab.OpHour11_1:
		return fixedInto(text, pos, hi, 1, &st.hour)
	case symtab.OpHour11_2:
		return fixedInto(text, pos, hi, 2, &st.hour)
	case symtab.OpHour11Greedy:
		return greedyInto(text, pos, hi, &st.hour)

	case symtab.OpMinute1:
		return fixedInto(text, pos, hi, 1, &st.minute)
	case symtab.OpMinute2:
		return fixedInto(text, pos, hi, 2, &st.minute)
	case symtab.OpMinuteGreedy:
		return greedyInto(text, pos, hi, &st.minute)

	case symtab.OpSecond1:
		return fixedInto(text, pos, hi, 1, &st.second)
	case symtab.OpSecond2:
		return fixedInto(text, pos, hi, 2, &st.second)
	case symtab.OpSecondGreedy:
		return greedyInto(text, pos, hi, &st.second)

	case symtab.OpMillis1:
		return fixedInto(text, pos, hi, 1, &st.ms)
	case symtab.OpMillis3:
		return fixedInto(text, pos, hi, 3, &st.ms)
	case symtab.OpMillisGreedy:
		return greedyInto(text, pos, hi, &st.ms)

	case symtab.OpTZShort, symtab.OpTZGmt, symtab.OpTZLong:
		idx, offset, n, ok := loc.MatchZone(text[:hi], pos)
		if !ok {
			return pos, &dterrors.NameLookupFailedError{Pos: pos, Kind: "timezone"}
		}
		st.timezone, st.offset = idx, offset
		return pos + n, nil
	case symtab.OpTZRfc822:
		offset, p, err := tzoffset.ParseRFC822(text, pos, hi)
		if err != nil {
			return pos, err
		}
		st.offset = offset
		return p, nil
	case symtab.OpTZIso1:
		offset, p, err := tzoffset.ParseISO1(text, pos, hi)
		if err != nil {
			return pos, err
		}
		st.offset = offset
		return p, nil
	case symtab.OpTZIso2:
		offset, p, err := tzoffset.ParseISO2(text, pos, hi)
		if err != nil {
			return pos, err
		}
		st.offset = offset
		return p, nil
	case symtab.OpTZIso3:
		offset, p, err := tzoffset.ParseISO3(text, pos, hi)
		if err != nil {
			return pos, err
		}
		st.offset = offset
		return p, nil
	}
	return pos, nil
}

func fixedInto(text string, pos, hi, width int, slot *int) (int, error) {
	v, p, err := numfmt.ParseFixed(text, pos, hi, width)
	if err != nil {
		return pos, err
	}
	*slot = v
	return p, nil
}

func greedyInto(text string, pos, hi int, slot *int) (int, error) {
	v, p, err := numfmt.ParseGreedy(text, pos, hi)
	if err != nil {
		return pos, err
	}
	*slot = v
	return p, nil
}

func fixedDecremented(text string, pos, hi, width int, slot *int) (int, error) {
	v, p, err := numfmt.ParseFixed(text, pos, hi, width)
	if err != nil {
		return pos, err
	}
	*slot = v - 1
	return p, nil
}

func greedyDecremented(text string, pos, hi int, slot *int) (int, error) {
	v, p, err := numfmt.ParseGreedy(text, pos, hi)
	if err != nil {
		return pos, err
	}
	*slot = v - 1
	return p, nil
}
