package compiler

import (
	"github.com/datefmtc/datefmtc/internal/numfmt"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/symtab"
)

// formatStep renders one op's contribution into frame.s, in order.
type formatStep func(frame *formatFrame)

// EmitFormat specializes prog into one formatStep per op, resolving every
// symbol/width decision once at compile time instead of re-dispatching on
// every call. The emitter never returns an error: by the time a Program
// reaches here the pattern has already been validated (spec.md §4.6's
// "format never fails once the instant is in range").
func EmitFormat(prog *oplist.Program) []formatStep {
	steps := make([]formatStep, 0, len(prog.Ops))
	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			lit := prog.Delimiters[op.DelimIndex()]
			steps = append(steps, func(frame *formatFrame) { frame.s.WriteString(lit) })
			continue
		}
		steps = append(steps, emitFormatOp(op.Opcode()))
	}
	return steps
}

func emitFormatOp(op symtab.Opcode) formatStep {
	switch op {
	case symtab.OpEra:
		return func(frame *formatFrame) {
			frame.s.WriteString(frame.loc.FormatEraByYear(frame.f.Year))
		}

	case symtab.OpYear1:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, absYear(frame.f.Year)) }
	case symtab.OpYear2:
		return func(frame *formatFrame) { numfmt.WriteYear2(frame.s, frame.f.Year) }
	case symtab.OpYear4:
		return func(frame *formatFrame) { numfmt.WriteYear4(frame.s, frame.f.Year) }
	case symtab.OpYearGreedy:
		// Per spec.md §8 scenario 2, a bare 'y' promoted to greedy renders
		// the same two-digit window twoDigitYearPivot re-expands at parse
		// time (year 2021 -> "21"), mirroring numfmt.WriteYear2.
		return func(frame *formatFrame) { numfmt.WriteYear2(frame.s, frame.f.Year) }

	case symtab.OpMonth1, symtab.OpMonthGreedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Month) }
	case symtab.OpMonth2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Month, 2) }
	case symtab.OpMonthShort:
		return func(frame *formatFrame) { frame.s.WriteString(frame.loc.FormatMonthShort(frame.f.Month)) }
	case symtab.OpMonthLong:
		return func(frame *formatFrame) { frame.s.WriteString(frame.loc.FormatMonthLong(frame.f.Month)) }

	case symtab.OpDay1, symtab.OpDayGreedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Day) }
	case symtab.OpDay2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Day, 2) }
	case symtab.OpDayNameShort:
		return func(frame *formatFrame) { frame.s.WriteString(frame.loc.FormatWeekdayShort(frame.dow)) }
	case symtab.OpDayNameLong:
		return func(frame *formatFrame) { frame.s.WriteString(frame.loc.FormatWeekdayLong(frame.dow)) }
	case symtab.OpDayOfWeek:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.dow) }

	case symtab.OpAMPM:
		return func(frame *formatFrame) { frame.s.WriteString(frame.loc.FormatAMPM(frame.f.Hour)) }

	case symtab.OpHour24_1, symtab.OpHour24Greedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Hour) }
	case symtab.OpHour24_2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Hour, 2) }

	case symtab.OpHour23_1, symtab.OpHour23Greedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, hour23(frame.f.Hour)) }
	case symtab.OpHour23_2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, hour23(frame.f.Hour), 2) }

	case symtab.OpHour12_1, symtab.OpHour12Greedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Hour%12) }
	case symtab.OpHour12_2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Hour%12, 2) }

	case symtab.OpHour11_1, symtab.OpHour11Greedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, hour11(frame.f.Hour)) }
	case symtab.OpHour11_2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, hour11(frame.f.Hour), 2) }

	case symtab.OpMinute1, symtab.OpMinuteGreedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Minute) }
	case symtab.OpMinute2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Minute, 2) }

	case symtab.OpSecond1, symtab.OpSecondGreedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Second) }
	case symtab.OpSecond2:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Second, 2) }

	case symtab.OpMillis1, symtab.OpMillisGreedy:
		return func(frame *formatFrame) { numfmt.WriteUnpadded(frame.s, frame.f.Millis) }
	case symtab.OpMillis3:
		return func(frame *formatFrame) { numfmt.WritePadded(frame.s, frame.f.Millis, 3) }

	case symtab.OpTZShort, symtab.OpTZGmt, symtab.OpTZLong,
		symtab.OpTZRfc822, symtab.OpTZIso1, symtab.OpTZIso2, symtab.OpTZIso3:
		// All seven timezone opcodes resolve to the same sink call per
		// spec.md §4.6/§9: formatting writes the caller-supplied zone label
		// verbatim regardless of which timezone symbol was used. Only
		// parsing differentiates name lookup from numeric offset parsing.
		return func(frame *formatFrame) { frame.s.WriteString(frame.zoneLabel) }
	}

	// Unreachable: every registered opcode is handled above.
	return func(*formatFrame) {}
}

// absYear renders the year magnitude for unpadded year fields; the sign, for
// the rare pattern that prints a bare 'y' against a negative astronomical
// year, is intentionally dropped here since width-1/greedy year fields have
// no documented negative-year contract (only yyyy does, per spec.md §8).
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
