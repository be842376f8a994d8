package compiler

import (
	"strings"

	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/numfmt"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/symtab"
	"github.com/datefmtc/datefmtc/internal/tzoffset"
)

// parseStep consumes some prefix of frame.text starting at frame.pos,
// advancing frame.pos and writing into frame's slots, or returns one of the
// dterrors kinds.
type parseStep func(frame *parseFrame) error

// EmitParse specializes prog into one parseStep per op.
func EmitParse(prog *oplist.Program) []parseStep {
	steps := make([]parseStep, 0, len(prog.Ops))
	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			lit := prog.Delimiters[op.DelimIndex()]
			steps = append(steps, func(frame *parseFrame) error { return matchLiteral(frame, lit) })
			continue
		}
		steps = append(steps, emitParseOp(op.Opcode()))
	}
	return steps
}

func matchLiteral(frame *parseFrame, lit string) error {
	if frame.hi-frame.pos < len(lit) || !strings.HasPrefix(frame.text[frame.pos:frame.hi], lit) {
		return &dterrors.DelimiterMismatchError{Pos: frame.pos, Expected: lit}
	}
	frame.pos += len(lit)
	return nil
}

// twoDigitYearPivot folds a 2-digit year per the resolved Open Question in
// SPEC_FULL.md §11: 70-99 -> 1970-1999, 00-69 -> 2000-2069.
func twoDigitYearPivot(v int) int {
	if v >= 70 {
		return 1900 + v
	}
	return 2000 + v
}

func readOptionalSign(frame *parseFrame) int {
	if frame.pos < frame.hi && frame.text[frame.pos] == '-' {
		frame.pos++
		return -1
	}
	return 1
}

func emitParseOp(op symtab.Opcode) parseStep {
	switch op {
	case symtab.OpEra:
		return func(frame *parseFrame) error {
			isAD, n, ok := frame.loc.MatchEra(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "era"}
			}
			frame.era = isAD
			frame.pos += n
			return nil
		}

	case symtab.OpYear1:
		return func(frame *parseFrame) error {
			v, pos, err := numfmt.ParseFixed(frame.text, frame.pos, frame.hi, 1)
			if err != nil {
				return err
			}
			frame.year, frame.pos = v, pos
			return nil
		}
	case symtab.OpYear2:
		return func(frame *parseFrame) error {
			v, pos, err := numfmt.ParseFixed(frame.text, frame.pos, frame.hi, 2)
			if err != nil {
				return err
			}
			frame.year, frame.pos = twoDigitYearPivot(v), pos
			return nil
		}
	case symtab.OpYear4:
		return func(frame *parseFrame) error {
			sign := readOptionalSign(frame)
			v, pos, err := numfmt.ParseFixed(frame.text, frame.pos, frame.hi, 4)
			if err != nil {
				return err
			}
			frame.year, frame.pos = sign*v, pos
			return nil
		}
	case symtab.OpYearGreedy:
		return func(frame *parseFrame) error {
			sign := readOptionalSign(frame)
			start := frame.pos
			v, pos, err := numfmt.ParseGreedy(frame.text, frame.pos, frame.hi)
			if err != nil {
				return err
			}
			if sign > 0 && pos-start == 2 {
				v = twoDigitYearPivot(v)
			}
			frame.year, frame.pos = sign*v, pos
			return nil
		}

	case symtab.OpMonth1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.month })
	case symtab.OpMonth2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.month })
	case symtab.OpMonthGreedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.month })
	case symtab.OpMonthShort:
		return func(frame *parseFrame) error {
			m, n, ok := frame.loc.MatchMonthShort(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "month"}
			}
			frame.month, frame.pos = m, frame.pos+n
			return nil
		}
	case symtab.OpMonthLong:
		return func(frame *parseFrame) error {
			m, n, ok := frame.loc.MatchMonthLong(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "month"}
			}
			frame.month, frame.pos = m, frame.pos+n
			return nil
		}

	case symtab.OpDay1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.day })
	case symtab.OpDay2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.day })
	case symtab.OpDayGreedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.day })
	case symtab.OpDayNameShort:
		return func(frame *parseFrame) error {
			dow, n, ok := frame.loc.MatchWeekdayShort(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "weekday"}
			}
			frame.dow, frame.pos = dow, frame.pos+n
			return nil
		}
	case symtab.OpDayNameLong:
		return func(frame *parseFrame) error {
			dow, n, ok := frame.loc.MatchWeekdayLong(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "weekday"}
			}
			frame.dow, frame.pos = dow, frame.pos+n
			return nil
		}
	case symtab.OpDayOfWeek:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.dow })

	case symtab.OpAMPM:
		return func(frame *parseFrame) error {
			isPM, n, ok := frame.loc.MatchAMPM(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "am/pm"}
			}
			if isPM {
				frame.hourType = calendar.HourTypePM
			} else {
				frame.hourType = calendar.HourTypeAM
			}
			frame.pos += n
			return nil
		}

	case symtab.OpHour24_1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour24_2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour24Greedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.hour })

	case symtab.OpHour23_1:
		return fixedDigitsDecremented(1)
	case symtab.OpHour23_2:
		return fixedDigitsDecremented(2)
	case symtab.OpHour23Greedy:
		return greedyDigitsDecremented()

	case symtab.OpHour12_1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour12_2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour12Greedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.hour })

	case symtab.OpHour11_1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour11_2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.hour })
	case symtab.OpHour11Greedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.hour })

	case symtab.OpMinute1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.minute })
	case symtab.OpMinute2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.minute })
	case symtab.OpMinuteGreedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.minute })

	case symtab.OpSecond1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.second })
	case symtab.OpSecond2:
		return fixedDigitsInto(2, func(f *parseFrame) *int { return &f.second })
	case symtab.OpSecondGreedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.second })

	case symtab.OpMillis1:
		return fixedDigitsInto(1, func(f *parseFrame) *int { return &f.ms })
	case symtab.OpMillis3:
		return fixedDigitsInto(3, func(f *parseFrame) *int { return &f.ms })
	case symtab.OpMillisGreedy:
		return greedyDigitsInto(func(f *parseFrame) *int { return &f.ms })

	case symtab.OpTZShort, symtab.OpTZGmt, symtab.OpTZLong:
		return func(frame *parseFrame) error {
			idx, offset, n, ok := frame.loc.MatchZone(frame.text[:frame.hi], frame.pos)
			if !ok {
				return &dterrors.NameLookupFailedError{Pos: frame.pos, Kind: "timezone"}
			}
			frame.timezone, frame.offset, frame.pos = idx, offset, frame.pos+n
			return nil
		}
	case symtab.OpTZRfc822:
		return func(frame *parseFrame) error {
			offset, pos, err := tzoffset.ParseRFC822(frame.text, frame.pos, frame.hi)
			if err != nil {
				return err
			}
			frame.offset, frame.pos = offset, pos
			return nil
		}
	case symtab.OpTZIso1:
		return func(frame *parseFrame) error {
			offset, pos, err := tzoffset.ParseISO1(frame.text, frame.pos, frame.hi)
			if err != nil {
				return err
			}
			frame.offset, frame.pos = offset, pos
			return nil
		}
	case symtab.OpTZIso2:
		return func(frame *parseFrame) error {
			offset, pos, err := tzoffset.ParseISO2(frame.text, frame.pos, frame.hi)
			if err != nil {
				return err
			}
			frame.offset, frame.pos = offset, pos
			return nil
		}
	case symtab.OpTZIso3:
		return func(frame *parseFrame) error {
			offset, pos, err := tzoffset.ParseISO3(frame.text, frame.pos, frame.hi)
			if err != nil {
				return err
			}
			frame.offset, frame.pos = offset, pos
			return nil
		}
	}

	return func(*parseFrame) error { return nil }
}

func fixedDigitsInto(width int, slot func(*parseFrame) *int) parseStep {
	return func(frame *parseFrame) error {
		v, pos, err := numfmt.ParseFixed(frame.text, frame.pos, frame.hi, width)
		if err != nil {
			return err
		}
		*slot(frame) = v
		frame.pos = pos
		return nil
	}
}

func greedyDigitsInto(slot func(*parseFrame) *int) parseStep {
	return func(frame *parseFrame) error {
		v, pos, err := numfmt.ParseGreedy(frame.text, frame.pos, frame.hi)
		if err != nil {
			return err
		}
		*slot(frame) = v
		frame.pos = pos
		return nil
	}
}

// fixedDigitsDecremented implements the k/kk family: one-based 24-hour
// clock values 1-24 are decremented to the 0-23 form Compute expects.
func fixedDigitsDecremented(width int) parseStep {
	return func(frame *parseFrame) error {
		v, pos, err := numfmt.ParseFixed(frame.text, frame.pos, frame.hi, width)
		if err != nil {
			return err
		}
		frame.hour = v - 1
		frame.pos = pos
		return nil
	}
}

func greedyDigitsDecremented() parseStep {
	return func(frame *parseFrame) error {
		v, pos, err := numfmt.ParseGreedy(frame.text, frame.pos, frame.hi)
		if err != nil {
			return err
		}
		frame.hour = v - 1
		frame.pos = pos
		return nil
	}
}
