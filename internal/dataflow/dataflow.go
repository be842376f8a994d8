// Package dataflow computes the two bitsets the code emitter needs before it
// can specialize a pattern: which calendar fields the format routine must
// materialize (spec.md §4.4), and which parse slots every path through the
// parse routine already writes, and therefore need no default
// initialization (spec.md §4.5).
package dataflow

import (
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/symtab"
)

// AttrSet is a bitset over the calendar fields a format routine must
// compute up front.
type AttrSet uint16

const (
	AttrYear AttrSet = 1 << iota
	AttrLeap
	AttrMonth
	AttrDay
	AttrHour
	AttrMinute
	AttrSecond
	AttrMillis
	AttrDayOfWeek
)

// Has reports whether bit is set in a.
func (a AttrSet) Has(bit AttrSet) bool { return a&bit != 0 }

// FormatAttrs walks ops and OR-bits the attribute set per spec.md §4.4.
// Dependency bits (leap for month/day, year for leap/month/day) are added
// alongside whatever field actually needs them, so the format emitter's
// dependency-ordered prelude has everything it needs without a second pass.
func FormatAttrs(ops []oplist.Op) AttrSet {
	var a AttrSet
	for _, op := range ops {
		if op.IsDelimiter() {
			continue
		}
		switch op.Opcode() {
		case symtab.OpEra:
			a |= AttrYear
		case symtab.OpYear1, symtab.OpYear2, symtab.OpYear4, symtab.OpYearGreedy:
			a |= AttrYear
		case symtab.OpMonth1, symtab.OpMonth2, symtab.OpMonthShort, symtab.OpMonthLong, symtab.OpMonthGreedy:
			a |= AttrYear | AttrLeap | AttrMonth
		case symtab.OpDay1, symtab.OpDay2, symtab.OpDayGreedy:
			a |= AttrYear | AttrLeap | AttrMonth | AttrDay
		case symtab.OpDayNameShort, symtab.OpDayNameLong:
			a |= AttrYear | AttrLeap | AttrMonth | AttrDay | AttrDayOfWeek
		case symtab.OpDayOfWeek:
			a |= AttrDayOfWeek
		case symtab.OpAMPM:
			a |= AttrHour
		case symtab.OpMinute1, symtab.OpMinute2, symtab.OpMinuteGreedy:
			a |= AttrMinute
		case symtab.OpSecond1, symtab.OpSecond2, symtab.OpSecondGreedy:
			a |= AttrSecond
		case symtab.OpMillis1, symtab.OpMillis3, symtab.OpMillisGreedy:
			a |= AttrMillis
		default:
			if symtab.IsHour(op.Opcode()) {
				a |= AttrHour
			}
			// Timezone opcodes write the caller-supplied zone label verbatim
			// and need no calendar-derived attribute.
		}
	}
	return a
}

// SlotSet is a bitset over the local parse slots that are written
// unconditionally by at least one op on every path through the parse
// routine, and therefore need no default initialization.
type SlotSet uint16

const (
	SlotDay SlotSet = 1 << iota
	SlotMonth
	SlotYear
	SlotHour
	SlotMinute
	SlotSecond
	SlotMillis
	SlotEra
	SlotTempLong
)

// Has reports whether bit is set in s.
func (s SlotSet) Has(bit SlotSet) bool { return s&bit != 0 }

// ParseSlots walks ops and OR-bits the slots each op writes per spec.md
// §4.5. Weekday-name and day-of-week ops write no defaultable slot: their
// value is informational only and compute() never consumes it. Timezone and
// offset are not part of this bitset at all — spec.md §4.5 lists them among
// the "additional always-initialized slots" that are defaulted
// unconditionally regardless of which ops are present.
//
// Every greedy op decodes its (value, length) word through the temp_long
// slot before storing into its destination field (spec.md §4.7's
// parse-int-safely skeleton), so greedy ops write temp_long in addition to
// their field slot. This module resolves spec.md §9's MINUTE_GREEDY
// ambiguity by applying that same temp_long-plus-field rule uniformly to
// every greedy op, not just minute (the "safe choice" spec.md names).
func ParseSlots(ops []oplist.Op) SlotSet {
	var s SlotSet
	for _, op := range ops {
		if op.IsDelimiter() {
			continue
		}
		switch op.Opcode() {
		case symtab.OpEra:
			s |= SlotEra
		case symtab.OpYear1, symtab.OpYear2, symtab.OpYear4:
			s |= SlotYear
		case symtab.OpYearGreedy:
			s |= SlotYear | SlotTempLong
		case symtab.OpMonth1, symtab.OpMonth2, symtab.OpMonthShort, symtab.OpMonthLong:
			s |= SlotMonth
		case symtab.OpMonthGreedy:
			s |= SlotMonth | SlotTempLong
		case symtab.OpDay1, symtab.OpDay2:
			s |= SlotDay
		case symtab.OpDayGreedy:
			s |= SlotDay | SlotTempLong
		case symtab.OpHour24_1, symtab.OpHour24_2, symtab.OpHour23_1, symtab.OpHour23_2,
			symtab.OpHour12_1, symtab.OpHour12_2, symtab.OpHour11_1, symtab.OpHour11_2:
			s |= SlotHour
		case symtab.OpHour24Greedy, symtab.OpHour23Greedy, symtab.OpHour12Greedy, symtab.OpHour11Greedy:
			s |= SlotHour | SlotTempLong
		case symtab.OpMinute1, symtab.OpMinute2:
			s |= SlotMinute
		case symtab.OpMinuteGreedy:
			s |= SlotMinute | SlotTempLong
		case symtab.OpSecond1, symtab.OpSecond2:
			s |= SlotSecond
		case symtab.OpSecondGreedy:
			s |= SlotSecond | SlotTempLong
		case symtab.OpMillis1, symtab.OpMillis3:
			s |= SlotMillis
		case symtab.OpMillisGreedy:
			s |= SlotMillis | SlotTempLong
		}
	}
	return s
}
