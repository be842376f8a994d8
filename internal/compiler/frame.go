// Package compiler is the code emitter: spec.md's "hard part". Given a
// greedy-promoted internal/oplist.Program plus the internal/dataflow bitsets,
// it builds two closure slices — one per format step, one per parse step —
// and assembles them into a CompiledFormat. This is the "closure-tree"
// strategy DESIGN NOTES (a) calls out, grounded on the small dispatch-table
// shape of internal/vm/vm_exec.go in the teacher corpus, generalized from a
// single switch over opcodes to a slice of pre-resolved closures so the
// per-pattern specialization cost is paid once, at Compile time, rather than
// on every Format/Parse call.
package compiler

import (
	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/sink"
)

// formatFrame carries everything a formatStep closure needs: the calendar
// fields already decomposed from the caller's instant, the day-of-week if
// any op needs it, the locale table, the caller-supplied zone label, and the
// output sink.
type formatFrame struct {
	f         calendar.Fields
	dow       int
	loc       *locale.Locale
	zoneLabel string
	s         sink.Sink
}

// parseFrame carries the in-progress parse state across every parseStep
// closure, mirroring spec.md §4.5's parse slots plus the always-initialized
// extras (timezone, offset, era, hourType).
type parseFrame struct {
	text string
	pos  int
	hi   int
	loc  *locale.Locale

	year, month, day           int
	hour, minute, second, ms   int
	era                        bool // true = AD
	hourType                   calendar.HourType
	timezone                   int
	offset                     int64
	dow                        int
}

func newParseFrame(text string, lo, hi int, loc *locale.Locale) *parseFrame {
	return &parseFrame{
		text:     text,
		pos:      lo,
		hi:       hi,
		loc:      loc,
		year:     1970,
		month:    1,
		day:      1,
		era:      true,
		hourType: calendar.HourType24,
		timezone: -1,
		offset:   calendar.SentinelOffset,
	}
}

func (pf *parseFrame) fields() calendar.Fields {
	year := pf.year
	if !pf.era {
		year = -year
	}
	return calendar.Fields{
		Year: year, Month: pf.month, Day: pf.day,
		Hour: pf.hour, Minute: pf.minute, Second: pf.second, Millis: pf.ms,
		Timezone: pf.timezone, Offset: pf.offset,
	}
}
