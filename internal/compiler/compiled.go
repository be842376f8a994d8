package compiler

import (
	"github.com/google/uuid"

	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/dataflow"
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/sink"
)

// Builder assembles a Program into the specialized closure slices. It holds
// no state of its own; it exists so call sites read as
// "compiler.NewBuilder().EmitFormat(...)" rather than bare package funcs,
// matching the Compiler-as-a-value shape of internal/vm/compiler.go.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) EmitFormat(prog *oplist.Program) []formatStep { return EmitFormat(prog) }
func (b *Builder) EmitParse(prog *oplist.Program) []parseStep   { return EmitParse(prog) }

// CompiledFormat is the specialized closure-tree result of compiling one
// pattern: a format step slice, a parse step slice, and the attribute/slot
// bitsets. Format always decomposes the full instant and consults Attrs only
// to decide whether to compute the day of week; Parse does not read Slots and
// always starts from a frame with every slot defaulted.
type CompiledFormat struct {
	Pattern     string
	Program     *oplist.Program
	Attrs       dataflow.AttrSet
	Slots       dataflow.SlotSet
	InstanceID  string
	formatSteps []formatStep
	parseSteps  []parseStep
}

// Compile builds a CompiledFormat for pattern[lo:hi] using the closure-tree
// strategy. InstanceID is a fresh random id stamped on every compile, so a
// caller correlating compiler output across a debug log (or internal/rpc's
// request tracing) can tell two CompiledFormats of the same pattern apart.
func Compile(pattern string, lo, hi int) *CompiledFormat {
	prog := oplist.Compile(pattern, lo, hi)
	b := NewBuilder()
	return &CompiledFormat{
		Pattern:     pattern[lo:hi],
		Program:     prog,
		Attrs:       dataflow.FormatAttrs(prog.Ops),
		Slots:       dataflow.ParseSlots(prog.Ops),
		InstanceID:  uuid.NewString(),
		formatSteps: b.EmitFormat(prog),
		parseSteps:  b.EmitParse(prog),
	}
}

// Format renders instant into s using loc for names and zoneLabel for any
// literal timezone-name op. Per spec.md §4.6, formatting a valid instant
// never fails.
func (c *CompiledFormat) Format(instant int64, loc *locale.Locale, zoneLabel string, s sink.Sink) {
	if loc == nil {
		loc = locale.Default()
	}
	frame := &formatFrame{f: calendar.Decompose(instant), loc: loc, zoneLabel: zoneLabel, s: s}
	if c.Attrs.Has(dataflow.AttrDayOfWeek) {
		frame.dow = calendar.DayOfWeek(instant)
	}
	for _, step := range c.formatSteps {
		step(frame)
	}
}

// Parse reads text[lo:hi] and returns the UTC millisecond instant it
// denotes, or one of the dterrors kinds on failure.
func (c *CompiledFormat) Parse(text string, lo, hi int, loc *locale.Locale) (int64, error) {
	if loc == nil {
		loc = locale.Default()
	}
	frame := newParseFrame(text, lo, hi, loc)
	for _, step := range c.parseSteps {
		if err := step(frame); err != nil {
			return 0, err
		}
	}
	if frame.pos != hi {
		return 0, &dterrors.TailGarbageError{Pos: frame.pos, Hi: hi}
	}
	return calendar.Compute(frame.fields(), frame.hourType, frame.pos)
}
