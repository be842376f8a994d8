// Package datefmt is the embeddable public API: compile a pattern once, then
// format or parse against it as many times as needed. It is a thin wrapper
// over internal/compiler and internal/interp, grounded on the thin
// VM-wrapper shape of pkg/embed/vm.go in the teacher corpus — callers never
// see the op list, the dataflow bitsets, or either execution strategy
// directly.
package datefmt

import (
	"github.com/datefmtc/datefmtc/internal/compiler"
	"github.com/datefmtc/datefmtc/internal/dterrors"
	"github.com/datefmtc/datefmtc/internal/interp"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/sink"
)

// Locale re-exports internal/locale.Locale so callers never import an
// internal package directly.
type Locale = locale.Locale

// DefaultLocale returns the module's built-in English locale.
func DefaultLocale() *Locale { return locale.Default() }

// Sink is the character-sink abstraction Format writes through.
type Sink = sink.Sink

// NewStringSink returns a Sink that accumulates into a string, the adapter
// most callers reach for when they just want CompiledFormat.Format to
// produce a string.
func NewStringSink() *sink.Builder { return sink.NewBuilder() }

// CompiledFormat is a pattern that has already been tokenized, op-listed,
// analyzed, and specialized (or, with generic mode, left to be walked by
// internal/interp). Compiling is the expensive step; Format and Parse are
// meant to be called many times against the same CompiledFormat.
type CompiledFormat struct {
	pattern     string
	program     *oplist.Program
	generic     bool
	specialized *compiler.CompiledFormat
}

// Compile builds a CompiledFormat for pattern[0:len(pattern)]. When generic
// is true, Format and Parse walk the op list through internal/interp on
// every call instead of running a one-time specialized closure tree — useful
// for verifying the fast path, or for patterns compiled so rarely that
// specialization cost isn't worth paying.
func Compile(pattern string, generic bool) (*CompiledFormat, error) {
	return CompileRange(pattern, 0, len(pattern), generic)
}

// CompileRange builds a CompiledFormat for pattern[lo:hi], letting a caller
// reuse one larger string buffer across many sub-pattern compiles.
func CompileRange(pattern string, lo, hi int, generic bool) (*CompiledFormat, error) {
	if hi-lo > 0 {
		prog := oplist.Compile(pattern, lo, hi)
		if len(prog.Ops) > 4096 {
			return nil, &dterrors.PatternTooLargeError{OpCount: len(prog.Ops), Limit: 4096}
		}
	}
	cf := &CompiledFormat{pattern: pattern[lo:hi], generic: generic}
	if generic {
		cf.program = oplist.Compile(pattern, lo, hi)
	} else {
		cf.specialized = compiler.Compile(pattern, lo, hi)
		cf.program = cf.specialized.Program
	}
	return cf, nil
}

// Pattern returns the source pattern this CompiledFormat was built from.
func (c *CompiledFormat) Pattern() string { return c.pattern }

// Format renders instant (a UTC millisecond timestamp) into s. zoneLabel is
// written verbatim for every timezone op, the name ops (z, zz, zzz) and the
// numeric offset ops (Z, x, xx, xxx) alike.
func (c *CompiledFormat) Format(instant int64, loc *Locale, zoneLabel string, s Sink) {
	if c.generic {
		interp.Exec{}.Format(c.program, instant, loc, zoneLabel, s)
		return
	}
	c.specialized.Format(instant, loc, zoneLabel, s)
}

// FormatString is a convenience wrapper returning the formatted string
// directly.
func (c *CompiledFormat) FormatString(instant int64, loc *Locale, zoneLabel string) string {
	b := sink.NewBuilder()
	c.Format(instant, loc, zoneLabel, b)
	return b.String()
}

// Parse reads text[lo:hi] and returns the UTC millisecond instant it
// denotes.
func (c *CompiledFormat) Parse(text string, lo, hi int, loc *Locale) (int64, error) {
	if c.generic {
		return interp.Exec{}.Parse(c.program, text, lo, hi, loc)
	}
	return c.specialized.Parse(text, lo, hi, loc)
}

// ParseString is a convenience wrapper over the whole of text.
func (c *CompiledFormat) ParseString(text string, loc *Locale) (int64, error) {
	return c.Parse(text, 0, len(text), loc)
}
