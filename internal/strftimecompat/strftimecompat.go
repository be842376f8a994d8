// Package strftimecompat translates a legacy strftime-style format string
// into this module's own pattern alphabet, so callers migrating off a C
// strftime-based date layer don't have to hand-rewrite every call site.
// The format is first rendered once through github.com/ncruces/go-strftime
// as a validity check; the directive-by-directive translation itself uses
// this package's own directiveToSymbol table.
package strftimecompat

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// directiveToSymbol maps each strftime directive this module can express to
// its pattern-alphabet equivalent. Directives with no opcode in
// internal/symtab (e.g. %j day-of-year, %U/%W week-of-year) are deliberately
// absent; Translate reports them as unsupported rather than guessing.
var directiveToSymbol = map[byte]string{
	'Y': "yyyy",
	'y': "yy",
	'm': "MM",
	'B': "MMMM",
	'b': "MMM",
	'd': "dd",
	'e': "d",
	'A': "EE",
	'a': "E",
	'H': "HH",
	'I': "hh",
	'M': "mm",
	'S': "ss",
	'p': "a",
	'Z': "z",
	'z': "Z",
}

// UnsupportedDirectiveError reports a strftime directive with no equivalent
// pattern-alphabet opcode.
type UnsupportedDirectiveError struct {
	Directive byte
}

func (e *UnsupportedDirectiveError) Error() string {
	return fmt.Sprintf("strftime directive %%%c has no datefmtc equivalent", e.Directive)
}

// Translate converts a strftime format string into this module's pattern
// alphabet. Before translating, it asks go-strftime to render the format
// against a fixed probe instant — a format go-strftime itself rejects is
// rejected here too, so this module never claims to translate a directive
// sequence that isn't valid strftime in the first place.
func Translate(format string) (string, error) {
	probe := time.Date(2017, 3, 27, 15, 4, 5, 0, time.UTC)
	if _, err := safeFormat(format, probe); err != nil {
		return "", fmt.Errorf("not a valid strftime format: %w", err)
	}

	var out strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			out.WriteByte(c)
			continue
		}
		i++
		directive := format[i]
		if directive == '%' {
			out.WriteByte('%')
			continue
		}
		sym, ok := directiveToSymbol[directive]
		if !ok {
			return "", &UnsupportedDirectiveError{Directive: directive}
		}
		out.WriteString(sym)
	}
	return out.String(), nil
}

// safeFormat calls strftime.Format defensively: a malformed directive in the
// caller's format string surfaces as an error here instead of propagating a
// panic out of Translate.
func safeFormat(format string, t time.Time) (rendered string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid strftime format: %v", r)
		}
	}()
	rendered = strftime.Format(format, t)
	return rendered, nil
}
