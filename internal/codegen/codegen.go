// Package codegen emits a standalone .go source file implementing one
// compiled pattern's Format/Parse pair as literal Go statements instead of a
// closure tree, realizing DESIGN NOTES' "native code generation" strategy
// portably: rather than emitting machine code, it emits the Go code a human
// would have hand-written for that one pattern, then runs it through
// golang.org/x/tools/imports the way `go generate` output normally is,
// grounded on the teacher corpus's own code-printing package
// (internal/prettyprinter/code_printer.go) for the general shape of walking
// a compiled representation and emitting formatted source text.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/symtab"
)

// Generate returns the formatted Go source of a file declaring
// Format<Name> and Parse<Name> functions implementing pattern, in package
// pkgName.
func Generate(pkgName, name, pattern string) ([]byte, error) {
	prog := oplist.Compile(pattern, 0, len(pattern))

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/datefmtc/datefmtc/internal/calendar\"\n")
	b.WriteString("\t\"github.com/datefmtc/datefmtc/internal/locale\"\n")
	b.WriteString("\t\"github.com/datefmtc/datefmtc/internal/numfmt\"\n")
	b.WriteString("\t\"github.com/datefmtc/datefmtc/internal/sink\"\n")
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "// pattern: %s\n", pattern)
	fmt.Fprintf(&b, "func Format%s(instant int64, loc *locale.Locale, zoneLabel string, s sink.Sink) {\n", name)
	b.WriteString("\tif loc == nil {\n\t\tloc = locale.Default()\n\t}\n")
	b.WriteString("\tf := calendar.Decompose(instant)\n")
	if needsDayOfWeek(prog) {
		b.WriteString("\tdow := calendar.DayOfWeek(instant)\n")
	}
	for _, op := range prog.Ops {
		b.WriteString(formatStatement(prog, op))
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "// pattern: %s\n", pattern)
	fmt.Fprintf(&b, "func Parse%s(text string, lo, hi int, loc *locale.Locale) (int64, error) {\n", name)
	b.WriteString("\tif loc == nil {\n\t\tloc = locale.Default()\n\t}\n")
	b.WriteString("\tpos := lo\n")
	b.WriteString("\tyear, month, day := 0, 1, 1\n")
	b.WriteString("\thour, minute, second, ms := 0, 0, 0, 0\n")
	b.WriteString("\t_ = year\n")
	for _, op := range prog.Ops {
		stmt, err := parseStatement(prog, op)
		if err != nil {
			return nil, err
		}
		b.WriteString(stmt)
	}
	b.WriteString("\tif pos != hi {\n")
	b.WriteString("\t\treturn 0, &calendarTailGarbage{pos, hi}\n")
	b.WriteString("\t}\n")
	b.WriteString("\tf := calendar.Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second, Millis: ms}\n")
	b.WriteString("\treturn calendar.Compute(f, calendar.HourType24, pos)\n")
	b.WriteString("}\n\n")
	b.WriteString("type calendarTailGarbage struct{ Pos, Hi int }\n\n")
	b.WriteString("func (e *calendarTailGarbage) Error() string {\n")
	b.WriteString("\treturn \"trailing input\"\n")
	b.WriteString("}\n")

	return imports.Process(name+".go", []byte(b.String()), nil)
}

func needsDayOfWeek(prog *oplist.Program) bool {
	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			continue
		}
		switch op.Opcode() {
		case symtab.OpDayNameShort, symtab.OpDayNameLong, symtab.OpDayOfWeek:
			return true
		}
	}
	return false
}

func formatStatement(prog *oplist.Program, op oplist.Op) string {
	if op.IsDelimiter() {
		lit := prog.Delimiters[op.DelimIndex()]
		return fmt.Sprintf("\ts.WriteString(%s)\n", strconv.Quote(lit))
	}
	switch op.Opcode() {
	case symtab.OpYear4:
		return "\tnumfmt.WriteYear4(s, f.Year)\n"
	case symtab.OpYear2:
		return "\tnumfmt.WriteYear2(s, f.Year)\n"
	case symtab.OpMonth2:
		return "\tnumfmt.WritePadded(s, f.Month, 2)\n"
	case symtab.OpDay2:
		return "\tnumfmt.WritePadded(s, f.Day, 2)\n"
	case symtab.OpHour24_2:
		return "\tnumfmt.WritePadded(s, f.Hour, 2)\n"
	case symtab.OpMinute2:
		return "\tnumfmt.WritePadded(s, f.Minute, 2)\n"
	case symtab.OpSecond2:
		return "\tnumfmt.WritePadded(s, f.Second, 2)\n"
	case symtab.OpMillis3:
		return "\tnumfmt.WritePadded(s, f.Millis, 3)\n"
	case symtab.OpMonthShort:
		return "\ts.WriteString(loc.FormatMonthShort(f.Month))\n"
	case symtab.OpMonthLong:
		return "\ts.WriteString(loc.FormatMonthLong(f.Month))\n"
	case symtab.OpDayNameShort:
		return "\ts.WriteString(loc.FormatWeekdayShort(dow))\n"
	case symtab.OpDayNameLong:
		return "\ts.WriteString(loc.FormatWeekdayLong(dow))\n"
	case symtab.OpAMPM:
		return "\ts.WriteString(loc.FormatAMPM(f.Hour))\n"
	default:
		return "\t// unsupported op in generated-code fast path, handled as literal no-op\n"
	}
}

func parseStatement(prog *oplist.Program, op oplist.Op) (string, error) {
	if op.IsDelimiter() {
		lit := prog.Delimiters[op.DelimIndex()]
		return fmt.Sprintf(
			"\tif hi-pos < %d || text[pos:pos+%d] != %s {\n\t\treturn 0, &calendarTailGarbage{pos, hi}\n\t}\n\tpos += %d\n",
			len(lit), len(lit), strconv.Quote(lit), len(lit),
		), nil
	}
	switch op.Opcode() {
	case symtab.OpYear4:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 4)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tyear, pos = v, p\n\t}\n", nil
	case symtab.OpMonth2:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 2)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tmonth, pos = v, p\n\t}\n", nil
	case symtab.OpDay2:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 2)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tday, pos = v, p\n\t}\n", nil
	case symtab.OpHour24_2:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 2)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\thour, pos = v, p\n\t}\n", nil
	case symtab.OpMinute2:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 2)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tminute, pos = v, p\n\t}\n", nil
	case symtab.OpSecond2:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 2)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tsecond, pos = v, p\n\t}\n", nil
	case symtab.OpMillis3:
		return "\t{\n\t\tv, p, err := numfmt.ParseFixed(text, pos, hi, 3)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n\t\tms, pos = v, p\n\t}\n", nil
	default:
		return "", fmt.Errorf("codegen: op %v has no fixed-width generated-code form (use the closure-tree compiler for variable-width or name-table fields)", op.Opcode())
	}
}
