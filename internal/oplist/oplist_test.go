package oplist

import (
	"testing"

	"github.com/datefmtc/datefmtc/internal/symtab"
)

func opcodes(t *testing.T, prog *Program) []symtab.Opcode {
	t.Helper()
	var out []symtab.Opcode
	for _, op := range prog.Ops {
		if !op.IsDelimiter() {
			out = append(out, op.Opcode())
		}
	}
	return out
}

func TestGreedyPromotionOnDelimiterAdjacency(t *testing.T) {
	prog := Compile("y-M-d", 0, len("y-M-d"))
	got := opcodes(t, prog)
	want := []symtab.Opcode{symtab.OpYearGreedy, symtab.OpMonthGreedy, symtab.OpDayGreedy}
	if len(got) != len(want) {
		t.Fatalf("opcodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFixedWidthNeverPromoted(t *testing.T) {
	prog := Compile("yyyyMMdd", 0, len("yyyyMMdd"))
	got := opcodes(t, prog)
	want := []symtab.Opcode{symtab.OpYear4, symtab.OpMonth2, symtab.OpDay2}
	if len(got) != len(want) {
		t.Fatalf("opcodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %v, want %v (fixed-width must not be promoted)", i, got[i], want[i])
		}
	}
}

func TestAMPMPromotesPrecedingHour(t *testing.T) {
	prog := Compile("h:mma", 0, len("h:mma"))
	got := opcodes(t, prog)
	want := []symtab.Opcode{symtab.OpHour11Greedy, symtab.OpMinute2, symtab.OpAMPM}
	if len(got) != len(want) {
		t.Fatalf("opcodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDelimiterTableDenseOneBased(t *testing.T) {
	prog := Compile("yyyy-MM-dd", 0, len("yyyy-MM-dd"))
	if len(prog.Delimiters) != 2 || prog.Delimiters[0] != "-" || prog.Delimiters[1] != "-" {
		t.Fatalf("delimiters = %v, want [\"-\" \"-\"]", prog.Delimiters)
	}
	for _, op := range prog.Ops {
		if op.IsDelimiter() {
			idx := op.DelimIndex()
			if idx < 0 || idx >= len(prog.Delimiters) {
				t.Errorf("delimiter index %d out of range for table of size %d", idx, len(prog.Delimiters))
			}
		}
	}
}

func TestEmptyPatternProducesNoOps(t *testing.T) {
	prog := Compile("", 0, 0)
	if len(prog.Ops) != 0 || len(prog.Delimiters) != 0 {
		t.Fatalf("got ops=%v delims=%v, want both empty", prog.Ops, prog.Delimiters)
	}
}
