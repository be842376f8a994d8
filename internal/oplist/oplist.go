// Package oplist turns a token sequence into the op stream + delimiter
// table pair spec.md §3-4.3 describes, and applies greedy promotion.
package oplist

import (
	"github.com/datefmtc/datefmtc/internal/lexer"
	"github.com/datefmtc/datefmtc/internal/symtab"
)

// Op is one element of the compiled op stream: a positive value is an
// symtab.Opcode, a negative value -k refers to delimiters[k-1] (1-based,
// dense, per spec.md §3 invariant (i)).
type Op int32

// IsDelimiter reports whether op refers to the delimiter table.
func (op Op) IsDelimiter() bool { return op < 0 }

// DelimIndex returns the 0-based index into the delimiter table op refers
// to. Only valid when IsDelimiter() is true.
func (op Op) DelimIndex() int { return int(-op) - 1 }

// Opcode returns op as a field opcode. Only valid when IsDelimiter() is
// false.
func (op Op) Opcode() symtab.Opcode { return symtab.Opcode(op) }

// Program is the result of building and greedy-promoting an op stream: the
// op sequence plus the literal strings it references.
type Program struct {
	Ops        []Op
	Delimiters []string
}

// Build tokenizes pattern[lo:hi] and produces the op stream before greedy
// promotion. Callers almost always want Compile instead, which also runs
// PromoteGreedy.
func Build(pattern string, lo, hi int) *Program {
	tokens := lexer.Tokenize(pattern, lo, hi)
	prog := &Program{}
	for _, tok := range tokens {
		if tok.Kind == lexer.Symbol {
			prog.Ops = append(prog.Ops, Op(tok.Op))
			continue
		}
		prog.Delimiters = append(prog.Delimiters, tok.Text)
		idx := len(prog.Delimiters) // 1-based
		prog.Ops = append(prog.Ops, Op(-idx))
	}
	return prog
}

// Compile builds the op stream for pattern[lo:hi] and applies greedy
// promotion, returning the final Program ready for dataflow analysis and
// code emission.
func Compile(pattern string, lo, hi int) *Program {
	prog := Build(pattern, lo, hi)
	PromoteGreedy(prog)
	return prog
}

// PromoteGreedy mutates prog.Ops in place: the last field op preceding any
// delimiter (including the trailing boundary after the final op) is
// promoted to its greedy twin per spec.md §4.3. An AM_PM op additionally
// promotes whatever field op immediately precedes it, whether or not a
// delimiter separates them, since AM/PM itself acts as an end-of-field
// boundary for the hour (spec.md §4.3).
func PromoteGreedy(prog *Program) {
	lastFieldIdx := -1

	promoteLast := func() {
		if lastFieldIdx < 0 {
			return
		}
		op := prog.Ops[lastFieldIdx].Opcode()
		if g, ok := symtab.Greedy(op); ok {
			prog.Ops[lastFieldIdx] = Op(g)
		}
		lastFieldIdx = -1
	}

	for i, op := range prog.Ops {
		if op.IsDelimiter() {
			promoteLast()
			continue
		}
		if op.Opcode() == symtab.OpAMPM {
			// AM/PM is itself a field op, but it closes out whatever hour
			// op came before it before taking its own slot.
			promoteLast()
			lastFieldIdx = i
			continue
		}
		lastFieldIdx = i
	}
	promoteLast() // trailing boundary after the final token
}
