package lexer

import (
	"testing"

	"github.com/datefmtc/datefmtc/internal/symtab"
)

func tokenTexts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}

func TestTokenizeLongestMatch(t *testing.T) {
	toks := Tokenize("yyyy-MM-ddTHH:mm:ss.SSSz", 0, len("yyyy-MM-ddTHH:mm:ss.SSSz"))
	want := []string{"yyyy", "-", "MM", "-", "dd", "T", "HH", ":", "mm", ":", "ss", ".", "SSS", "z"}
	got := tokenTexts(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeGroupsLiteralRun(t *testing.T) {
	toks := Tokenize("y///d", 0, len("y///d"))
	if len(toks) != 3 {
		t.Fatalf("token count = %d, want 3 (%v)", len(toks), tokenTexts(toks))
	}
	if toks[1].Kind != Literal || toks[1].Text != "///" {
		t.Errorf("middle token = %+v, want a single literal run \"///\"", toks[1])
	}
}

func TestTokenizeResolvesOpcode(t *testing.T) {
	toks := Tokenize("yyyy", 0, 4)
	if len(toks) != 1 || toks[0].Op != symtab.OpYear4 {
		t.Fatalf("got %+v, want a single OpYear4 token", toks)
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	// Garbage/unicode-ish input should still tokenize: every byte belongs to
	// a literal run when it matches no symbol.
	toks := Tokenize("@@@", 0, 3)
	if len(toks) != 1 || toks[0].Kind != Literal || toks[0].Text != "@@@" {
		t.Fatalf("got %+v, want a single literal token", toks)
	}
}

func TestTokenizeEmptyPattern(t *testing.T) {
	toks := Tokenize("", 0, 0)
	if len(toks) != 0 {
		t.Fatalf("got %+v, want no tokens", toks)
	}
}
