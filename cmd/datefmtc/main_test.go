package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRunFormatAndRunParseRoundTrip(t *testing.T) {
	out := captureStdout(t, func() {
		if err := runFormat([]string{"-pattern", "yyyy-MM-dd", "-instant", "1490630645000"}); err != nil {
			t.Fatal(err)
		}
	})
	text := strings.TrimSpace(out)
	if text != "2017-03-27" {
		t.Fatalf("runFormat output = %q, want 2017-03-27", text)
	}

	out = captureStdout(t, func() {
		if err := runParse([]string{"-pattern", "yyyy-MM-dd", text}); err != nil {
			t.Fatal(err)
		}
	})
	if strings.TrimSpace(out) != "1490572800000" {
		t.Fatalf("runParse output = %q, want 1490572800000", out)
	}
}

func TestRunTranslate(t *testing.T) {
	out := captureStdout(t, func() {
		if err := runTranslate([]string{"%Y-%m-%d"}); err != nil {
			t.Fatal(err)
		}
	})
	if strings.TrimSpace(out) != "yyyy-MM-dd" {
		t.Fatalf("runTranslate output = %q, want yyyy-MM-dd", out)
	}
}

func TestRunDumpOpsProducesOpLines(t *testing.T) {
	out := captureStdout(t, func() {
		if err := runDumpOps([]string{"-pattern", "yyyy-MM-dd"}); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "OP") {
		t.Fatalf("runDumpOps output missing op lines: %q", out)
	}
}
