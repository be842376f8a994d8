package interp

import (
	"testing"

	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/compiler"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/oplist"
	"github.com/datefmtc/datefmtc/internal/sink"
)

func TestGenericMatchesSpecializedFormat(t *testing.T) {
	patterns := []string{
		"yyyy-MM-dd HH:mm:ss.SSS",
		"EEEE, MMMM d, yyyy h:mm a",
		"yyyy-MM-dd HH:mm:ssxxx",
		"d/M/yy",
	}
	instant := int64(1490630645123)
	for _, p := range patterns {
		prog := oplist.Compile(p, 0, len(p))
		c := compiler.Compile(p, 0, len(p))

		genericOut := sink.NewBuilder()
		Exec{}.Format(prog, instant, locale.Default(), "UTC", genericOut)

		specializedOut := sink.NewBuilder()
		c.Format(instant, locale.Default(), "UTC", specializedOut)

		if genericOut.String() != specializedOut.String() {
			t.Errorf("pattern %q: generic=%q specialized=%q", p, genericOut.String(), specializedOut.String())
		}
	}
}

func TestGenericMatchesSpecializedParse(t *testing.T) {
	pattern := "yyyy-MM-dd HH:mm:ss"
	text := "2017-03-27 15:04:05"
	prog := oplist.Compile(pattern, 0, len(pattern))
	c := compiler.Compile(pattern, 0, len(pattern))

	genericInstant, err := Exec{}.Parse(prog, text, 0, len(text), locale.Default())
	if err != nil {
		t.Fatal(err)
	}
	specializedInstant, err := c.Parse(text, 0, len(text), locale.Default())
	if err != nil {
		t.Fatal(err)
	}
	if genericInstant != specializedInstant {
		t.Errorf("generic=%d specialized=%d", genericInstant, specializedInstant)
	}
}

func TestGenericGreedyYearTwoDigitPivot(t *testing.T) {
	pattern := "d/M/y"
	prog := oplist.Compile(pattern, 0, len(pattern))
	text := "7/4/21"
	instant, err := Exec{}.Parse(prog, text, 0, len(text), locale.Default())
	if err != nil {
		t.Fatal(err)
	}
	f := calendar.Decompose(instant)
	if f.Year != 2021 || f.Month != 4 || f.Day != 7 {
		t.Fatalf("parse(%q) = %+v, want 2021-04-07", text, f)
	}

	out := sink.NewBuilder()
	Exec{}.Format(prog, instant, locale.Default(), "UTC", out)
	if got := out.String(); got != text {
		t.Errorf("Format(2021-04-07) = %q, want %q", got, text)
	}
}

func TestGenericEmptyPatternDefaultsToEpoch(t *testing.T) {
	prog := oplist.Compile("", 0, 0)
	instant, err := Exec{}.Parse(prog, "", 0, 0, locale.Default())
	if err != nil {
		t.Fatal(err)
	}
	if instant != 0 {
		t.Errorf("parse(\"\") = %d, want 0 (1970-01-01T00:00:00Z)", instant)
	}
}

func TestGenericTimezoneOpsAllWriteZoneLabelVerbatim(t *testing.T) {
	patterns := []string{"z", "zz", "zzz", "Z", "x", "xx", "xxx"}
	for _, p := range patterns {
		prog := oplist.Compile(p, 0, len(p))
		out := sink.NewBuilder()
		Exec{}.Format(prog, 0, locale.Default(), "+05:30", out)
		if got := out.String(); got != "+05:30" {
			t.Errorf("pattern %q: Format zoneLabel=%q, want %q", p, got, "+05:30")
		}
	}
}

func TestGenericRejectsBadDigit(t *testing.T) {
	pattern := "yyyy-MM-dd"
	prog := oplist.Compile(pattern, 0, len(pattern))
	if _, err := (Exec{}).Parse(prog, "20xx-03-27", 0, 10, nil); err == nil {
		t.Fatal("expected error on non-digit year")
	}
}
