package compiler

import (
	"testing"

	"github.com/datefmtc/datefmtc/internal/calendar"
	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/internal/sink"
)

func formatToString(c *CompiledFormat, instant int64) string {
	b := sink.NewBuilder()
	c.Format(instant, locale.Default(), "UTC", b)
	return b.String()
}

func TestFormatBasicPattern(t *testing.T) {
	c := Compile("yyyy-MM-dd HH:mm:ss.SSS", 0, len("yyyy-MM-dd HH:mm:ss.SSS"))
	got := formatToString(c, 1490627045123)
	want := "2017-03-27 15:04:05.123"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestParseBasicPattern(t *testing.T) {
	pattern := "yyyy-MM-dd HH:mm:ss.SSS"
	c := Compile(pattern, 0, len(pattern))
	text := "2017-03-27 15:04:05.123"
	got, err := c.Parse(text, 0, len(text), nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != 1490627045123 {
		t.Fatalf("Parse = %d, want 1490627045123", got)
	}
}

func TestRoundTripManyPatterns(t *testing.T) {
	// Timezone ops format the zone label verbatim, so each offset pattern is
	// given a label its own parse side accepts.
	cases := []struct{ pattern, zone string }{
		{"yyyy-MM-dd HH:mm:ss.SSSZ", "+0000"},
		{"d/M/y", "UTC"},
		{"MMM d, yyyy", "UTC"},
		{"EEEE, MMMM d, yyyy h:mm a", "UTC"},
		{"yyyy-MM-dd HH:mm:ssxxx", "+00:00"},
	}
	// Midnight UTC, so patterns without time-of-day fields lose nothing.
	instant := int64(1490572800000)
	for _, tc := range cases {
		p := tc.pattern
		c := Compile(p, 0, len(p))
		b := sink.NewBuilder()
		c.Format(instant, locale.Default(), tc.zone, b)
		text := b.String()
		got, err := c.Parse(text, 0, len(text), nil)
		if err != nil {
			t.Errorf("pattern %q: parse(%q) error: %v", p, text, err)
			continue
		}
		if got != instant {
			t.Errorf("pattern %q: round trip %d -> %q -> %d", p, instant, text, got)
		}
	}
}

func TestAMPMMidnightBoundary(t *testing.T) {
	pattern := "h:mm a"
	c := Compile(pattern, 0, len(pattern))
	got, err := c.Parse("12:00 AM", 0, len("12:00 AM"), nil)
	if err != nil {
		t.Fatal(err)
	}
	f := calendarHourOf(got)
	if f != 0 {
		t.Errorf("12:00 AM -> hour %d, want 0", f)
	}
}

func TestHourOneBasedTwentyFourWraps(t *testing.T) {
	pattern := "kk:mm"
	c := Compile(pattern, 0, len(pattern))
	got, err := c.Parse("24:00", 0, len("24:00"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if calendarHourOf(got) != 23 {
		t.Errorf("kk=24 -> hour %d, want 23", calendarHourOf(got))
	}
}

func TestTwoDigitYearPivot(t *testing.T) {
	pattern := "d/M/yy"
	c := Compile(pattern, 0, len(pattern))
	got, err := c.Parse("27/3/17", 0, len("27/3/17"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if calendarYearOf(got) != 2017 {
		t.Errorf("yy=17 -> year %d, want 2017", calendarYearOf(got))
	}
}

func TestDelimiterMismatchError(t *testing.T) {
	pattern := "yyyy-MM-dd"
	c := Compile(pattern, 0, len(pattern))
	text := "2017/03/27"
	if _, err := c.Parse(text, 0, len(text), nil); err == nil {
		t.Fatal("expected delimiter mismatch error")
	}
}

func TestTrailingGarbageError(t *testing.T) {
	pattern := "yyyy"
	c := Compile(pattern, 0, len(pattern))
	text := "2017extra"
	if _, err := c.Parse(text, 0, len(text), nil); err == nil {
		t.Fatal("expected trailing garbage error")
	}
}

func TestGreedyYearTwoDigitPivot(t *testing.T) {
	pattern := "d/M/y"
	c := Compile(pattern, 0, len(pattern))
	text := "7/4/21"
	instant, err := c.Parse(text, 0, len(text), nil)
	if err != nil {
		t.Fatal(err)
	}
	f := calendar.Decompose(instant)
	if f.Year != 2021 || f.Month != 4 || f.Day != 7 {
		t.Fatalf("parse(%q) = %+v, want 2021-04-07", text, f)
	}
	if got := formatToString(c, instant); got != text {
		t.Errorf("Format(2021-04-07) = %q, want %q", got, text)
	}
}

func TestEmptyPatternDefaultsToEpoch(t *testing.T) {
	c := Compile("", 0, 0)
	instant, err := c.Parse("", 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if instant != 0 {
		t.Errorf("parse(\"\") = %d, want 0 (1970-01-01T00:00:00Z)", instant)
	}
}

func TestTimezoneOpsAllWriteZoneLabelVerbatim(t *testing.T) {
	patterns := []string{"z", "zz", "zzz", "Z", "x", "xx", "xxx"}
	for _, p := range patterns {
		c := Compile(p, 0, len(p))
		b := sink.NewBuilder()
		c.Format(0, locale.Default(), "+05:30", b)
		if got := b.String(); got != "+05:30" {
			t.Errorf("pattern %q: Format zoneLabel=%q, want %q", p, got, "+05:30")
		}
	}
}

func TestNegativeYearFourDigit(t *testing.T) {
	pattern := "yyyy-MM-dd"
	c := Compile(pattern, 0, len(pattern))
	text := "-0001-01-01"
	instant, err := c.Parse(text, 0, len(text), nil)
	if err != nil {
		t.Fatal(err)
	}
	if calendarYearOf(instant) != -1 {
		t.Fatalf("year = %d, want -1", calendarYearOf(instant))
	}
	if got := formatToString(c, instant); got != text {
		t.Errorf("Format(-1) = %q, want %q", got, text)
	}
}
