package dataflow

import (
	"testing"

	"github.com/datefmtc/datefmtc/internal/oplist"
)

func TestFormatAttrsMinimalForHourOnlyPattern(t *testing.T) {
	prog := oplist.Compile("HH:mm:ss", 0, len("HH:mm:ss"))
	attrs := FormatAttrs(prog.Ops)
	if !attrs.Has(AttrHour) || !attrs.Has(AttrMinute) || !attrs.Has(AttrSecond) {
		t.Fatalf("attrs = %b, want hour+minute+second set", attrs)
	}
	if attrs.Has(AttrYear) || attrs.Has(AttrMonth) || attrs.Has(AttrDay) || attrs.Has(AttrDayOfWeek) {
		t.Errorf("attrs = %b, a clock-only pattern must not need date fields", attrs)
	}
}

func TestFormatAttrsDayRequiresYearMonthLeap(t *testing.T) {
	prog := oplist.Compile("dd", 0, 2)
	attrs := FormatAttrs(prog.Ops)
	want := AttrYear | AttrLeap | AttrMonth | AttrDay
	if attrs != want {
		t.Errorf("attrs = %b, want %b", attrs, want)
	}
}

func TestFormatAttrsDayOfWeekNumericOnlyNeedsDayOfWeek(t *testing.T) {
	prog := oplist.Compile("u", 0, 1)
	attrs := FormatAttrs(prog.Ops)
	if attrs != AttrDayOfWeek {
		t.Errorf("attrs = %b, want AttrDayOfWeek only", attrs)
	}
}

func TestParseSlotsDefaultsEmptyPattern(t *testing.T) {
	prog := oplist.Compile("", 0, 0)
	slots := ParseSlots(prog.Ops)
	if slots != 0 {
		t.Errorf("slots = %b, want 0 for an empty pattern (every field defaults)", slots)
	}
}

func TestParseSlotsGreedySetsTempLongTooForEveryFamily(t *testing.T) {
	cases := []struct {
		pattern string
		field   SlotSet
	}{
		{"y-", SlotYear},
		{"M-", SlotMonth},
		{"d-", SlotDay},
		{"H-", SlotHour},
		{"m-", SlotMinute},
		{"s-", SlotSecond},
		{"S-", SlotMillis},
	}
	for _, c := range cases {
		prog := oplist.Compile(c.pattern, 0, len(c.pattern))
		slots := ParseSlots(prog.Ops)
		want := c.field | SlotTempLong
		if slots != want {
			t.Errorf("pattern %q: slots = %b, want %b", c.pattern, slots, want)
		}
	}
}

func TestParseSlotsFixedWidthWritesOnlyField(t *testing.T) {
	prog := oplist.Compile("yyyy", 0, 4)
	slots := ParseSlots(prog.Ops)
	if slots != SlotYear {
		t.Errorf("slots = %b, want SlotYear only (no temp_long for fixed-width)", slots)
	}
}

func TestParseSlotsWeekdayNameWritesNothing(t *testing.T) {
	prog := oplist.Compile("EEE", 0, 3)
	slots := ParseSlots(prog.Ops)
	if slots != 0 {
		t.Errorf("slots = %b, want 0: weekday names are informational only on parse", slots)
	}
}
