package locale

import "testing"

func TestMatchMonthLongVsShortDoNotCollide(t *testing.T) {
	idx, n, ok := English.MatchMonthLong("March 2017", 0)
	if !ok || idx != 3 || n != len("March") {
		t.Fatalf("MatchMonthLong = (%d,%d,%v), want (3,%d,true)", idx, n, ok, len("March"))
	}
}

func TestMatchWeekdayShort(t *testing.T) {
	dow, n, ok := English.MatchWeekdayShort("Mon, 27 Mar", 0)
	if !ok || dow != 1 || n != 3 {
		t.Fatalf("MatchWeekdayShort = (%d,%d,%v), want (1,3,true)", dow, n, ok)
	}
}

func TestMatchAMPM(t *testing.T) {
	isPM, n, ok := English.MatchAMPM("AM", 0)
	if !ok || isPM || n != 2 {
		t.Fatalf("MatchAMPM(AM) = (%v,%d,%v), want (false,2,true)", isPM, n, ok)
	}
}

func TestMatchZoneLongestWins(t *testing.T) {
	idx, offset, n, ok := English.MatchZone("ESTx", 0)
	if !ok || English.Zones[idx].Name != "EST" || n != 3 || offset != -5*3600*1000 {
		t.Fatalf("MatchZone = (%d,%d,%d,%v)", idx, offset, n, ok)
	}
}

func TestMatchEraAD(t *testing.T) {
	isAD, n, ok := English.MatchEra("AD", 0)
	if !ok || !isAD || n != 2 {
		t.Fatalf("MatchEra(AD) = (%v,%d,%v)", isAD, n, ok)
	}
}

func TestFormatAMPMBoundary(t *testing.T) {
	if got := English.FormatAMPM(0); got != "AM" {
		t.Errorf("FormatAMPM(0) = %q, want AM", got)
	}
	if got := English.FormatAMPM(12); got != "PM" {
		t.Errorf("FormatAMPM(12) = %q, want PM", got)
	}
}
