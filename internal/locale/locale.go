// Package locale is the name-table collaborator spec.md §1 treats as a
// fixed external dependency: rendering and matching month, weekday, era,
// AM/PM and timezone names. Matching is longest-match-first over a small
// static table; this module ships one built-in English locale and a
// pluggable lookup by name.
package locale

import "strings"

// Locale holds every name table a compiled format's parse/format routines
// may consult, indexed the way the civil calendar indexes its own fields:
// months and weekdays are 1-based to match calendar.Fields.Month and
// calendar.DayOfWeek's 1=Monday..7=Sunday numbering.
type Locale struct {
	Name string

	Eras [2]string // [0]=BC, [1]=AD

	MonthsShort [13]string // index 0 unused
	MonthsLong  [13]string

	WeekdaysShort [8]string // index 0 unused, 1=Monday..7=Sunday
	WeekdaysLong  [8]string

	AMPM [2]string // [0]=AM, [1]=PM

	Zones []ZoneEntry
}

// ZoneEntry is one timezone name this locale can format or match, with its
// fixed UTC offset in milliseconds (spec.md's Non-goals explicitly exclude
// full timezone-database management, so DST transitions are out of scope;
// each entry is a single fixed-offset label).
type ZoneEntry struct {
	Name         string
	OffsetMillis int64
}

// English is the module's built-in default locale.
var English = &Locale{
	Name: "en",
	Eras: [2]string{"BC", "AD"},
	MonthsShort: [13]string{"",
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	MonthsLong: [13]string{"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	WeekdaysShort: [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	WeekdaysLong:  [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	AMPM:          [2]string{"AM", "PM"},
	Zones: []ZoneEntry{
		{"UTC", 0},
		{"GMT", 0},
		{"EST", -5 * 3600 * 1000},
		{"EDT", -4 * 3600 * 1000},
		{"CST", -6 * 3600 * 1000},
		{"CDT", -5 * 3600 * 1000},
		{"MST", -7 * 3600 * 1000},
		{"MDT", -6 * 3600 * 1000},
		{"PST", -8 * 3600 * 1000},
		{"PDT", -7 * 3600 * 1000},
	},
}

// Default returns the built-in English locale, used whenever a caller
// passes a nil *Locale to Parse or Format.
func Default() *Locale { return English }

// --- formatting ---

func (l *Locale) FormatEraByYear(year int) string {
	if year <= 0 {
		return l.Eras[0]
	}
	return l.Eras[1]
}

func (l *Locale) FormatMonthShort(month int) string { return l.MonthsShort[month] }
func (l *Locale) FormatMonthLong(month int) string  { return l.MonthsLong[month] }
func (l *Locale) FormatWeekdayShort(dow int) string { return l.WeekdaysShort[dow] }
func (l *Locale) FormatWeekdayLong(dow int) string  { return l.WeekdaysLong[dow] }

// FormatAMPM renders "AM" for hours 0-11 and "PM" for hours 12-23.
func (l *Locale) FormatAMPM(hour24 int) string {
	if hour24 >= 12 {
		return l.AMPM[1]
	}
	return l.AMPM[0]
}

// --- matching ---

// matchPrefix returns the length of the longest s[i] that is a case
// sensitive prefix of text[pos:], or -1 if none matches.
func matchPrefix(text string, pos int, candidates []string) (index int, length int) {
	bestIdx, bestLen := -1, -1
	for i, c := range candidates {
		if c == "" {
			continue
		}
		if strings.HasPrefix(text[pos:], c) && len(c) > bestLen {
			bestIdx, bestLen = i, len(c)
		}
	}
	return bestIdx, bestLen
}

// MatchEra returns true for "AD" (or false for "BC") and the matched
// length, or ok=false if neither era name matches at pos.
func (l *Locale) MatchEra(text string, pos int) (isAD bool, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.Eras[:])
	if idx < 0 {
		return false, 0, false
	}
	return idx == 1, n, true
}

// MatchMonthShort/MatchMonthLong return a 1-12 month index.
func (l *Locale) MatchMonthShort(text string, pos int) (month, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.MonthsShort[:])
	return idx, n, idx >= 0
}

func (l *Locale) MatchMonthLong(text string, pos int) (month, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.MonthsLong[:])
	return idx, n, idx >= 0
}

func (l *Locale) MatchWeekdayShort(text string, pos int) (dow, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.WeekdaysShort[:])
	return idx, n, idx >= 0
}

func (l *Locale) MatchWeekdayLong(text string, pos int) (dow, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.WeekdaysLong[:])
	return idx, n, idx >= 0
}

// MatchAMPM returns true for "PM" and the matched length.
func (l *Locale) MatchAMPM(text string, pos int) (isPM bool, length int, ok bool) {
	idx, n := matchPrefix(text, pos, l.AMPM[:])
	if idx < 0 {
		return false, 0, false
	}
	return idx == 1, n, true
}

// MatchZone returns the matched zone's fixed UTC offset in milliseconds,
// the table index, and the matched length.
func (l *Locale) MatchZone(text string, pos int) (zoneIndex int, offsetMillis int64, length int, ok bool) {
	bestIdx, bestLen := -1, -1
	for i, z := range l.Zones {
		if strings.HasPrefix(text[pos:], z.Name) && len(z.Name) > bestLen {
			bestIdx, bestLen = i, len(z.Name)
		}
	}
	if bestIdx < 0 {
		return -1, 0, 0, false
	}
	return bestIdx, l.Zones[bestIdx].OffsetMillis, bestLen, true
}

// ZoneLabel returns the display name for a previously matched zone index.
func (l *Locale) ZoneLabel(zoneIndex int) string {
	if zoneIndex < 0 || zoneIndex >= len(l.Zones) {
		return ""
	}
	return l.Zones[zoneIndex].Name
}
