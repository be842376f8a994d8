// Package calendar is the civil-calendar arithmetic collaborator spec.md §1
// treats as a fixed external dependency: decomposing a UTC millisecond
// instant into year/month/day/hour/minute/second/millis, testing leap
// years, computing day-of-week, and recombining fields back into an
// instant. The compiler and interpreter packages call this contract
// exactly once per field they need; they never duplicate this arithmetic.
package calendar

import "github.com/datefmtc/datefmtc/internal/dterrors"

const millisPerSecond = 1000
const millisPerMinute = 60 * millisPerSecond
const millisPerHour = 60 * millisPerMinute
const millisPerDay = 24 * millisPerHour

// Fields is the fully decomposed civil representation of an instant, plus
// the timezone/offset bookkeeping the parse routine threads through
// compute. Year is astronomical (signed, year 0 = 1 BC): the parse routine
// is responsible for folding an 'G' era match into Year's sign before
// calling Compute, since era/BC-AD conversion is a presentation concern of
// the locale table, not of the calendar's own arithmetic contract.
type Fields struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23; Compute reconciles a 12-hour value using its hourType argument
	Minute int
	Second int
	Millis int

	Timezone int   // locale timezone-table index, or -1 if unset
	Offset   int64 // explicit UTC offset in millis, or SentinelOffset if unset
}

// HourType records how a parsed hour value should be reconciled into 24h.
type HourType int

const (
	HourType24 HourType = iota
	HourTypeAM
	HourTypePM
)

// SentinelOffset marks "no explicit numeric offset was parsed".
const SentinelOffset = int64(-1) << 62

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in (year, month), 1-12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// daysFromCivil converts a proleptic-Gregorian (year, month, day) triple
// into a day count relative to 1970-01-01, using Howard Hinnant's
// days_from_civil algorithm (correct for the entire proleptic Gregorian
// range, including years before 1 AD).
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	var mp int64
	if int64(month) > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097            // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// Decompose splits a UTC millisecond instant into civil fields. Hour,
// minute, second, millis and day-of-week depend only on the instant;
// year/month/day come from the proleptic Gregorian day count.
func Decompose(instant int64) Fields {
	days, msOfDay := floorDivMod(instant, millisPerDay)
	year, month, day := civilFromDays(days)
	hour, msOfHour := floorDivMod(msOfDay, millisPerHour)
	minute, msOfMinute := floorDivMod(msOfHour, millisPerMinute)
	second, millis := floorDivMod(msOfMinute, millisPerSecond)

	f := Fields{Year: year, Month: month, Day: day, Hour: int(hour), Minute: int(minute), Second: int(second), Millis: int(millis)}
	f.Timezone = -1
	f.Offset = SentinelOffset
	return f
}

// DayOfWeek returns 1=Monday .. 7=Sunday for the given instant, following
// ISO-8601 numbering (matches the 'u' pattern symbol's contract).
func DayOfWeek(instant int64) int {
	days, _ := floorDivMod(instant, millisPerDay)
	// 1970-01-01 was a Thursday (ISO day 4).
	dow := (days+3)%7 + 1
	if dow <= 0 {
		dow += 7
	}
	return int(dow)
}

// Compute reassembles Fields into a UTC millisecond instant, reconciling
// hourType into 24-hour form first, validating the day-of-month against
// the resolved (year, month) and rejecting combinations like Feb 30.
func Compute(f Fields, hourType HourType, pos int) (int64, error) {
	hour := f.Hour
	switch hourType {
	case HourTypeAM:
		if hour == 12 {
			hour = 0
		}
	case HourTypePM:
		if hour != 12 {
			hour += 12
		}
	}

	year := f.Year

	if f.Month < 1 || f.Month > 12 {
		return 0, &dterrors.CalendarOutOfRangeError{Pos: pos, Reason: "month out of range"}
	}
	if f.Day < 1 || f.Day > DaysInMonth(year, f.Month) {
		return 0, &dterrors.CalendarOutOfRangeError{Pos: pos, Reason: "day out of range for year/month"}
	}
	if hour < 0 || hour > 23 || f.Minute < 0 || f.Minute > 59 || f.Second < 0 || f.Second > 60 || f.Millis < 0 || f.Millis > 999 {
		return 0, &dterrors.CalendarOutOfRangeError{Pos: pos, Reason: "time-of-day component out of range"}
	}

	days := daysFromCivil(year, f.Month, f.Day)
	instant := days*millisPerDay +
		int64(hour)*millisPerHour +
		int64(f.Minute)*millisPerMinute +
		int64(f.Second)*millisPerSecond +
		int64(f.Millis)

	if f.Offset != SentinelOffset {
		instant -= f.Offset
	}
	return instant, nil
}

// floorDivMod returns floor(a/b) and the matching non-negative remainder,
// which plain Go division/modulo does not give for negative a.
func floorDivMod(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
