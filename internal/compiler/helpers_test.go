package compiler

import "github.com/datefmtc/datefmtc/internal/calendar"

func calendarHourOf(instant int64) int { return calendar.Decompose(instant).Hour }
func calendarYearOf(instant int64) int { return calendar.Decompose(instant).Year }
