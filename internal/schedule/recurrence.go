package schedule

import (
	"strings"
	"time"
)

// Pattern is the closed set of recurrence patterns a submission may carry.
type Pattern string

const (
	PatternNone    Pattern = "none"
	PatternDaily   Pattern = "daily"
	PatternWeekly  Pattern = "weekly"
	PatternMonthly Pattern = "monthly"
)

// maxSpanDays bounds the booking horizon: end_date <= today + 90 days.
const maxSpanDays = 90

// ParsePattern normalizes a raw pattern string; empty means PatternNone.
func ParsePattern(raw string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return PatternNone, nil
	case "daily":
		return PatternDaily, nil
	case "weekly":
		return PatternWeekly, nil
	case "monthly":
		return PatternMonthly, nil
	}
	return "", validationErr("unknown recurrence pattern %q", raw)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWeekdays resolves raw weekday names into a deduplicated set.
func ParseWeekdays(raw []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(raw))
	out := make([]time.Weekday, 0, len(raw))
	for _, name := range raw {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, validationErr("unknown weekday %q", name)
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	return out, nil
}

// normalizeDate strips the time-of-day component, keeping the calendar day
// in UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandDates turns a date range and a recurrence pattern into the ordered
// set of concrete dates to book. Pure: identical inputs yield the identical
// sequence.
func ExpandDates(start, end time.Time, pattern Pattern, weekdays []time.Weekday, today time.Time) ([]time.Time, error) {
	start = normalizeDate(start)
	end = normalizeDate(end)
	today = normalizeDate(today)

	if start.Before(today) {
		return nil, validationErr("start date %s is in the past", start.Format(dateLayout))
	}
	if end.Before(start) {
		return nil, validationErr("end date %s precedes start date", end.Format(dateLayout))
	}
	if end.After(today.AddDate(0, 0, maxSpanDays)) {
		return nil, validationErr("end date %s is beyond the %d-day booking horizon", end.Format(dateLayout), maxSpanDays)
	}

	switch pattern {
	case PatternNone:
		return []time.Time{start}, nil
	case PatternDaily:
		var dates []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
		return dates, nil
	case PatternWeekly:
		if len(weekdays) == 0 {
			return nil, validationErr("weekly recurrence requires a non-empty weekday set")
		}
		wanted := make(map[time.Weekday]bool, len(weekdays))
		for _, wd := range weekdays {
			wanted[wd] = true
		}
		var dates []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if wanted[d.Weekday()] {
				dates = append(dates, d)
			}
		}
		return dates, nil
	case PatternMonthly:
		dom := start.Day()
		var dates []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if d.Day() == dom {
				dates = append(dates, d)
			}
		}
		return dates, nil
	}
	return nil, validationErr("unknown recurrence pattern %q", pattern)
}
