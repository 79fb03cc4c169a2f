// Package calendar holds the plain-date and ISO-8601 week arithmetic shared
// by the analytics core. Everything works on UTC midnights and is pure: the
// reference date ("today") is always passed in by the caller.
package calendar

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidMonth = errors.New("invalid month (must be 1-12)")
	ErrInvalidWeek  = errors.New("invalid iso week number")
)

// ParseDate parses a strict "YYYY-MM-DD" string into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

// FormatDate renders a time as "YYYY-MM-DD", ignoring the clock part.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Midnight truncates a time to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays moves a date by n calendar days. n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t).AddDate(0, 0, n)
}

// ISOWeek identifies a week in the ISO-8601 numbering scheme (Monday start,
// week 1 contains the first Thursday of the year). It is deliberately its own
// type: the ISO year differs from the Gregorian year around January 1st, and
// mixing the two is a classic off-by-one-week bug.
type ISOWeek struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// ISOWeekOf returns the ISO week containing the given date.
func ISOWeekOf(t time.Time) ISOWeek {
	year, week := Midnight(t).ISOWeek()
	return ISOWeek{Year: year, Week: week}
}

// NewISOWeek validates the week number against the given ISO year. Some years
// have 52 weeks, some 53.
func NewISOWeek(year, week int) (ISOWeek, error) {
	if week < 1 || week > weeksInISOYear(year) {
		return ISOWeek{}, ErrInvalidWeek
	}
	return ISOWeek{Year: year, Week: week}, nil
}

// Monday returns the canonical representative date of the week: its Monday.
// ISOWeekOf(w.Monday()) round-trips back to w for every valid week.
func (w ISOWeek) Monday() time.Time {
	// January 4th is always inside week 1 of its ISO year.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	firstMonday := AddDays(jan4, -(isoWeekday(jan4) - 1))
	return AddDays(firstMonday, (w.Week-1)*7)
}

// Next returns the week immediately after w, rolling the ISO year at the
// 52/53 boundary.
func (w ISOWeek) Next() ISOWeek {
	return ISOWeekOf(AddDays(w.Monday(), 7))
}

// Prev returns the week immediately before w, rolling back into week 52 or 53
// of the previous ISO year when w is week 1.
func (w ISOWeek) Prev() ISOWeek {
	return ISOWeekOf(AddDays(w.Monday(), -7))
}

// DateRange returns the half-open [monday, nextMonday) span of the week.
func (w ISOWeek) DateRange() (start, end time.Time) {
	start = w.Monday()
	return start, AddDays(start, 7)
}

// MonthRange returns the half-open [first, firstOfNextMonth) span of a
// calendar month.
func MonthRange(year, month int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// ISOWeeksInMonth lists every ISO week that has at least one day inside the
// month, in chronological order without duplicates. A month always touches
// four to six distinct weeks.
func ISOWeeksInMonth(year, month int) ([]ISOWeek, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	var weeks []ISOWeek
	for day := start; day.Before(end); day = AddDays(day, 1) {
		w := ISOWeekOf(day)
		if len(weeks) == 0 || weeks[len(weeks)-1] != w {
			weeks = append(weeks, w)
		}
	}
	return weeks, nil
}

// weeksInISOYear reports 52 or 53. December 28th always falls in the last
// week of its ISO year.
func weeksInISOYear(year int) int {
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := dec28.ISOWeek()
	return week
}

// isoWeekday maps time.Weekday (Sunday=0) to ISO weekday (Monday=1..Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
