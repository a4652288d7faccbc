package calendar

import "time"

// Holiday is a fixed-date holiday that repeats every year.
type Holiday struct {
	Month time.Month
	Day   int
	Name  string
}

// DefaultHolidays are the fixed-date holidays observed by the default calendar.
var DefaultHolidays = []Holiday{
	{Month: time.January, Day: 1, Name: "New Year's Day"},
	{Month: time.July, Day: 4, Name: "Independence Day"},
	{Month: time.December, Day: 25, Name: "Christmas Day"},
}

// Calendar decides which days are business days and rolls payment due dates
// that fall on weekends or holidays forward.
type Calendar struct {
	holidays map[string]string // "01-02" → name
}

// New builds a calendar observing the given holidays on top of weekends.
func New(holidays []Holiday) *Calendar {
	c := &Calendar{holidays: make(map[string]string, len(holidays))}
	for _, h := range holidays {
		c.holidays[key(h.Month, h.Day)] = h.Name
	}
	return c
}

// Default returns a calendar using DefaultHolidays.
func Default() *Calendar {
	return New(DefaultHolidays)
}

func key(m time.Month, d int) string {
	return time.Date(2000, m, d, 0, 0, 0, 0, time.UTC).Format("01-02")
}

// IsBusinessDay returns false for Saturdays, Sundays and holidays.
// A nil calendar treats every weekday as a business day.
func (c *Calendar) IsBusinessDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	if c == nil {
		return true
	}
	_, holiday := c.holidays[d.Format("01-02")]
	return !holiday
}

// HolidayName returns the holiday observed on d, if any.
func (c *Calendar) HolidayName(d time.Time) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.holidays[d.Format("01-02")]
	return name, ok
}

// NextBusinessDay returns d itself when it is a business day, otherwise the
// first business day after it. The result is truncated to the date.
func (c *Calendar) NextBusinessDay(d time.Time) time.Time {
	d = TruncateToDate(d)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AddMonths moves t forward by n calendar months, clamping the day to the end
// of the target month (Jan 31 + 1 month = Feb 28/29) instead of overflowing
// the way time.AddDate does.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// TruncateToDate drops the clock part of t.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
