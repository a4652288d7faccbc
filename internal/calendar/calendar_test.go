package calendar

import (
	"testing"
	"time"
)

func TestIsBusinessDay(t *testing.T) {
	cal := Default()
	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"weekday", time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), true},         // Wed
		{"saturday", time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC), false},       // Sat
		{"sunday", time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), false},         // Sun
		{"christmas", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), false},     // Thu
		{"independence", time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), false},    // Fri
		{"new year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false},        // Wed
		{"day after xmas", time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), true}, // Fri
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.IsBusinessDay(tc.day); got != tc.want {
				t.Fatalf("IsBusinessDay(%s)=%v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestNilCalendar_OnlyWeekends(t *testing.T) {
	var cal *Calendar
	if !cal.IsBusinessDay(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("nil calendar should ignore holidays")
	}
	if cal.IsBusinessDay(time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("nil calendar should still skip weekends")
	}
	if _, ok := cal.HolidayName(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatalf("nil calendar has no holidays")
	}
}

func TestNextBusinessDay(t *testing.T) {
	cal := Default()
	// Sat 2025-09-13 → Mon 2025-09-15
	got := cal.NextBusinessDay(time.Date(2025, 9, 13, 15, 30, 0, 0, time.UTC))
	want := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// Thu 2025-12-25 → Fri 2025-12-26
	got = cal.NextBusinessDay(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))
	want = time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// business day stays put
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	if got := cal.NextBusinessDay(d); !got.Equal(d) {
		t.Fatalf("got %v want %v", got, d)
	}
}

func TestHolidayName(t *testing.T) {
	cal := New([]Holiday{{Month: time.May, Day: 1, Name: "Labor Day"}})
	name, ok := cal.HolidayName(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	if !ok || name != "Labor Day" {
		t.Fatalf("got %q ok=%v", name, ok)
	}
	if _, ok := cal.HolidayName(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatalf("custom calendar should not observe default holidays")
	}
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 12, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), 3, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC), 1, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := AddMonths(c.in, c.n); !got.Equal(c.want) {
			t.Fatalf("AddMonths(%s,%d)=%s want %s", c.in.Format("2006-01-02"), c.n, got.Format("2006-01-02"), c.want.Format("2006-01-02"))
		}
	}
}
