package dateutil

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  Date
	}{
		{"plain date", 2024, time.March, 31, Date{2024, time.March, 31}},
		{"day overflow", 2024, time.February, 30, Date{2024, time.March, 1}},
		{"day zero is last of previous month", 2024, time.March, 0, Date{2024, time.February, 29}},
		{"month overflow", 2024, 13, 1, Date{2025, time.January, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.year, tt.month, tt.day)
			if got != tt.want {
				t.Errorf("New(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Date
		want      Date
		wantValid bool
	}{
		{"valid date kept", Date{2024, time.August, 1}, Date{2024, time.August, 1}, true},
		{"leap day", Date{2024, time.February, 29}, Date{2024, time.February, 29}, true},
		{"no leap day in 1900", Date{1900, time.February, 29}, Date{1900, time.March, 1}, false},
		{"day overflow", Date{2024, time.January, 33}, Date{2024, time.February, 2}, false},
		{"month overflow", Date{2024, 13, 1}, Date{2025, time.January, 1}, false},
		{"day zero", Date{2024, time.March, 0}, Date{2024, time.February, 29}, false},
		{"huge year untouched", Date{math.MaxInt, time.December, 31}, Date{math.MaxInt, time.December, 31}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Valid(); got != tt.wantValid {
				t.Errorf("%v.Valid() = %v, want %v", tt.in, got, tt.wantValid)
			}
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	zurich := time.FixedZone("CET", 3600)
	late := time.Date(2024, 12, 31, 23, 59, 59, 999999999, zurich)
	early := time.Date(2024, 12, 31, 0, 0, 0, 0, zurich)

	if FromTime(late) != FromTime(early) {
		t.Errorf("FromTime(%v) = %v, want %v", late, FromTime(late), FromTime(early))
	}
	if got := FromTime(late); got != (Date{2024, time.December, 31}) {
		t.Errorf("FromTime(%v) = %v, want 2024-12-31", late, got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"Good Friday 2024", Date{2024, time.March, 31}, -2, Date{2024, time.March, 29}},
		{"Easter Monday 2024", Date{2024, time.March, 31}, 1, Date{2024, time.April, 1}},
		{"Ascension 2024", Date{2024, time.March, 31}, 39, Date{2024, time.May, 9}},
		{"Whit Monday 2024", Date{2024, time.March, 31}, 50, Date{2024, time.May, 20}},
		{"across year end", Date{2024, time.December, 31}, 1, Date{2025, time.January, 1}},
		{"zero", Date{2024, time.June, 1}, 0, Date{2024, time.June, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AddDays(tt.n)
			if got != tt.want {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddDaysDoesNotMutate(t *testing.T) {
	d := Date{2024, time.March, 31}
	_ = d.AddDays(10)
	if d != (Date{2024, time.March, 31}) {
		t.Errorf("AddDays mutated receiver: %v", d)
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date Date
		want time.Weekday
	}{
		{Date{2024, time.September, 15}, time.Sunday},
		{Date{2025, time.January, 13}, time.Monday},
		{Date{2025, time.January, 15}, time.Wednesday},
		{Date{2000, time.January, 1}, time.Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := tt.date.Weekday(); got != tt.want {
				t.Errorf("%v.Weekday() = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := Date{2024, time.December, 25}
	b := Date{2025, time.January, 1}

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare ordering broken for %v and %v", a, b)
	}
	if !a.Before(b) || a.After(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !a.Between(a, b) || !b.Between(a, b) {
		t.Error("Between must be inclusive on both ends")
	}
	if (Date{2025, time.January, 2}).Between(a, b) {
		t.Error("Between matched a date after the interval")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    Date
		expected Date
	}{
		{
			name:     "Wednesday returns Monday",
			input:    Date{2025, time.January, 15},
			expected: Date{2025, time.January, 13},
		},
		{
			name:     "Monday returns same Monday",
			input:    Date{2025, time.January, 13},
			expected: Date{2025, time.January, 13},
		},
		{
			name:     "Sunday returns previous Monday",
			input:    Date{2025, time.January, 19},
			expected: Date{2025, time.January, 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)
			if result != tt.expected {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if end := EndOfWeek(tt.input); end != tt.expected.AddDays(6) {
				t.Errorf("EndOfWeek(%v) = %v, want %v", tt.input, end, tt.expected.AddDays(6))
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	tests := []struct {
		name string
		from Date
		want Date
	}{
		{"already Sunday", Date{2024, time.September, 15}, Date{2024, time.September, 15}},
		{"Monday to Sunday", Date{2025, time.September, 15}, Date{2025, time.September, 21}},
		{"Friday to Sunday", Date{2023, time.September, 15}, Date{2023, time.September, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextWeekday(tt.from, time.Sunday); got != tt.want {
				t.Errorf("NextWeekday(%v, Sunday) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	d := Date{2024, time.February, 10}
	if got := StartOfMonth(d); got != (Date{2024, time.February, 1}) {
		t.Errorf("StartOfMonth(%v) = %v", d, got)
	}
	if got := EndOfMonth(d); got != (Date{2024, time.February, 29}) {
		t.Errorf("EndOfMonth(%v) = %v", d, got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Errorf("DaysInMonth(2023, Feb) = %d, want 28", got)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  bool
	}{
		{"Saturday is weekend", Date{2025, time.January, 18}, true},
		{"Sunday is weekend", Date{2025, time.January, 19}, true},
		{"Monday is not weekend", Date{2025, time.January, 13}, false},
		{"Friday is not weekend", Date{2025, time.January, 17}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsWeekend(tt.input); result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsSameDay(tt.date1, tt.date2); result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v", tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2025-01-15", Date{2025, time.January, 15}, false},
		{"Swiss format DD.MM.YYYY", "15.01.2025", Date{2025, time.January, 15}, false},
		{"ISO with time", "2025-01-15T10:30:00", Date{2025, time.January, 15}, false},
		{"RFC3339 with offset", "2025-01-15T23:30:00+01:00", Date{2025, time.January, 15}, false},
		{"garbage", "15/01/2025", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && result != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-09")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if got != (Date{2024, time.September, 1}) {
		t.Errorf("ParseMonth(2024-09) = %v", got)
	}

	if _, err := ParseMonth("2024-13"); err == nil {
		t.Error("ParseMonth(2024-13) expected error, got nil")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: Date{2024, time.August, 1}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"date":"2024-08-01"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":"2024-12-25"}`), &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if w.Date != (Date{2024, time.December, 25}) {
		t.Errorf("Unmarshal() = %v", w.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":"25.12.2024"}`), &w); err == nil {
		t.Error("Unmarshal() expected error for non-ISO date")
	}
}
