package dateutil

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

// Date is a calendar day without time of day or location.
// The zero value is not a valid date. Literals with out-of-range fields are
// allowed; Normalize rolls them over like New.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized Date for year, month and day.
// Out-of-range values roll over the same way time.Date does.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// Normalize returns d rolled over into a valid date. Valid dates are returned
// unchanged without any time arithmetic, so they work for every year.
func (d Date) Normalize() Date {
	if d.Valid() {
		return d
	}
	return New(d.Year, d.Month, d.Day)
}

// Valid reports whether d names an existing day of the proleptic Gregorian calendar
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	days := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}[d.Month-1]
	if d.Month == time.February && isLeap(d.Year) {
		days = 29
	}
	return d.Day <= days
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FromTime returns the calendar day of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// noon in UTC is safe from DST gaps when doing day arithmetic
func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.noon().AddDate(0, 0, n))
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Between reports whether d lies in the inclusive interval [start, end]
func (d Date) Between(start, end Date) bool {
	return d.Compare(start) >= 0 && d.Compare(end) <= 0
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText encodes the date as YYYY-MM-DD
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date
func (d *Date) UnmarshalText(data []byte) error {
	t, err := time.Parse(isoLayout, string(data))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", string(data), err)
	}
	*d = FromTime(t)
	return nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth returns the first day of the month containing d
func StartOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of the month containing d
func EndOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysInMonth(d.Year, d.Month)}
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week containing d
func StartOfWeek(d Date) Date {
	// Monday = 0 ... Sunday = 6
	return d.AddDays(-((int(d.Weekday()) + 6) % 7))
}

// EndOfWeek returns the Sunday of the week containing d
func EndOfWeek(d Date) Date {
	return StartOfWeek(d).AddDays(6)
}

// NextWeekday returns the first date on or after d that falls on wd
func NextWeekday(d Date, wd time.Weekday) Date {
	return d.AddDays((int(wd) - int(d.Weekday()) + 7) % 7)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(d Date) bool {
	weekday := d.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return FromTime(date1) == FromTime(date2)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		isoLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD or DD.MM.YYYY)", dateStr)
}

// ParseMonth parses a YYYY-MM string and returns the first day of that month
func ParseMonth(monthStr string) (Date, error) {
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return Date{}, fmt.Errorf("unrecognized month %q (want YYYY-MM): %w", monthStr, err)
	}
	return FromTime(t), nil
}

// Today returns today's date in loc
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}
