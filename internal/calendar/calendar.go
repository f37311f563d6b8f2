package calendar

import (
	"errors"
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
)

// ErrDayNotFound is returned when a calendar holds no data for a day
var ErrDayNotFound = errors.New("day not found in calendar")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	}
	return "unknown"
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         dateutil.Date
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	Note         string
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// add appends day and updates the month aggregates
func (m *MonthInfo) add(day DayInfo) {
	m.Days = append(m.Days, day)
	m.WorkingHours += day.WorkingHours

	switch {
	case day.IsWorkday:
		m.WorkDays++
	case day.Type == DayTypeWeekend:
		m.Weekends++
	case day.Type == DayTypeHoliday:
		m.Holidays++
	}
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date dateutil.Date) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date dateutil.Date) (*DayInfo, error)
}

// WorkdaysInRange counts working days and hours in the inclusive range
// [start, end] using cal. A reversed range counts nothing.
func WorkdaysInRange(cal Calendar, start, end dateutil.Date) (days, hours int, err error) {
	if sc, ok := cal.(*SwissCalendar); ok {
		days = sc.WorkdaysInRange(start, end)
		return days, days * sc.hoursPerDay, nil
	}

	for d := start; !d.After(end); d = d.AddDays(1) {
		info, err := cal.GetDayInfo(d)
		if err != nil {
			return 0, 0, err
		}
		if info.IsWorkday {
			days++
			hours += info.WorkingHours
		}
	}
	return days, hours, nil
}

// AddWorkdays returns the date n working days after date using cal, or
// before it when n is negative. date itself is never counted.
func AddWorkdays(cal Calendar, date dateutil.Date, n int) (dateutil.Date, error) {
	if sc, ok := cal.(*SwissCalendar); ok {
		return sc.AddWorkdays(date, n), nil
	}

	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		date = date.AddDays(step)
		isWorkday, _, err := cal.IsWorkday(date)
		if err != nil {
			return dateutil.Date{}, err
		}
		if isWorkday {
			n--
		}
	}
	return date, nil
}
