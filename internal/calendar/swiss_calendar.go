package calendar

import (
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/username/swiss-holidays/internal/holidays"
	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

const defaultHoursPerDay = 8

// SwissCalendar implements Calendar for one canton using the Swiss holiday rules.
// Days off are the nationwide holidays plus the regional holidays of the canton;
// with no canton only nationwide holidays are days off.
type SwissCalendar struct {
	canton      holidays.Canton
	hoursPerDay int
	engine      *holidays.Engine
	business    *cal.BusinessCalendar
	logger      *zap.Logger
}

// NewSwissCalendar creates a new SwissCalendar instance
func NewSwissCalendar(canton holidays.Canton, hoursPerDay int, engine *holidays.Engine, logger *zap.Logger) *SwissCalendar {
	if hoursPerDay <= 0 {
		hoursPerDay = defaultHoursPerDay
	}
	if engine == nil {
		engine = holidays.NewEngine(holidays.WithLogger(logger))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	business := cal.NewBusinessCalendar()
	added := 0
	for _, rule := range holidays.Rules() {
		if !rule.IsDayOff(canton) {
			continue
		}
		on := rule.On
		business.AddHoliday(&cal.Holiday{
			Name: rule.Name,
			Type: cal.ObservancePublic,
			Func: func(_ *cal.Holiday, year int) time.Time {
				return on(year).Time(time.UTC)
			},
		})
		added++
	}

	logger.Debug("Swiss calendar initialized",
		zap.String("canton", string(canton)),
		zap.Int("days_off_rules", added),
		zap.Int("hours_per_day", hoursPerDay))

	return &SwissCalendar{
		canton:      canton,
		hoursPerDay: hoursPerDay,
		engine:      engine,
		business:    business,
		logger:      logger,
	}
}

// Canton returns the canton this calendar is scoped to
func (sc *SwissCalendar) Canton() holidays.Canton {
	return sc.canton
}

// IsWorkday checks if the given date is a working day
func (sc *SwissCalendar) IsWorkday(date dateutil.Date) (bool, int, error) {
	if sc.business.IsWorkday(date.Time(time.UTC)) {
		return true, sc.hoursPerDay, nil
	}
	return false, 0, nil
}

// GetDayInfo returns detailed info for a specific day
func (sc *SwissCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, error) {
	info := &DayInfo{
		Date: date,
		Note: sc.note(date),
	}

	_, observed, _ := sc.business.IsHoliday(date.Time(time.UTC))
	switch {
	case dateutil.IsWeekend(date):
		info.Type = DayTypeWeekend
	case observed:
		info.Type = DayTypeHoliday
	default:
		info.Type = DayTypeWorkday
		info.IsWorkday = true
		info.WorkingHours = sc.hoursPerDay
	}

	return info, nil
}

// GetMonthInfo returns calendar info for the entire month
func (sc *SwissCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	daysInMonth := dateutil.DaysInMonth(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		info, err := sc.GetDayInfo(dateutil.Date{Year: year, Month: month, Day: day})
		if err != nil {
			return nil, err
		}
		monthInfo.add(*info)
	}

	return monthInfo, nil
}

// WorkdaysInRange reports the number of working days in [start, end].
// A reversed range counts nothing.
func (sc *SwissCalendar) WorkdaysInRange(start, end dateutil.Date) int {
	if start.After(end) {
		return 0
	}
	return sc.business.WorkdaysInRange(start.Time(time.UTC), end.Time(time.UTC))
}

// AddWorkdays returns the date n working days after date (before, if n is negative)
func (sc *SwissCalendar) AddWorkdays(date dateutil.Date, n int) dateutil.Date {
	return dateutil.FromTime(sc.business.WorkdaysFrom(date.Time(time.UTC), n))
}

// note lists the holidays shown on date for the canton, days off or not
func (sc *SwissCalendar) note(date dateutil.Date) string {
	matches := sc.engine.LookupAll(date, sc.canton)
	if len(matches) == 0 {
		return ""
	}
	names := make([]string, len(matches))
	for i, h := range matches {
		names[i] = h.Name
	}
	return strings.Join(names, ", ")
}
