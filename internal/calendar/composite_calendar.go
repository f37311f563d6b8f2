package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar layers per-day overrides on top of a base calendar.
// Days known to the overrides win; every other day comes from the base.
type CompositeCalendar struct {
	overrides Calendar
	base      Calendar
	logger    *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(overrides, base Calendar, logger *zap.Logger) *CompositeCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompositeCalendar{
		overrides: overrides,
		base:      base,
		logger:    logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date dateutil.Date) (bool, int, error) {
	dayInfo, err := cc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}
	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, error) {
	dayInfo, err := cc.overrides.GetDayInfo(date)
	if err == nil {
		cc.logger.Debug("Using calendar override", zap.String("date", date.String()))
		return dayInfo, nil
	}
	if !errors.Is(err, ErrDayNotFound) {
		cc.logger.Warn("Override calendar failed, using base calendar",
			zap.String("date", date.String()),
			zap.Error(err))
	}

	return cc.base.GetDayInfo(date)
}

// GetMonthInfo returns the base month with overridden days replaced
func (cc *CompositeCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	baseMonth, err := cc.base.GetMonthInfo(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get base month: %w", err)
	}

	merged := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, len(baseMonth.Days)),
	}

	replaced := 0
	for _, day := range baseMonth.Days {
		if override, err := cc.overrides.GetDayInfo(day.Date); err == nil {
			day = *override
			replaced++
		}
		merged.add(day)
	}

	if replaced > 0 {
		cc.logger.Debug("Month merged with overrides",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Int("overridden_days", replaced))
	}

	return merged, nil
}

// LoadOverrides loads the override calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadOverrides() error {
	if fc, ok := cc.overrides.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load override calendar: %w", err)
		}
		cc.logger.Info("Override calendar loaded successfully")
	}
	return nil
}
