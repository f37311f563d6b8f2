package calendar

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar holds per-day overrides read from a local text file, such as
// company closing days or shortened days before a holiday.
//
// Format, one day per line:
//
//	YYYY-MM-DD type working_hours [note]
//	2024-12-24 shortened 4 Veille de Noël
//	2024-12-31 holiday 0 Fermeture annuelle
//
// Types are workday, weekend, holiday and shortened. Lines starting with # are comments.
// A shortened day listed with 0 hours gets the default set by SetShortenedHours.
type FileCalendar struct {
	filePath       string
	shortenedHours int
	logger         *zap.Logger
	days           map[dateutil.Date]DayInfo
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[dateutil.Date]DayInfo),
	}
}

// SetShortenedHours sets the working hours of shortened days listed without hours
func (fc *FileCalendar) SetShortenedHours(hours int) {
	fc.shortenedHours = hours
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	days := make(map[dateutil.Date]DayInfo)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		day, err := parseOverrideLine(line)
		if err != nil {
			fc.logger.Warn("Skipping calendar line",
				zap.String("file", fc.filePath),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		if day.Type == DayTypeShortened && day.WorkingHours == 0 {
			day.WorkingHours = fc.shortenedHours
		}

		if _, dup := days[day.Date]; dup {
			fc.logger.Warn("Duplicate calendar day, last one wins",
				zap.String("date", day.Date.String()),
				zap.Int("line", lineNo))
		}
		days[day.Date] = day
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.days = days
	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(days)))

	return nil
}

func parseOverrideLine(line string) (DayInfo, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return DayInfo{}, fmt.Errorf("want 'YYYY-MM-DD type working_hours [note]', got %q", line)
	}

	date, err := time.Parse("2006-01-02", parts[0])
	if err != nil {
		return DayInfo{}, fmt.Errorf("invalid date %q: %w", parts[0], err)
	}

	hours, err := strconv.Atoi(parts[2])
	if err != nil || hours < 0 || hours > 24 {
		return DayInfo{}, fmt.Errorf("invalid working hours %q", parts[2])
	}

	day := DayInfo{
		Date:         dateutil.FromTime(date),
		WorkingHours: hours,
		Note:         strings.Join(parts[3:], " "),
	}

	switch parts[1] {
	case "workday":
		day.Type = DayTypeWorkday
		day.IsWorkday = true
	case "shortened":
		day.Type = DayTypeShortened
		day.IsWorkday = true
	case "weekend":
		day.Type = DayTypeWeekend
	case "holiday":
		day.Type = DayTypeHoliday
	default:
		return DayInfo{}, fmt.Errorf("unknown day type %q", parts[1])
	}

	if !day.IsWorkday {
		day.WorkingHours = 0
	}

	return day, nil
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date dateutil.Date) (bool, int, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetMonthInfo returns the overridden days of a month in date order
func (fc *FileCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	monthInfo := &MonthInfo{Year: year, Month: month}

	var dates []dateutil.Date
	for d := range fc.days {
		if d.Year == year && d.Month == month {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no entries for %d-%02d", ErrDayNotFound, year, month)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for _, d := range dates {
		monthInfo.add(fc.days[d])
	}

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, error) {
	day, ok := fc.days[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	return &day, nil
}

// Len returns the number of overridden days
func (fc *FileCalendar) Len() int {
	return len(fc.days)
}
