package calendar

import (
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
)

// WeekdayLabels are the column headers of a Monday-first week
var WeekdayLabels = [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

var monthLabels = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthLabel returns the French name of month
func MonthLabel(month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	return monthLabels[month-1]
}

// WeekdayLabel returns the column header of weekday in a Monday-first week
func WeekdayLabel(weekday time.Weekday) string {
	return WeekdayLabels[(int(weekday)+6)%7]
}

// MonthGrid returns the weeks covering a month view. The first row starts on
// the Monday on or before the 1st, the last row ends on the Sunday on or
// after the last day, and every row holds seven days.
func MonthGrid(year int, month time.Month) [][]dateutil.Date {
	first := dateutil.Date{Year: year, Month: month, Day: 1}
	start := dateutil.StartOfWeek(first)
	end := dateutil.EndOfWeek(dateutil.EndOfMonth(first))

	var weeks [][]dateutil.Date
	for weekStart := start; !weekStart.After(end); weekStart = weekStart.AddDays(7) {
		weeks = append(weeks, WeekOf(weekStart))
	}
	return weeks
}

// WeekOf returns Monday through Sunday of the week containing date
func WeekOf(date dateutil.Date) []dateutil.Date {
	monday := dateutil.StartOfWeek(date)
	week := make([]dateutil.Date, 7)
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}

// InMonth reports whether date belongs to the given month
func InMonth(date dateutil.Date, year int, month time.Month) bool {
	return date.Year == year && date.Month == month
}
