package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/username/swiss-holidays/internal/calendar"
	"github.com/username/swiss-holidays/internal/config"
	"github.com/username/swiss-holidays/internal/holidays"
	"github.com/username/swiss-holidays/pkg/dateutil"
)

type checkResult struct {
	Date     dateutil.Date      `json:"date"`
	Holiday  bool               `json:"holiday"`
	Holidays []holidays.Holiday `json:"holidays"`
}

type workdaySummary struct {
	From         dateutil.Date `json:"from"`
	To           dateutil.Date `json:"to"`
	WorkDays     int           `json:"workdays"`
	WorkingHours int           `json:"working_hours"`
}

type workdayShift struct {
	From     dateutil.Date `json:"from"`
	Workdays int           `json:"workdays"`
	Date     dateutil.Date `json:"date"`
}

type dayRow struct {
	Date         dateutil.Date `json:"date"`
	Type         string        `json:"type"`
	IsWorkday    bool          `json:"is_workday"`
	WorkingHours int           `json:"working_hours"`
	Note         string        `json:"note,omitempty"`
}

type monthSummary struct {
	Month        string   `json:"month"`
	WorkDays     int      `json:"workdays"`
	Weekends     int      `json:"weekends"`
	Holidays     int      `json:"holidays"`
	WorkingHours int      `json:"working_hours"`
	Days         []dayRow `json:"days"`
}

type cantonRow struct {
	Code holidays.Canton `json:"code"`
	Name string          `json:"name"`
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func dayLabel(d dateutil.Date) string {
	return fmt.Sprintf("%s %s", calendar.WeekdayLabel(d.Weekday()), d)
}

func renderHolidays(w io.Writer, format string, found []holidays.Holiday) error {
	if found == nil {
		found = []holidays.Holiday{}
	}
	if format == config.FormatJSON {
		return writeJSON(w, found)
	}

	if len(found) == 0 {
		_, err := fmt.Fprintln(w, "No holidays")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tNAME\tSCOPE\tCANTONS")
	for _, h := range found {
		cantons := "-"
		if len(h.Regions) > 0 {
			codes := make([]string, len(h.Regions))
			for i, c := range h.Regions {
				codes[i] = string(c)
			}
			cantons = strings.Join(codes, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dayLabel(h.Date), h.Name, h.Scope, cantons)
	}
	return tw.Flush()
}

func renderCheck(w io.Writer, format string, date dateutil.Date, found []holidays.Holiday) error {
	if found == nil {
		found = []holidays.Holiday{}
	}
	if format == config.FormatJSON {
		return writeJSON(w, checkResult{Date: date, Holiday: len(found) > 0, Holidays: found})
	}

	if len(found) == 0 {
		_, err := fmt.Fprintf(w, "%s: no holiday\n", dayLabel(date))
		return err
	}
	for _, h := range found {
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", dayLabel(date), h.Name, h.Scope); err != nil {
			return err
		}
	}
	return nil
}

// renderGrid prints a Monday-first month view. Holidays are marked with *
// and listed below the grid.
func renderGrid(w io.Writer, year int, month time.Month, found []holidays.Holiday) error {
	marked := make(map[dateutil.Date]bool, len(found))
	for _, h := range found {
		marked[h.Date] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", calendar.MonthLabel(month), year)

	header := make([]string, len(calendar.WeekdayLabels))
	for i, label := range calendar.WeekdayLabels {
		header[i] = fmt.Sprintf("%-4s", label)
	}
	b.WriteString(strings.TrimRight(strings.Join(header, ""), " "))
	b.WriteByte('\n')

	for _, week := range calendar.MonthGrid(year, month) {
		var row strings.Builder
		for _, d := range week {
			switch {
			case !calendar.InMonth(d, year, month):
				row.WriteString("    ")
			case marked[d]:
				fmt.Fprintf(&row, "%3d*", d.Day)
			default:
				fmt.Fprintf(&row, "%3d ", d.Day)
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}

	if len(found) > 0 {
		b.WriteByte('\n')
		for _, h := range found {
			fmt.Fprintf(&b, "%3d* %s\n", h.Date.Day, h.Name)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderWorkdays(w io.Writer, format string, summary workdaySummary) error {
	if format == config.FormatJSON {
		return writeJSON(w, summary)
	}
	_, err := fmt.Fprintf(w, "%s .. %s: %d working days, %d hours\n",
		summary.From, summary.To, summary.WorkDays, summary.WorkingHours)
	return err
}

func renderShift(w io.Writer, format string, shift workdayShift) error {
	if format == config.FormatJSON {
		return writeJSON(w, shift)
	}
	_, err := fmt.Fprintf(w, "%s %+d working days: %s\n", shift.From, shift.Workdays, dayLabel(shift.Date))
	return err
}

func renderMonthInfo(w io.Writer, format string, monthInfo *calendar.MonthInfo) error {
	summary := monthSummary{
		Month:        fmt.Sprintf("%04d-%02d", monthInfo.Year, int(monthInfo.Month)),
		WorkDays:     monthInfo.WorkDays,
		Weekends:     monthInfo.Weekends,
		Holidays:     monthInfo.Holidays,
		WorkingHours: monthInfo.WorkingHours,
		Days:         make([]dayRow, 0, len(monthInfo.Days)),
	}
	for _, day := range monthInfo.Days {
		summary.Days = append(summary.Days, dayRow{
			Date:         day.Date,
			Type:         day.Type.String(),
			IsWorkday:    day.IsWorkday,
			WorkingHours: day.WorkingHours,
			Note:         day.Note,
		})
	}

	if format == config.FormatJSON {
		return writeJSON(w, summary)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %d\n\n", calendar.MonthLabel(monthInfo.Month), monthInfo.Year)
	fmt.Fprintln(tw, "DATE\tTYPE\tHOURS\tNOTE")
	for _, day := range summary.Days {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", dayLabel(day.Date), day.Type, day.WorkingHours, day.Note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nWorking days: %d  Weekends: %d  Holidays: %d  Hours: %d\n",
		summary.WorkDays, summary.Weekends, summary.Holidays, summary.WorkingHours)
	return err
}

func renderCantons(w io.Writer, format string) error {
	codes := holidays.Cantons()
	rows := make([]cantonRow, 0, len(codes))
	for _, code := range codes {
		name, _ := holidays.CantonName(code)
		rows = append(rows, cantonRow{Code: code, Name: name})
	}

	if format == config.FormatJSON {
		return writeJSON(w, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Code, row.Name)
	}
	return tw.Flush()
}
