package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/swiss-holidays/internal/calendar"
	"github.com/username/swiss-holidays/internal/holidays"
	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

func listCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the holidays of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = today().Year
			}
			start := dateutil.Date{Year: year, Month: time.January, Day: 1}
			end := dateutil.Date{Year: year, Month: time.December, Day: 31}

			found := newEngine().InRange(start, end, cfg.Calendar.GetCanton())
			logger.Debug("Listed holidays", zap.Int("year", year), zap.Int("count", len(found)))

			return renderHolidays(cmd.OutOrStdout(), cfg.Output.Format, found)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [date]",
		Short: "Check whether a date is a holiday",
		Long:  "Check whether a date (YYYY-MM-DD or DD.MM.YYYY, default today) is a holiday",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := today()
			if len(args) == 1 {
				var err error
				if date, err = dateutil.ParseDate(args[0]); err != nil {
					return err
				}
			}

			found := newEngine().LookupAll(date, cfg.Calendar.GetCanton())
			return renderCheck(cmd.OutOrStdout(), cfg.Output.Format, date, found)
		},
	}
}

func rangeCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "List the holidays between two dates (inclusive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			found := newEngine().InRange(start, end, cfg.Calendar.GetCanton())
			return renderHolidays(cmd.OutOrStdout(), cfg.Output.Format, found)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date of the range")
	cmd.Flags().StringVar(&to, "to", "", "Last date of the range")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func monthCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "List the holidays of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newEngine()
			canton := cfg.Calendar.GetCanton()

			var found []holidays.Holiday
			if month == "" {
				found = engine.CurrentMonth(canton)
			} else {
				first, err := dateutil.ParseMonth(month)
				if err != nil {
					return err
				}
				found = engine.Month(first.Year, first.Month, canton)
			}

			return renderHolidays(cmd.OutOrStdout(), cfg.Output.Format, found)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default: current month)")

	return cmd
}

func gridCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a month calendar with holidays marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first := dateutil.StartOfMonth(today())
			if month != "" {
				var err error
				if first, err = dateutil.ParseMonth(month); err != nil {
					return err
				}
			}

			found := newEngine().Month(first.Year, first.Month, cfg.Calendar.GetCanton())
			return renderGrid(cmd.OutOrStdout(), first.Year, first.Month, found)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default: current month)")

	return cmd
}

func workdaysCmd() *cobra.Command {
	var month, from, to string
	var add int

	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "Count working days and hours",
		Long: "Count working days and hours for a month (--month) or an inclusive range (--from, --to),\n" +
			"or find the date a number of working days after --from (--add)",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := newCalendar(newEngine())

			if cmd.Flags().Changed("add") {
				if from == "" || to != "" || month != "" {
					return fmt.Errorf("--add needs --from and excludes --to and --month")
				}
				start, err := dateutil.ParseDate(from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				target, err := calendar.AddWorkdays(cal, start, add)
				if err != nil {
					return fmt.Errorf("failed to add workdays: %w", err)
				}
				return renderShift(cmd.OutOrStdout(), cfg.Output.Format, workdayShift{
					From:     start,
					Workdays: add,
					Date:     target,
				})
			}

			if from != "" || to != "" {
				if month != "" {
					return fmt.Errorf("use either --month or --from/--to")
				}
				start, end, err := parseRange(from, to)
				if err != nil {
					return err
				}
				days, hours, err := calendar.WorkdaysInRange(cal, start, end)
				if err != nil {
					return fmt.Errorf("failed to count workdays: %w", err)
				}
				return renderWorkdays(cmd.OutOrStdout(), cfg.Output.Format, workdaySummary{
					From:         start,
					To:           end,
					WorkDays:     days,
					WorkingHours: hours,
				})
			}

			first := dateutil.StartOfMonth(today())
			if month != "" {
				var err error
				if first, err = dateutil.ParseMonth(month); err != nil {
					return err
				}
			}

			monthInfo, err := cal.GetMonthInfo(first.Year, first.Month)
			if err != nil {
				return fmt.Errorf("failed to get month info: %w", err)
			}
			return renderMonthInfo(cmd.OutOrStdout(), cfg.Output.Format, monthInfo)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default: current month)")
	cmd.Flags().StringVar(&from, "from", "", "First date of the range")
	cmd.Flags().StringVar(&to, "to", "", "Last date of the range")
	cmd.Flags().IntVar(&add, "add", 0, "Working days to add to --from (negative goes back)")

	return cmd
}

func cantonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cantons",
		Short: "List canton codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCantons(cmd.OutOrStdout(), cfg.Output.Format)
		},
	}
}

// parseRange parses both ends of a date range. A reversed range is valid
// and yields no results.
func parseRange(from, to string) (dateutil.Date, dateutil.Date, error) {
	if from == "" || to == "" {
		return dateutil.Date{}, dateutil.Date{}, fmt.Errorf("both --from and --to are required")
	}
	start, err := dateutil.ParseDate(from)
	if err != nil {
		return dateutil.Date{}, dateutil.Date{}, fmt.Errorf("invalid --from: %w", err)
	}
	end, err := dateutil.ParseDate(to)
	if err != nil {
		return dateutil.Date{}, dateutil.Date{}, fmt.Errorf("invalid --to: %w", err)
	}
	return start, end, nil
}
