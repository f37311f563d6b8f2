package main

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/username/swiss-holidays/internal/calendar"
	"github.com/username/swiss-holidays/internal/config"
	"github.com/username/swiss-holidays/internal/holidays"
	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     = zap.NewNop()
	cfg        *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swiss-holidays",
		Short: "Swiss public holidays",
		Long:  "Compute Swiss public holidays, cantonal holidays and working days",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().String("canton", "", "Canton code (e.g. ZH, GE); empty for all holidays")
	rootCmd.PersistentFlags().String("format", "", "Output format: table or json")

	rootCmd.AddCommand(
		listCmd(),
		checkCmd(),
		rangeCmd(),
		monthCmd(),
		gridCmd(),
		workdaysCmd(),
		cantonsCmd(),
	)

	return rootCmd
}

// newEngine builds the holiday engine from the loaded config
func newEngine() *holidays.Engine {
	loc := cfg.Calendar.GetLocation()
	opts := []holidays.Option{
		holidays.WithLogger(logger),
		holidays.WithClock(func() time.Time { return time.Now().In(loc) }),
	}
	if !cfg.Calendar.Cache {
		opts = append(opts, holidays.WithoutCache())
	}
	return holidays.NewEngine(opts...)
}

// newCalendar builds the working-day calendar for the configured canton,
// layered under the overrides file when one is configured
func newCalendar(engine *holidays.Engine) calendar.Calendar {
	base := calendar.NewSwissCalendar(
		cfg.Calendar.GetCanton(),
		cfg.Calendar.GetHoursPerDay(),
		engine,
		logger,
	)

	if cfg.Calendar.OverridesFile == "" {
		return base
	}

	overrides := calendar.NewFileCalendar(cfg.Calendar.OverridesFile, logger)
	overrides.SetShortenedHours(cfg.Calendar.GetShortenedHours())
	compositeCal := calendar.NewCompositeCalendar(overrides, base, logger)

	if err := compositeCal.LoadOverrides(); err != nil {
		logger.Warn("Failed to load calendar overrides, continuing with holiday rules only",
			zap.String("file", cfg.Calendar.OverridesFile),
			zap.Error(err))
		return base
	}

	return compositeCal
}

func today() dateutil.Date {
	return dateutil.Today(cfg.Calendar.GetLocation())
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
