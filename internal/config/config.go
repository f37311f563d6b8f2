package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/swiss-holidays/internal/holidays"
)

const (
	envPrefix = "SWISS_HOLIDAYS"

	defaultTimezone    = "Europe/Zurich"
	defaultHoursPerDay = 8
	defaultFormat      = FormatTable
	defaultLogLevel    = "info"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents holiday and working-day calendar configuration
type CalendarConfig struct {
	Canton         string `mapstructure:"canton"`   // Two-letter canton code, empty for nationwide only
	Timezone       string `mapstructure:"timezone"` // Used to resolve "today"
	HoursPerDay    int    `mapstructure:"hours_per_day"`
	ShortenedHours int    `mapstructure:"shortened_hours"` // 0 means half of HoursPerDay
	OverridesFile  string `mapstructure:"overrides_file"`
	Cache          bool   `mapstructure:"cache"`
}

// OutputConfig represents CLI output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps CLI flag names to the config keys they override
var flagKeys = map[string]string{
	"canton": "calendar.canton",
	"format": "output.format",
}

// Load loads configuration from file, environment and flags.
// An explicit configPath must exist; without one the default search paths
// are tried and a missing file leaves the defaults in place. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.swiss-holidays")
		v.AddConfigPath("/etc/swiss-holidays")
	}

	// SWISS_HOLIDAYS_CALENDAR_CANTON overrides calendar.canton
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.canton", "")
	v.SetDefault("calendar.timezone", defaultTimezone)
	v.SetDefault("calendar.hours_per_day", defaultHoursPerDay)
	v.SetDefault("calendar.shortened_hours", 0)
	v.SetDefault("calendar.overrides_file", "")
	v.SetDefault("calendar.cache", true)
	v.SetDefault("output.format", defaultFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", defaultLogLevel)
}

func (c *Config) normalize() {
	c.Calendar.Canton = strings.ToUpper(strings.TrimSpace(c.Calendar.Canton))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.ExpandEnvVars()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.Canton != "" && !holidays.IsCanton(holidays.Canton(c.Calendar.Canton)) {
		return fmt.Errorf("calendar.canton: unknown canton %q", c.Calendar.Canton)
	}
	if c.Calendar.HoursPerDay <= 0 || c.Calendar.HoursPerDay > 24 {
		return fmt.Errorf("calendar.hours_per_day must be between 1 and 24")
	}
	if c.Calendar.ShortenedHours < 0 {
		return fmt.Errorf("calendar.shortened_hours must not be negative")
	}
	if c.Calendar.ShortenedHours > 0 && c.Calendar.ShortenedHours >= c.Calendar.HoursPerDay {
		return fmt.Errorf("calendar.shortened_hours must be less than calendar.hours_per_day (0 for half a day)")
	}
	if c.Calendar.Timezone != "" {
		if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
			return fmt.Errorf("calendar.timezone: %w", err)
		}
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", FormatTable, FormatJSON, c.Output.Format)
	}

	return nil
}

// GetCanton returns the configured canton, empty for nationwide only
func (c *CalendarConfig) GetCanton() holidays.Canton {
	return holidays.Canton(c.Canton)
}

// GetLocation returns the configured time zone.
// Default: Europe/Zurich, or UTC if no zone database is available
func (c *CalendarConfig) GetLocation() *time.Location {
	name := c.Timezone
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if loc, err = time.LoadLocation(defaultTimezone); err != nil {
			return time.UTC
		}
	}
	return loc
}

// GetHoursPerDay returns the working hours of a full day
func (c *CalendarConfig) GetHoursPerDay() int {
	if c.HoursPerDay <= 0 {
		return defaultHoursPerDay
	}
	return c.HoursPerDay
}

// GetShortenedHours returns the working hours of a shortened day.
// Default: half of the hours per day, at least one hour
func (c *CalendarConfig) GetShortenedHours() int {
	if c.ShortenedHours <= 0 || c.ShortenedHours >= c.GetHoursPerDay() {
		return max(c.GetHoursPerDay()/2, 1)
	}
	return c.ShortenedHours
}

// ExpandEnvVars expands environment variables in file paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.OverridesFile = os.ExpandEnv(c.Calendar.OverridesFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
