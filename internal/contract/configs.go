package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// Default values for configuration.
const (
	DefaultPrecision        = 1
	DefaultHeightInches     = 70.0
	DefaultGoalWeight       = 180.0
	DefaultShotIntervalDays = 7
	DefaultSampleDays       = 400
	DefaultSampleSeed       = 42
	MaxSampleDays           = 3650
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateFormat is the calendar date representation used in tables and flags.
const DateFormat = "2006-01-02"

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	Range      schema.TimeRange
	Series     []schema.SeriesKind
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Limit      int // 0 = no limit

	Location *time.Location
	Now      time.Time  // Fixed clock, zero means wall clock
	Anchor   *time.Time // End of the visible window, nil means now
	Selected *time.Time // Pinned date, nil means none

	HeightInches     float64
	GoalWeight       float64
	ShotIntervalDays int

	SampleDays int
	SampleSeed uint64

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SeriesStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	Timezone       string `mapstructure:"timezone"`
	Now            string `mapstructure:"now"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from chartCmd.Flags() ---
	Range  string `mapstructure:"range"`
	Anchor string `mapstructure:"anchor"`
	Select string `mapstructure:"select"`

	// --- Fields from summaryCmd.Flags() ---
	HeightInches     float64 `mapstructure:"height-inches"`
	GoalWeight       float64 `mapstructure:"goal-weight"`
	ShotIntervalDays int     `mapstructure:"shot-interval-days"`

	// --- Fields from entriesCmd.PersistentFlags() ---
	Limit      int    `mapstructure:"limit"`
	SampleDays int    `mapstructure:"sample-days"`
	SampleSeed uint64 `mapstructure:"sample-seed"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Series != nil {
		clone.Series = make([]schema.SeriesKind, len(c.Series))
		copy(clone.Series, c.Series)
	}
	if c.Anchor != nil {
		anchor := *c.Anchor
		clone.Anchor = &anchor
	}
	if c.Selected != nil {
		selected := *c.Selected
		clone.Selected = &selected
	}
	return &clone
}

// Clock returns the instant used as "now" for one computation pass.
// Callers read it once and thread the value through.
func (c *Config) Clock() time.Time {
	if !c.Now.IsZero() {
		return c.Now.In(c.Loc())
	}
	return time.Now().In(c.Loc())
}

// Loc returns the configured timezone, defaulting to local time.
func (c *Config) Loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeInputs(cfg, input); err != nil {
		return err
	}
	if err := processChartInputs(cfg, input); err != nil {
		return err
	}
	return processHealthInputs(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates output and store fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet, html", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Limit < 0 {
		return fmt.Errorf("limit cannot be negative (received %d)", input.Limit)
	}
	cfg.Limit = input.Limit

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// processTimeInputs resolves the timezone, the clock override and window positions.
func processTimeInputs(cfg *Config, input *ConfigRawInput) error {
	loc, err := ParseTimezone(input.Timezone)
	if err != nil {
		return err
	}
	cfg.Location = loc

	wall := time.Now().In(loc)
	if strings.TrimSpace(input.Now) != "" {
		now, err := ParseTimeArg(input.Now, wall, loc)
		if err != nil {
			return fmt.Errorf("invalid --now value: %w", err)
		}
		cfg.Now = now
	}
	now := cfg.Clock()

	if err := applyAnchor(cfg, input.Anchor, now); err != nil {
		return err
	}
	return applySelected(cfg, input.Select, now)
}

// applyAnchor sets the scroll anchor. Anchors in the future are rejected.
func applyAnchor(cfg *Config, s string, now time.Time) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	anchor, err := ParseTimeArg(s, now, cfg.Loc())
	if err != nil {
		return fmt.Errorf("invalid --anchor value: %w", err)
	}
	if anchor.After(now) {
		return fmt.Errorf("anchor %s is after now %s", anchor.Format(DateTimeFormat), now.Format(DateTimeFormat))
	}
	cfg.Anchor = &anchor
	return nil
}

func applySelected(cfg *Config, s string, now time.Time) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	selected, err := ParseTimeArg(s, now, cfg.Loc())
	if err != nil {
		return fmt.Errorf("invalid --select value: %w", err)
	}
	cfg.Selected = &selected
	return nil
}

// RevalidateChart applies chart parameters that arrive after startup, such as
// MCP tool arguments, on top of an already validated config.
// Empty strings keep the current value.
func RevalidateChart(cfg *Config, rangeStr, seriesStr, anchorStr, selectStr string) error {
	if strings.TrimSpace(rangeStr) != "" {
		rng, err := schema.ParseTimeRange(rangeStr)
		if err != nil {
			return err
		}
		// A new range starts back at now with nothing pinned
		cfg.Range = rng
		cfg.Anchor = nil
		cfg.Selected = nil
	}
	if strings.TrimSpace(seriesStr) != "" {
		series, err := ParseSeriesList(seriesStr)
		if err != nil {
			return err
		}
		cfg.Series = series
	}
	now := cfg.Clock()
	if err := applyAnchor(cfg, anchorStr, now); err != nil {
		return err
	}
	return applySelected(cfg, selectStr, now)
}

// processChartInputs handles the range and the series selection.
func processChartInputs(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.Range) == "" {
		cfg.Range = schema.MonthRange
	} else {
		rng, err := schema.ParseTimeRange(input.Range)
		if err != nil {
			return err
		}
		cfg.Range = rng
	}

	series, err := ParseSeriesList(input.SeriesStr)
	if err != nil {
		return err
	}
	cfg.Series = series
	return nil
}

// processHealthInputs handles the summary and sample data parameters.
func processHealthInputs(cfg *Config, input *ConfigRawInput) error {
	if input.HeightInches <= 0 {
		return fmt.Errorf("height-inches must be greater than 0 (received %.1f)", input.HeightInches)
	}
	cfg.HeightInches = input.HeightInches

	if input.GoalWeight <= 0 {
		return fmt.Errorf("goal-weight must be greater than 0 (received %.1f)", input.GoalWeight)
	}
	cfg.GoalWeight = input.GoalWeight

	if input.ShotIntervalDays <= 0 {
		return fmt.Errorf("shot-interval-days must be greater than 0 (received %d)", input.ShotIntervalDays)
	}
	cfg.ShotIntervalDays = input.ShotIntervalDays

	if input.SampleDays <= 0 || input.SampleDays > MaxSampleDays {
		return fmt.Errorf("sample-days must be greater than 0 and cannot exceed %d (received %d)", MaxSampleDays, input.SampleDays)
	}
	cfg.SampleDays = input.SampleDays
	cfg.SampleSeed = input.SampleSeed
	return nil
}

// ParseSeriesList parses "weight,pain", "all" or "" (all series) into series kinds.
func ParseSeriesList(s string) ([]schema.SeriesKind, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		out := make([]schema.SeriesKind, len(schema.AllSeriesKinds))
		copy(out, schema.AllSeriesKinds)
		return out, nil
	}
	var out []schema.SeriesKind
	seen := make(map[schema.SeriesKind]struct{})
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kind, err := schema.ParseSeriesKind(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		out = append(out, kind)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no series selected in '%s'", s)
	}
	return out, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
}
