package contract

import (
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns raw input with every default filled in, as the root command would.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:           "text",
		Precision:        DefaultPrecision,
		Color:            "yes",
		Timezone:         "UTC",
		Now:              "2025-03-31T12:00:00Z",
		StoreBackend:     string(schema.SQLiteBackend),
		Range:            "M",
		HeightInches:     DefaultHeightInches,
		GoalWeight:       DefaultGoalWeight,
		ShotIntervalDays: DefaultShotIntervalDays,
		SampleDays:       DefaultSampleDays,
		SampleSeed:       DefaultSampleSeed,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "long range name", mutate: func(in *ConfigRawInput) { in.Range = "six-months" }},
		{name: "empty range defaults", mutate: func(in *ConfigRawInput) { in.Range = "" }},
		{name: "invalid range", mutate: func(in *ConfigRawInput) { in.Range = "2Y" }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }},
		{name: "invalid precision", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "invalid backend", mutate: func(in *ConfigRawInput) { in.StoreBackend = "redis" }, expectError: true},
		{name: "mysql without dsn", mutate: func(in *ConfigRawInput) { in.StoreBackend = "mysql" }, expectError: true},
		{name: "invalid timezone", mutate: func(in *ConfigRawInput) { in.Timezone = "Nowhere/Land" }, expectError: true},
		{name: "invalid now", mutate: func(in *ConfigRawInput) { in.Now = "soon" }, expectError: true},
		{name: "anchor in future", mutate: func(in *ConfigRawInput) { in.Anchor = "2025-04-02" }, expectError: true},
		{name: "anchor relative", mutate: func(in *ConfigRawInput) { in.Anchor = "2 weeks ago" }},
		{name: "invalid select", mutate: func(in *ConfigRawInput) { in.Select = "the other day" }, expectError: true},
		{name: "invalid series", mutate: func(in *ConfigRawInput) { in.SeriesStr = "calories" }, expectError: true},
		{name: "zero height", mutate: func(in *ConfigRawInput) { in.HeightInches = 0 }, expectError: true},
		{name: "zero goal", mutate: func(in *ConfigRawInput) { in.GoalWeight = 0 }, expectError: true},
		{name: "zero interval", mutate: func(in *ConfigRawInput) { in.ShotIntervalDays = 0 }, expectError: true},
		{name: "too many sample days", mutate: func(in *ConfigRawInput) { in.SampleDays = MaxSampleDays + 1 }, expectError: true},
		{name: "negative limit", mutate: func(in *ConfigRawInput) { in.Limit = -1 }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	input := validInput()
	input.SeriesStr = "pain,weight,pain"
	input.Anchor = "2025-03-15"
	input.Select = "1 week ago"
	input.Range = "y"
	input.Output = "JSON"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.YearRange, cfg.Range)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, []schema.SeriesKind{schema.PainSeries, schema.WeightSeries}, cfg.Series)
	assert.Equal(t, time.UTC, cfg.Location)

	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	assert.True(t, now.Equal(cfg.Clock()))
	require.NotNil(t, cfg.Anchor)
	assert.True(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC).Equal(*cfg.Anchor))
	require.NotNil(t, cfg.Selected)
	assert.True(t, now.AddDate(0, 0, -7).Equal(*cfg.Selected))
	assert.True(t, cfg.UseColors)
}

func TestConfigClockDefaultsToWallClock(t *testing.T) {
	cfg := &Config{Location: time.UTC}
	before := time.Now()
	got := cfg.Clock()
	assert.False(t, got.Before(before.Add(-time.Second)))
	assert.Nil(t, cfg.Anchor)
}

func TestConfigClone(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := &Config{Series: []schema.SeriesKind{schema.WeightSeries}, Anchor: &anchor}

	clone := cfg.Clone()
	clone.Series[0] = schema.PainSeries
	*clone.Anchor = anchor.AddDate(0, 0, 1)

	assert.Equal(t, schema.WeightSeries, cfg.Series[0])
	assert.Equal(t, anchor, *cfg.Anchor)
}

func TestParseSeriesList(t *testing.T) {
	all, err := ParseSeriesList("")
	require.NoError(t, err)
	assert.Equal(t, schema.AllSeriesKinds, all)

	all, err = ParseSeriesList("ALL")
	require.NoError(t, err)
	assert.Equal(t, schema.AllSeriesKinds, all)

	got, err := ParseSeriesList(" change , weight-change ")
	require.NoError(t, err)
	assert.Equal(t, []schema.SeriesKind{schema.WeightChangeSeries}, got)

	_, err = ParseSeriesList(",")
	assert.Error(t, err)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name      string
		backend   schema.DatabaseBackend
		connStr   string
		expectErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none", schema.NoneBackend, "", false},
		{"mysql ok", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/tracktides", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql no tcp", schema.MySQLBackend, "user:pass@localhost/db", true},
		{"postgres ok", schema.PostgreSQLBackend, "host=localhost port=5432 user=u password=p dbname=tracktides", false},
		{"postgres no dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres no host", schema.PostgreSQLBackend, "dbname=x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRevalidateChart(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	require.NoError(t, RevalidateChart(cfg, "W", "pain", "3 days ago", "2025-03-27"))
	assert.Equal(t, schema.WeekRange, cfg.Range)
	assert.Equal(t, []schema.SeriesKind{schema.PainSeries}, cfg.Series)
	require.NotNil(t, cfg.Anchor)
	assert.True(t, time.Date(2025, 3, 28, 12, 0, 0, 0, time.UTC).Equal(*cfg.Anchor))
	require.NotNil(t, cfg.Selected)

	// Empty values keep what is already there
	require.NoError(t, RevalidateChart(cfg, "", "", "", ""))
	assert.Equal(t, schema.WeekRange, cfg.Range)
	assert.NotNil(t, cfg.Selected)

	// Switching range drops the scroll anchor and the pin
	moved := cfg.Clone()
	require.NoError(t, RevalidateChart(moved, "M", "", "", ""))
	assert.Nil(t, moved.Anchor)
	assert.Nil(t, moved.Selected)

	assert.Error(t, RevalidateChart(cfg.Clone(), "decade", "", "", ""))
	assert.Error(t, RevalidateChart(cfg.Clone(), "", "calories", "", ""))
	assert.Error(t, RevalidateChart(cfg.Clone(), "", "", "2030-01-01", ""))
	assert.Error(t, RevalidateChart(cfg.Clone(), "", "", "", "whenever"))
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	ProcessProfilingConfig(profile, "")
	assert.False(t, profile.Enabled)

	ProcessProfilingConfig(profile, "tracktides")
	assert.True(t, profile.Enabled)
	assert.Equal(t, "tracktides", profile.Prefix)
}
