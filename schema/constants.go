package schema

import (
	"fmt"
	"strings"
	"time"
)

// Custom string types for type safety.
type (
	// TimeRange represents the trailing window shown on a chart.
	TimeRange string

	// SeriesKind represents one of the derived chart series.
	SeriesKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the entry store.
	DatabaseBackend string
)

// All time ranges supported.
const (
	DayRange       TimeRange = "D"
	WeekRange      TimeRange = "W"
	MonthRange     TimeRange = "M" // default
	SixMonthsRange TimeRange = "6M"
	YearRange      TimeRange = "Y"
)

// All chart series supported.
const (
	WeightSeries       SeriesKind = "weight"
	WeightChangeSeries SeriesKind = "change"
	PainSeries         SeriesKind = "pain"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
	HTMLOut    OutputMode = "html"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // in-memory sample data
)

// AllTimeRanges lists ranges in picker order.
var AllTimeRanges = []TimeRange{DayRange, WeekRange, MonthRange, SixMonthsRange, YearRange}

// AllSeriesKinds lists series in display order.
var AllSeriesKinds = []SeriesKind{WeightSeries, WeightChangeSeries, PainSeries}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
	HTMLOut:    {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// visibleSeconds maps each range to its visible window in seconds.
var visibleSeconds = map[TimeRange]int64{
	DayRange:       86400,
	WeekRange:      604800,
	MonthRange:     2592000,
	SixMonthsRange: 15552000,
	YearRange:      31536000,
}

// VisibleDuration returns the length of the window shown for the range.
// Unknown ranges fall back to the month window.
func (r TimeRange) VisibleDuration() time.Duration {
	secs, ok := visibleSeconds[r]
	if !ok {
		secs = visibleSeconds[MonthRange]
	}
	return time.Duration(secs) * time.Second
}

// Label returns the long, human readable name of the range.
func (r TimeRange) Label() string {
	switch r {
	case DayRange:
		return "day"
	case WeekRange:
		return "week"
	case SixMonthsRange:
		return "6 months"
	case YearRange:
		return "year"
	default:
		return "month"
	}
}

// ParseTimeRange accepts the short labels (D, W, M, 6M, Y) or long names.
func ParseTimeRange(s string) (TimeRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day":
		return DayRange, nil
	case "w", "week":
		return WeekRange, nil
	case "m", "month":
		return MonthRange, nil
	case "6m", "six-months", "sixmonths", "6 months":
		return SixMonthsRange, nil
	case "y", "year":
		return YearRange, nil
	default:
		return "", fmt.Errorf("invalid range '%s'. must be D, W, M, 6M, Y", s)
	}
}

// ParseSeriesKind accepts a series name and a few aliases.
func ParseSeriesKind(s string) (SeriesKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight":
		return WeightSeries, nil
	case "change", "weight-change", "weightchange":
		return WeightChangeSeries, nil
	case "pain", "injection-pain":
		return PainSeries, nil
	default:
		return "", fmt.Errorf("invalid series '%s'. must be weight, change, pain", s)
	}
}

// WindowText describes the visible window, e.g. "Jan 6–Jan 13, 2025" for a week.
func (r TimeRange) WindowText(start, end time.Time) string {
	switch r {
	case DayRange:
		return end.Format("Mon, Jan 2, 2006")
	case WeekRange:
		return start.Format("Jan 2") + "–" + end.Format("Jan 2") + ", " + end.Format("2006")
	case SixMonthsRange:
		return start.Format("Jan 2, 2006") + "–" + end.Format("Jan 2, 2006")
	case YearRange:
		return start.Format("Jan 2006") + "–" + end.Format("Jan 2006")
	default:
		return start.Format("Jan 2") + "–" + end.Format("Jan 2, 2006")
	}
}

// PointText describes a pinned point at the precision of the range.
func (r TimeRange) PointText(t time.Time) string {
	switch r {
	case DayRange:
		return t.Format("3:04 PM")
	case WeekRange:
		return t.Format("Mon, Jan 2")
	case YearRange:
		return t.Format("January 2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
