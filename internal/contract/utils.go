package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/tracktides/schema"
)

// Pain label constants.
const (
	SeverePain   = "Severe"
	ModeratePain = "Moderate"
	MildPain     = "Mild"
	NoPain       = "None"
)

// Shot status label constants.
const (
	OverdueValue   = "Overdue"
	ScheduledValue = "Scheduled"
)

// Color variables for console output.
var (
	DangerColor  = color.New(color.FgRed, color.Bold) // DangerColor represents obese, severe or overdue.
	WarnColor    = color.New(color.FgYellow)          // WarnColor represents overweight or moderate.
	OKColor      = color.New(color.FgGreen)           // OKColor represents normal or scheduled.
	InfoColor    = color.New(color.FgCyan)            // InfoColor represents underweight or mild.
	HeadingColor = color.New(color.FgMagenta, color.Bold)
)

// GetPainLabel returns a plain label for a 0-10 pain level.
func GetPainLabel(level int) string {
	switch {
	case level >= 7:
		return SeverePain
	case level >= 4:
		return ModeratePain
	case level >= 1:
		return MildPain
	default:
		return NoPain
	}
}

// GetColorPainLabel returns a colored pain label for console output (table).
func GetColorPainLabel(level int) string {
	text := GetPainLabel(level)
	switch text {
	case SeverePain:
		return DangerColor.Sprint(text)
	case ModeratePain:
		return WarnColor.Sprint(text)
	case MildPain:
		return InfoColor.Sprint(text)
	default:
		return text
	}
}

// GetColorBMILabel returns a colored BMI category for console output (table).
func GetColorBMILabel(category string) string {
	switch category {
	case schema.ObeseCategory:
		return DangerColor.Sprint(category)
	case schema.OverweightCategory:
		return WarnColor.Sprint(category)
	case schema.NormalCategory:
		return OKColor.Sprint(category)
	default:
		return InfoColor.Sprint(category)
	}
}

// GetShotStatusLabel returns Overdue, Scheduled or the not-scheduled sentinel.
func GetShotStatusLabel(ns schema.NextShot) string {
	switch {
	case !ns.Scheduled:
		return schema.NotScheduled
	case ns.Overdue:
		return OverdueValue
	default:
		return ScheduledValue
	}
}

// GetColorShotStatusLabel returns a colored shot status for console output (table).
func GetColorShotStatusLabel(ns schema.NextShot) string {
	text := GetShotStatusLabel(ns)
	switch text {
	case OverdueValue:
		return DangerColor.Sprint(text)
	case ScheduledValue:
		return OKColor.Sprint(text)
	default:
		return text
	}
}

// FormatValue prints whole numbers without decimals and everything else at the given precision.
func FormatValue(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for entry storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tracktides.db"
	}
	return filepath.Join(homeDir, ".tracktides.db")
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
