// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteChart prints chart views using the configured output format.
func (ow *OutWriter) WriteChart(board schema.ChartBoard, cfg *contract.Config, duration time.Duration) error {
	return WriteChartBoard(board, cfg, duration)
}

// WriteSummary prints the health summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.HealthSummary, cfg *contract.Config) error {
	return WriteHealthSummary(summary, cfg)
}

// WriteShotHistory prints the grouped shot log using the configured output format.
func (ow *OutWriter) WriteShotHistory(history schema.ShotHistory, cfg *contract.Config) error {
	return WriteShotHistory(history, cfg)
}

// WriteEntries prints logged entries using the configured output format.
func (ow *OutWriter) WriteEntries(entries []schema.DayEntry, cfg *contract.Config) error {
	return WriteEntries(entries, cfg)
}

// WriteMedications prints the medication catalogue using the configured output format.
func (ow *OutWriter) WriteMedications(meds []schema.Medication, cfg *contract.Config) error {
	return WriteMedications(meds, cfg)
}

// getTermWidth returns the width override, the detected terminal width or 80.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxNotesWidth calculates how wide the free text column of a table may be
// once the fixed columns are accounted for.
func getMaxNotesWidth(cfg *contract.Config, fixedWidth int) int {
	// Reserve generous space for table borders, separators, and padding
	available := getTermWidth(cfg) - fixedWidth - 20
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// paint applies c only when colored output is enabled.
func paint(cfg *contract.Config, c *color.Color, text string) string {
	if !cfg.UseColors {
		return text
	}
	return c.Sprint(text)
}

// painLabel returns the pain severity, colored when enabled.
func painLabel(level int, cfg *contract.Config) string {
	if !cfg.UseColors {
		return contract.GetPainLabel(level)
	}
	return contract.GetColorPainLabel(level)
}
