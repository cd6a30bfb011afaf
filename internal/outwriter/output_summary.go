package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteHealthSummary outputs the summary, dispatching based on the output format configured.
func WriteHealthSummary(summary schema.HealthSummary, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	if ok, err := writeStructured(cfg, summary); ok {
		if err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	}

	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"metric", "value"}, func(cw *csv.Writer) error {
				return cw.WriteAll(summaryRows(summary, cfg, fmtFloat, intFmt, false))
			})
		}, "Wrote CSV")
	case schema.ParquetOut, schema.HTMLOut:
		return fmt.Errorf("%w: summary as %s", errUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Metric", "Value"})
			table.Configure(func(cfg *tablewriter.Config) {
				cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight}
			})
			if err := table.Bulk(summaryRows(summary, cfg, fmtFloat, intFmt, true)); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

// summaryRows flattens the summary into metric/value pairs.
// Colored labels and relative times are only used for the table.
func summaryRows(s schema.HealthSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, pretty bool) [][]string {
	now := s.GeneratedAt
	rows := [][]string{
		{"Entries", fmt.Sprintf(intFmt, s.EntryCount)},
		{"Shots", fmt.Sprintf(intFmt, s.ShotCount)},
	}

	if s.HasWeight {
		category := s.BMICategory
		if pretty && cfg.UseColors {
			category = contract.GetColorBMILabel(category)
		}
		g := s.Goal
		rows = append(rows,
			[]string{"BMI", fmtFloat(s.BMI)},
			[]string{"BMI category", category},
			[]string{"Start weight", fmtFloat(g.StartWeight)},
			[]string{"Current weight", fmtFloat(g.CurrentWeight)},
			[]string{"Goal weight", fmtFloat(g.GoalWeight)},
			[]string{"Total change", fmtFloat(g.TotalChange)},
			[]string{"Remaining", fmtFloat(g.Remaining)},
			[]string{"Progress", formatProgress(g.Progress, pretty)},
		)
	} else {
		rows = append(rows, []string{"BMI", "--"})
	}

	status := contract.GetShotStatusLabel(s.NextShot)
	if pretty && cfg.UseColors {
		status = contract.GetColorShotStatusLabel(s.NextShot)
	}
	rows = append(rows,
		[]string{"Last shot", formatWhen(s.NextShot.LastShot, now, cfg, pretty, "--")},
		[]string{"Next shot", formatWhen(s.NextShot.NextDue, now, cfg, pretty, schema.NotScheduled)},
		[]string{"Shot status", status},
	)
	return rows
}

// formatProgress renders a 0-1 ratio as a whole percentage.
func formatProgress(p float64, pretty bool) string {
	if pretty {
		return fmt.Sprintf("%d%%", int(p*100+0.5))
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// formatWhen renders an optional date, with a relative hint for humans.
func formatWhen(t *time.Time, now time.Time, cfg *contract.Config, pretty bool, missing string) string {
	if t == nil {
		return missing
	}
	if !pretty {
		return t.Format(contract.DateTimeFormat)
	}
	return fmt.Sprintf("%s (%s)", formatDate(*t, cfg), humanize.RelTime(*t, now, "ago", "from now"))
}
