package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteShotHistory outputs the shot history, dispatching based on the output format configured.
func WriteShotHistory(history schema.ShotHistory, cfg *contract.Config) error {
	if ok, err := writeStructured(cfg, history); ok {
		if err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	}

	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeShotsCSV(w, history)
		}, "Wrote CSV")
	case schema.ParquetOut, schema.HTMLOut:
		return fmt.Errorf("%w: shot history as %s", errUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeShotsTable(w, history, cfg)
		}, "Wrote table")
	}
}

// writeShotsTable prints one table per month, newest month first.
func writeShotsTable(w io.Writer, history schema.ShotHistory, cfg *contract.Config) error {
	if history.TotalShots == 0 {
		_, err := fmt.Fprintln(w, "No shots logged yet")
		return err
	}

	effectsWidth := getMaxNotesWidth(cfg, 70)
	for _, group := range history.Groups {
		if _, err := fmt.Fprintln(w, paint(cfg, contract.HeadingColor, group.Month)); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"#", "Date", "Medication", "Dosage", "Site", "Pain", "Side Effects"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignLeft
		})

		var data [][]string
		for _, rec := range group.Shots {
			shot := rec.Shot
			data = append(data, []string{
				strconv.Itoa(rec.Number),
				formatDate(shot.Date, cfg),
				shot.Medication,
				shot.Dosage,
				shot.InjectionSite,
				fmt.Sprintf("%d %s", shot.PainLevel, painLabel(shot.PainLevel, cfg)),
				contract.TruncateText(strings.Join(rec.SideEffects, ", "), effectsWidth),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	stats := fmt.Sprintf("Total shots: %d", history.TotalShots)
	if d := history.DaysSinceFirstShot; d != nil {
		stats += fmt.Sprintf(", days since first shot: %d", *d)
	}
	if d := history.AverageIntervalDays; d != nil {
		stats += fmt.Sprintf(", average interval: %d days", *d)
	}
	_, err := fmt.Fprintln(w, stats)
	return err
}

// writeShotsCSV writes one row per shot in the same order as the table.
func writeShotsCSV(w io.Writer, history schema.ShotHistory) error {
	header := []string{
		"number",
		"month",
		"date",
		"medication",
		"dosage",
		"injection_site",
		"pain_level",
		"pain_label",
		"side_effects",
		"notes",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, group := range history.Groups {
			for _, rec := range group.Shots {
				shot := rec.Shot
				row := []string{
					strconv.Itoa(rec.Number),
					group.Month,
					shot.Date.Format(contract.DateTimeFormat),
					shot.Medication,
					shot.Dosage,
					shot.InjectionSite,
					strconv.Itoa(shot.PainLevel),
					contract.GetPainLabel(shot.PainLevel),
					strings.Join(rec.SideEffects, "|"),
					shot.Notes,
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
