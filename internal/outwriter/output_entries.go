package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/internal/parquet"
	"github.com/huangsam/tracktides/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteEntries outputs logged entries, dispatching based on the output format configured.
func WriteEntries(entries []schema.DayEntry, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	if ok, err := writeStructured(cfg, entries); ok {
		if err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	}

	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEntriesCSV(w, entries, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteEntriesParquet(parquet.ConvertEntries(entries), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	case schema.HTMLOut:
		return fmt.Errorf("%w: entries as %s", errUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEntriesTable(w, entries, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
}

// writeEntriesTable prints one row per entry in store order.
func writeEntriesTable(w io.Writer, entries []schema.DayEntry, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Date", "Weight", "Calories", "Protein", "Shot", "Pain", "Notes"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	notesWidth := getMaxNotesWidth(cfg, 75)
	var data [][]string
	for _, e := range entries {
		shot, pain := "", ""
		if e.Shot != nil {
			shot = strings.TrimSpace(e.Shot.Medication + " " + e.Shot.Dosage)
			pain = painLabel(e.Shot.PainLevel, cfg)
		}
		calories := ""
		if e.Calories != nil {
			calories = humanize.Comma(int64(*e.Calories))
		}
		notes := e.Notes
		if len(e.SideEffects) > 0 {
			notes = strings.TrimSpace(strings.Join(e.SideEffects, ", ") + " " + notes)
		}
		data = append(data, []string{
			fmt.Sprintf(intFmt, e.ID),
			formatDate(e.Date, cfg),
			formatOptionalFloat(e.Weight, fmtFloat),
			calories,
			formatOptionalInt(e.Protein, intFmt),
			shot,
			pain,
			contract.TruncateText(notes, notesWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d entries. Store backend: %s\n", len(entries), cfg.StoreBackend)
	return err
}

// writeEntriesCSV writes the same columns as the parquet export.
func writeEntriesCSV(w io.Writer, entries []schema.DayEntry, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"id",
		"date",
		"weight",
		"calories",
		"protein",
		"side_effects",
		"notes",
		"shot_medication",
		"shot_dosage",
		"shot_injection_site",
		"shot_pain_level",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range entries {
			rec := []string{
				strconv.FormatInt(e.ID, 10),
				e.Date.Format(contract.DateTimeFormat),
				formatOptionalFloat(e.Weight, fmtFloat),
				formatOptionalInt(e.Calories, intFmt),
				formatOptionalInt(e.Protein, intFmt),
				strings.Join(e.SideEffects, "|"),
				e.Notes,
				"", "", "", "",
			}
			if s := e.Shot; s != nil {
				rec[7], rec[8], rec[9], rec[10] = s.Medication, s.Dosage, s.InjectionSite, strconv.Itoa(s.PainLevel)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
