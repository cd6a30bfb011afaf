package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/internal/parquet"
	"github.com/huangsam/tracktides/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteChartBoard outputs chart views, dispatching based on the output format configured.
func WriteChartBoard(board schema.ChartBoard, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	if ok, err := writeStructured(cfg, board); ok {
		if err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	}

	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartCSV(w, board, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteChartPointsParquet(parquet.ConvertChartViews(board.Charts), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartHTML(w, board, cfg)
		}, "Wrote HTML")
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartTable(w, board, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// readoutHeadline is the big number above a chart, e.g. "AVERAGE 182.4 lbs".
func readoutHeadline(view schema.ChartView, precision int) string {
	value := contract.FormatValue(view.Readout.Value, precision) + " " + view.Unit
	if view.Readout.ShowAverageLabel {
		return "AVERAGE " + value
	}
	return value
}

// readoutSubtitle names the pinned point, or the visible window when nothing is pinned.
func readoutSubtitle(view schema.ChartView, loc *time.Location) string {
	if sel := view.Readout.Selected; sel != nil {
		return view.Range.PointText(sel.In(loc))
	}
	return view.Range.WindowText(view.WindowStart.In(loc), view.WindowEnd.In(loc))
}

// writeChartTable renders one table per chart with its readout on top.
func writeChartTable(w io.Writer, board schema.ChartBoard, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	loc := cfg.Loc()
	for i, view := range board.Charts {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		heading := paint(cfg, contract.HeadingColor, fmt.Sprintf("%s (%s)", view.Title, view.Unit))
		if _, err := fmt.Fprintf(w, "%s  %s\n%s  |  %s\n", heading, view.Range.Label(),
			readoutHeadline(view, cfg.Precision), readoutSubtitle(view, loc)); err != nil {
			return err
		}
		if len(view.Visible) == 0 {
			if _, err := fmt.Fprintln(w, "No data in this window"); err != nil {
				return err
			}
			continue
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Date", "Value", "Point"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, p := range view.Visible {
			kind := "Daily"
			if p.IsAggregate {
				kind = "Average"
			}
			data = append(data, []string{
				view.Range.PointText(p.Date.In(loc)),
				fmtFloat(p.Value),
				kind,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Y axis %s to %s, window average %s, overall average %s\n",
			fmtFloat(view.YRange.Lo), fmtFloat(view.YRange.Hi), fmtFloat(view.Average), fmtFloat(view.OverallAverage)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Rendered %d charts in %v. Store backend: %s\n", len(board.Charts), duration, cfg.StoreBackend)
	return err
}

// writeChartCSV writes every display point of every chart, flagging the visible ones.
func writeChartCSV(w io.Writer, board schema.ChartBoard, fmtFloat func(float64) string) error {
	header := []string{"series", "range", "date", "value", "is_aggregate", "visible"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range parquet.ConvertChartViews(board.Charts) {
			rec := []string{
				row.Series,
				row.Range,
				row.Date.Format(contract.DateTimeFormat),
				fmtFloat(row.Value),
				strconv.FormatBool(row.IsAggregate),
				strconv.FormatBool(row.Visible),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
