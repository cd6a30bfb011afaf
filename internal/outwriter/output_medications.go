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

// WriteMedications outputs the medication catalogue, dispatching based on the output format configured.
func WriteMedications(meds []schema.Medication, cfg *contract.Config) error {
	if ok, err := writeStructured(cfg, meds); ok {
		if err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	}

	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"id", "name", "brand_names", "generic_name", "category", "fda_approved", "description"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, m := range meds {
					rec := []string{
						m.ID,
						m.Name,
						strings.Join(m.BrandNames, "|"),
						m.GenericName,
						string(m.Category),
						strconv.FormatBool(m.IsFDAApproved),
						m.Description,
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut, schema.HTMLOut:
		return fmt.Errorf("%w: medications as %s", errUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMedicationsTable(w, meds, cfg)
		}, "Wrote table")
	}
}

func writeMedicationsTable(w io.Writer, meds []schema.Medication, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Brands", "Category", "FDA", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	descWidth := getMaxNotesWidth(cfg, 60)
	var data [][]string
	for _, m := range meds {
		fda := ""
		if m.IsFDAApproved {
			fda = paint(cfg, contract.OKColor, "Yes")
		}
		data = append(data, []string{
			m.Name,
			strings.Join(m.BrandNames, ", "),
			string(m.Category),
			fda,
			contract.TruncateText(m.Description, descWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d medications\n", len(meds))
	return err
}
