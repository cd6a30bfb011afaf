// Package parquet provides data structures and functions for exporting tracktides
// entries and chart points to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/parquet-go/parquet-go"
)

// Entry represents a single logged day.
// This struct maps to the tracktides_entries database table.
type Entry struct {
	// ID is the store-assigned identifier
	ID int64 `parquet:"id,snappy"`

	// Date is the day being logged (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// Weight in pounds (nullable)
	Weight *float64 `parquet:"weight,optional,snappy"`

	Calories *int32 `parquet:"calories,optional,snappy"`
	Protein  *int32 `parquet:"protein,optional,snappy"`

	// SideEffects is the comma-joined list of reported side effects
	SideEffects string `parquet:"side_effects,snappy"`
	Notes       string `parquet:"notes,snappy"`

	// Shot columns are null when no injection was logged that day
	ShotDate          *time.Time `parquet:"shot_date,optional,snappy"`
	ShotMedication    *string    `parquet:"shot_medication,optional,snappy"`
	ShotDosage        *string    `parquet:"shot_dosage,optional,snappy"`
	ShotInjectionSite *string    `parquet:"shot_injection_site,optional,snappy"`
	ShotPainLevel     *int32     `parquet:"shot_pain_level,optional,snappy"`
}

// ChartPoint represents one point of a rendered chart series.
type ChartPoint struct {
	// Series is the series kind (weight, weight-change, pain)
	Series string `parquet:"series,snappy"`

	// Range is the time range the series was rendered for
	Range string `parquet:"range,snappy"`

	Date  time.Time `parquet:"date,snappy"`
	Value float64   `parquet:"value,snappy"`

	// IsAggregate marks a week or month mean
	IsAggregate bool `parquet:"is_aggregate,snappy"`

	// Visible marks points inside the rendered window
	Visible bool `parquet:"visible,snappy"`
}

// WriteEntriesParquet writes a slice of Entry structs to a Parquet file.
func WriteEntriesParquet(data []Entry, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteChartPointsParquet writes a slice of ChartPoint structs to a Parquet file.
func WriteChartPointsParquet(data []ChartPoint, outputPath string) error {
	return writeFile(data, outputPath)
}

func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// write derives the schema from the struct tags of T.
func write[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertEntries converts schema.DayEntry values to Entry rows for Parquet export.
func ConvertEntries(entries []schema.DayEntry) []Entry {
	result := make([]Entry, len(entries))
	for i, e := range entries {
		row := Entry{
			ID:          e.ID,
			Date:        e.Date,
			Weight:      e.Weight,
			Calories:    int32Ptr(e.Calories),
			Protein:     int32Ptr(e.Protein),
			SideEffects: strings.Join(e.SideEffects, ", "),
			Notes:       e.Notes,
		}
		if s := e.Shot; s != nil {
			date := s.Date
			medication, dosage, site := s.Medication, s.Dosage, s.InjectionSite
			pain := int32(s.PainLevel)
			row.ShotDate = &date
			row.ShotMedication = &medication
			row.ShotDosage = &dosage
			row.ShotInjectionSite = &site
			row.ShotPainLevel = &pain
		}
		result[i] = row
	}
	return result
}

// ConvertChartViews flattens the display series of each view into ChartPoint rows.
func ConvertChartViews(views []schema.ChartView) []ChartPoint {
	var result []ChartPoint
	for _, v := range views {
		for _, p := range v.Display {
			result = append(result, ChartPoint{
				Series:      string(v.Kind),
				Range:       string(v.Range),
				Date:        p.Date,
				Value:       p.Value,
				IsAggregate: p.IsAggregate,
				Visible:     !p.Date.Before(v.WindowStart) && !p.Date.After(v.WindowEnd),
			})
		}
	}
	return result
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	out := int32(*v)
	return &out
}
