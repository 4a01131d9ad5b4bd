// Package xlsx generates import-template workbooks whose headers match
// what the server-side importers look up after normalization.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// calendarHeaders is the full required column set of the calendar
// importer. "Fiscal Day of theMonth" is spelled the way the server
// normalizes it; do not fix it here.
var calendarHeaders = []string{
	"DateID",
	"Fiscal Year",
	"Fiscal Quarter",
	"Fiscal Month",
	"Fiscal Week",
	"FiscalYRWK",
	"Fiscal Day of the Week",
	"Fiscal Day of theMonth",
	"ISO Year",
	"ISO Quarter",
	"ISO Week",
	"ISO Month",
	"ISO Day of the Week",
	"ISO Day of the Month",
	"Day Name",
}

var dimensionHeaders = []string{
	"dimension_key",
	"dimension_name",
	"description",
	"data_type",
	"is_active",
}

var valueHeaders = []string{
	"dimension_key",
	"value_key",
	"value_name",
	"sort_order",
	"attributes_json",
	"is_active",
}

// WriteCalendarTemplate writes a one-sheet workbook with the calendar
// import header row.
func WriteCalendarTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Calendar"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeHeaderRow(f, sheet, calendarHeaders); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteDimensionsTemplate writes a workbook with the Dimensions and
// Values sheets the dimensions importer expects.
func WriteDimensionsTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Dimensions"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet("Values"); err != nil {
		return fmt.Errorf("add values sheet: %w", err)
	}

	if err := writeHeaderRow(f, "Dimensions", dimensionHeaders); err != nil {
		return err
	}
	if err := writeHeaderRow(f, "Values", valueHeaders); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	return nil
}
