package tracking

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/models"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	CSVFilename  = "data_store.csv"
	XLSXFilename = "data_store.xlsx"

	xlsxSheet = "Sheet1"
)

// ExportTable is a projected table ready to be written. A table with no
// header is written as an empty document.
type ExportTable struct {
	Header []string
	Rows   [][]string
}

func (t ExportTable) IsEmpty() bool {
	return len(t.Header) == 0
}

// ExportRows projects records onto columns.
//
// A nil columns uses models.FieldNames. A nil pins exports the whole store in
// store order; otherwise there is one row per pin and unknown pins give empty
// rows. An empty store always yields an empty table.
func (svc *Service) ExportRows(ctx context.Context, pins []string, columns []string) ExportTable {
	_, span := tracer.Start(ctx, "tracking.ExportRows", trace.WithAttributes(
		attribute.Int("pins", len(pins)),
		attribute.Int("columns", len(columns)),
	))
	defer span.End()

	return BuildExportTable(svc.Store.Snapshot(), pins, columns)
}

// BuildExportTable is ExportRows against an explicit table.
func BuildExportTable(table *fixtures.Table, pins []string, columns []string) ExportTable {
	if table.Len() == 0 {
		return ExportTable{}
	}
	if columns == nil {
		columns = models.DefaultColumns()
	}

	var records []models.ShipmentScan
	if pins == nil {
		records = table.Records()
	} else {
		records = make([]models.ShipmentScan, len(pins))
		for i, pin := range pins {
			records[i], _ = table.Get(pin)
		}
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row(columns))
	}
	return ExportTable{Header: columns, Rows: rows}
}

// WriteCSV writes the header row followed by the data rows.
func WriteCSV(w io.Writer, t ExportTable) error {
	if t.IsEmpty() {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := writeCSVRow(cw, w, t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeCSVRow(cw, w, row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRow quotes a row made of a single empty field; encoding/csv would
// emit a blank line, which readers skip.
func writeCSVRow(cw *csv.Writer, w io.Writer, row []string) error {
	if len(row) == 1 && row[0] == "" {
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\"\"\n")
		return err
	}
	return cw.Write(row)
}

// WriteXLSX writes the table into the first sheet of a new workbook.
// An empty table still produces a valid, empty workbook.
func WriteXLSX(w io.Writer, t ExportTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if !t.IsEmpty() {
		if err := writeSheetRow(f, 1, t.Header); err != nil {
			return err
		}
		for i, row := range t.Rows {
			if err := writeSheetRow(f, i+2, row); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

func writeSheetRow(f *excelize.File, rowNo int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNo, err)
	}
	return nil
}
