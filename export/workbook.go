// Package export writes labeled groups to an xlsx workbook, one sheet per group.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"groupform-server-go/models"
)

const (
	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// DefaultFilename is offered for downloads.
	DefaultFilename = "groups.xlsx"
)

// ErrNoGroups is returned when there is nothing to export. A workbook needs at
// least one sheet.
var ErrNoGroups = errors.New("no groups to export")

// Header is the first row of every group sheet.
var Header = []interface{}{"name", "score", "role"}

// Workbook returns the xlsx bytes for tables.
func Workbook(tables []models.GroupTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, tables); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWorkbook writes one sheet per table, in order, named by the table title.
func WriteWorkbook(w io.Writer, tables []models.GroupTable) error {
	if len(tables) == 0 {
		return ErrNoGroups
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// The default sheet becomes the first group's sheet.
	if err := f.SetSheetName(f.GetSheetName(0), tables[0].Title); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, t := range tables[1:] {
		if _, err := f.NewSheet(t.Title); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.Title, err)
		}
	}

	for _, t := range tables {
		if err := writeSheet(f, t, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, t models.GroupTable, headerStyle int) error {
	if err := f.SetSheetRow(t.Title, "A1", &Header); err != nil {
		return fmt.Errorf("failed to write header on sheet %s: %w", t.Title, err)
	}
	if err := f.SetCellStyle(t.Title, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header on sheet %s: %w", t.Title, err)
	}
	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Name, r.Score, string(r.Role)}
		if err := f.SetSheetRow(t.Title, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on sheet %s: %w", i+2, t.Title, err)
		}
	}
	return nil
}
