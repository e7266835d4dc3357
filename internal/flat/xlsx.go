package flat

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the worksheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// ReadXLSX reads records from a worksheet of an XLSX workbook. Trailing empty
// cells are padded back to NumFields and fully blank rows are skipped.
func ReadXLSX(r io.Reader, opts ReadOptions) (store *Store, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	if sheet == "" {
		return nil, errors.New("workbook does not contain any sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}

	store = &Store{Records: make([]Record, 0, len(rows))}
	first := true

	for i, row := range rows {
		if isBlank(row) {
			continue
		}

		if len(row) < NumFields {
			row = append(row, make([]string, NumFields-len(row))...)
		}

		if first && opts.HasHeader {
			first = false
			store.Header = row

			continue
		}

		first = false

		rec, err := FromFields(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}

		store.Records = append(store.Records, rec)
	}

	return store, nil
}

// WriteXLSX writes a single-sheet workbook holding the header columns followed by
// one row per record. An empty sheet name keeps the excelize default.
func WriteXLSX(w io.Writer, records []Record, sheet string) (err error) {
	f := excelize.NewFile()

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if sheet == "" {
		sheet = defaultSheet
	}

	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	if err := setRow(f, sheet, 1, Columns()); err != nil {
		return err
	}

	for i, rec := range records {
		if err := setRow(f, sheet, i+2, rec.Fields()); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return nil
}
