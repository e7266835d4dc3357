package flat

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadOptions controls how flat files are read.
type ReadOptions struct {
	// HasHeader skips the first row and keeps it in Store.Header.
	HasHeader bool
	// Sheet selects the worksheet of an XLSX workbook. Empty means the first sheet.
	Sheet string
}

// byteOrderMark is written at the start of CSV files by some spreadsheet exports.
const byteOrderMark = '\uFEFF'

// ReadCSV reads comma-separated records in column order. Every row must have
// exactly NumFields columns; blank lines are skipped and row order is kept.
// A leading byte order mark is dropped.
func ReadCSV(r io.Reader, opts ReadOptions) (*Store, error) {
	cr := csv.NewReader(skipByteOrderMark(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	store := &Store{Records: make([]Record, 0)}
	first := true

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}

		if first && opts.HasHeader {
			first = false
			store.Header = row

			continue
		}

		first = false

		rec, err := FromFields(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		store.Records = append(store.Records, rec)
	}

	return store, nil
}

func skipByteOrderMark(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	if c, _, err := br.ReadRune(); err == nil && c != byteOrderMark {
		_ = br.UnreadRune()
	}

	return br
}

// WriteCSV writes the fixed header line followed by one row per record.
func WriteCSV(w io.Writer, records []Record) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	cw := csv.NewWriter(w)
	for _, rec := range records {
		if err := cw.Write(rec.Fields()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
