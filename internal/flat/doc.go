// Package flat holds the row-oriented side of enrollment data: one Record per
// student with classroom, teacher and grade columns.
//
// Two encodings are supported, both using the same twelve columns in the
// order given by Header:
//
//   - CSV via encoding/csv (ReadCSV, WriteCSV)
//   - XLSX workbooks via excelize (ReadXLSX, WriteXLSX)
//
// Readers keep row order and trim every value. When a header row is expected it
// is kept in Store.Header so CheckHeader can report unexpected column names.
package flat
