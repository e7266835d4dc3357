package flat

import (
	"errors"
	"fmt"
	"strings"
)

// NumFields is the number of columns in a flat row.
const NumFields = 12

// ErrFieldCount is returned when a row does not have exactly NumFields columns.
var ErrFieldCount = errors.New("wrong number of fields")

// Record is one enrollment row: a student, the classroom they sit in, up to two
// classroom teachers and the student's grade label.
type Record struct {
	ClassroomID       string
	ClassroomName     string
	Teacher1ID        string
	Teacher1LastName  string
	Teacher1FirstName string
	Teacher2ID        string
	Teacher2LastName  string
	Teacher2FirstName string
	StudentID         string
	StudentLastName   string
	StudentFirstName  string
	StudentGrade      string
}

// Store is an ordered sequence of records as read from, or written to, a flat file.
type Store struct {
	// Header is the header row that was skipped while reading, if any.
	Header  []string
	Records []Record
}

// Fields returns the record values in column order.
func (r Record) Fields() []string {
	return []string{
		r.ClassroomID,
		r.ClassroomName,
		r.Teacher1ID,
		r.Teacher1LastName,
		r.Teacher1FirstName,
		r.Teacher2ID,
		r.Teacher2LastName,
		r.Teacher2FirstName,
		r.StudentID,
		r.StudentLastName,
		r.StudentFirstName,
		r.StudentGrade,
	}
}

// FromFields builds a record from column values, trimming surrounding whitespace.
func FromFields(fields []string) (Record, error) {
	if len(fields) != NumFields {
		return Record{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, NumFields, len(fields))
	}

	f := make([]string, NumFields)
	for i, v := range fields {
		f[i] = strings.TrimSpace(v)
	}

	return Record{
		ClassroomID:       f[0],
		ClassroomName:     f[1],
		Teacher1ID:        f[2],
		Teacher1LastName:  f[3],
		Teacher1FirstName: f[4],
		Teacher2ID:        f[5],
		Teacher2LastName:  f[6],
		Teacher2FirstName: f[7],
		StudentID:         f[8],
		StudentLastName:   f[9],
		StudentFirstName:  f[10],
		StudentGrade:      f[11],
	}, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
