package flat

import (
	"fmt"
	"strings"

	"school-transform/internal/diagnostic"
	"school-transform/internal/match"
)

// Header is the header line written at the top of every flat file.
const Header = "classroom id, classroom_name, teacher_1_id, teacher_1_last_name, teacher_1_first_name, " +
	"teacher_2_id, teacher_2_last_name, teacher_2_first_name, student_id, student_last_name, " +
	"student_first_name, student_grade"

// suggestionThreshold is the minimum similarity for a column name suggestion.
const suggestionThreshold = 0.6

// Columns returns the header split into trimmed column names.
func Columns() []string {
	parts := strings.Split(Header, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// CheckHeader compares a header row with Columns. Column names are compared after
// identifier normalization, so "classroom_id" and "ClassroomID" both match
// "classroom id". Mismatches are reported as warnings; reading never fails on them.
func CheckHeader(row []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if row == nil {
		return res
	}

	columns := Columns()
	if len(row) != len(columns) {
		res.AddWarning("unexpected_header",
			fmt.Sprintf("header has %d columns, expected %d", len(row), len(columns)), "header", "")

		return res
	}

	for i, name := range row {
		if match.SameIdent(name, columns[i]) {
			continue
		}

		msg := fmt.Sprintf("column %q does not match %q", strings.TrimSpace(name), columns[i])
		ref := fmt.Sprintf("column %d", i+1)

		if best, score := match.Closest(name, columns); score >= suggestionThreshold && best != columns[i] {
			res.AddWarning("unexpected_header", msg, "header", ref, best)
			continue
		}

		res.AddWarning("unexpected_header", msg, "header", ref)
	}

	return res
}
