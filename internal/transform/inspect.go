package transform

import (
	"fmt"
	"strings"

	"school-transform/internal/common"
	"school-transform/internal/diagnostic"
	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

// Diagnostic codes reported by InspectRecords and InspectSchool.
const (
	CodeTeacherMismatch  = "teacher_mismatch"
	CodeTeacherWithoutID = "teacher_without_id"
	CodeStudentDropped   = "student_dropped"
	CodeExtraTeachers    = "extra_teachers"
	CodeEmptyClassroom   = "empty_classroom"
)

// numberedRecord is a record with its 1-based position in the input.
type numberedRecord struct {
	row int
	flat.Record
}

// InspectRecords reports what RollUp will silently do with records: rows of one
// classroom that disagree on its teachers (the first row wins), teacher slots with
// a name but no id, and rows whose student is dropped for lack of an id.
func InspectRecords(records []flat.Record) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	numbered := make([]numberedRecord, len(records))
	for i, r := range records {
		numbered[i] = numberedRecord{row: i + 1, Record: r}
	}

	for _, g := range common.GroupBy(numbered, func(r numberedRecord) string { return r.StudentGrade }) {
		for _, c := range common.GroupBy(g.Items, func(r numberedRecord) classroomKey { return classroomOf(r.Record) }) {
			inspectClassroomRows(res, classroomScope(g.Key, c.Key.id, c.Key.name), c.Items)
		}
	}

	return res
}

func inspectClassroomRows(res *diagnostic.Diagnostics, scope string, rows []numberedRecord) {
	first := rows[0]
	for _, r := range rows[1:] {
		if teacherColumns(r.Record) != teacherColumns(first.Record) {
			res.AddWarning(CodeTeacherMismatch,
				fmt.Sprintf("teachers differ from row %d, which is used for the classroom", first.row),
				scope, rowRef(r.row))
		}
	}

	for _, r := range rows {
		if !hasID(r.Teacher1ID) && hasName(r.Teacher1FirstName, r.Teacher1LastName) {
			res.AddWarning(CodeTeacherWithoutID, "teacher 1 has a name but no id and is dropped", scope, rowRef(r.row))
		}

		if !hasID(r.Teacher2ID) && hasName(r.Teacher2FirstName, r.Teacher2LastName) {
			res.AddWarning(CodeTeacherWithoutID, "teacher 2 has a name but no id and is dropped", scope, rowRef(r.row))
		}

		if !hasID(r.StudentID) {
			res.AddInfo(CodeStudentDropped, "row has no student id; no student is added", scope, rowRef(r.row))
		}
	}
}

// InspectSchool reports what Denormalize will silently do with school: classrooms
// with more than two teachers lose the extra ones, and classrooms without students
// become a single record with blank student columns.
func InspectSchool(school tree.School) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, g := range school.Grades {
		for _, c := range g.Classrooms {
			scope := classroomScope(g.ID, c.ID, c.Name)

			if len(c.Teachers) > 2 {
				ids := make([]string, 0, len(c.Teachers)-2)
				for _, t := range c.Teachers[2:] {
					ids = append(ids, t.ID)
				}

				res.AddWarning(CodeExtraTeachers,
					fmt.Sprintf("%d teachers; only the first two are written (dropped: %s)",
						len(c.Teachers), strings.Join(ids, ", ")),
					scope, "")
			}

			if common.IsEmpty(c.Students) {
				res.AddInfo(CodeEmptyClassroom, "classroom has no students; one record with blank student is written",
					scope, "")
			}
		}
	}

	return res
}

type teacherPair [6]string

func teacherColumns(r flat.Record) teacherPair {
	return teacherPair{
		r.Teacher1ID, r.Teacher1LastName, r.Teacher1FirstName,
		r.Teacher2ID, r.Teacher2LastName, r.Teacher2FirstName,
	}
}

func hasName(first, last string) bool {
	return strings.TrimSpace(first) != "" || strings.TrimSpace(last) != ""
}

func classroomScope(grade, id, name string) string {
	return fmt.Sprintf("grade %q / classroom %q %q", grade, id, name)
}

func rowRef(row int) string {
	return fmt.Sprintf("row %d", row)
}
