package transform

import (
	"strings"

	"school-transform/internal/common"
	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

// classroomKey identifies a classroom within a grade.
type classroomKey struct {
	id   string
	name string
}

func gradeOf(r flat.Record) string {
	return r.StudentGrade
}

func classroomOf(r flat.Record) classroomKey {
	return classroomKey{id: r.ClassroomID, name: r.ClassroomName}
}

// RollUp builds the grade hierarchy from records and returns it on a copy of base.
// The name and id of base are kept as they are.
func RollUp(records []flat.Record, base tree.School) tree.School {
	school := base
	school.Grades = make([]tree.Grade, 0)

	for _, g := range common.GroupBy(records, gradeOf) {
		grade := tree.Grade{ID: g.Key, Classrooms: make([]tree.Classroom, 0)}

		for _, c := range common.GroupBy(g.Items, classroomOf) {
			grade.Classrooms = append(grade.Classrooms, rollUpClassroom(c.Key, c.Items))
		}

		school.Grades = append(school.Grades, grade)
	}

	return school
}

// rollUpClassroom builds one classroom from the non-empty group of its records.
func rollUpClassroom(key classroomKey, rows []flat.Record) tree.Classroom {
	students := make([]tree.Student, 0, len(rows))

	for _, r := range rows {
		s := tree.Student{ID: r.StudentID, FirstName: r.StudentFirstName, LastName: r.StudentLastName}
		if hasID(s.ID) {
			students = append(students, s)
		}
	}

	teachers := make([]tree.Teacher, 0)
	if first, ok := common.First(rows); ok {
		teachers = teachersOf(first)
	}

	return tree.Classroom{
		ID:       key.id,
		Name:     key.name,
		Teachers: teachers,
		Students: students,
	}
}

// teachersOf returns the teacher1 and teacher2 slots of r, skipping blank ids.
func teachersOf(r flat.Record) []tree.Teacher {
	candidates := []tree.Teacher{
		{ID: r.Teacher1ID, FirstName: r.Teacher1FirstName, LastName: r.Teacher1LastName},
		{ID: r.Teacher2ID, FirstName: r.Teacher2FirstName, LastName: r.Teacher2LastName},
	}

	return common.Filter(candidates, func(t tree.Teacher) bool { return hasID(t.ID) })
}

func hasID(id string) bool {
	return strings.TrimSpace(id) != ""
}
