package transform

import (
	"school-transform/internal/common"
	"school-transform/internal/flat"
	"school-transform/internal/tree"
	"school-transform/utils"
)

// Denormalize flattens the school into one record per (grade, classroom, student),
// in grade, then classroom, then student order. Teachers beyond the second are
// not represented.
func Denormalize(school tree.School) []flat.Record {
	records := make([]flat.Record, 0)

	for _, g := range school.Grades {
		for _, c := range g.Classrooms {
			records = append(records, denormalizeClassroom(g.ID, c)...)
		}
	}

	return records
}

func denormalizeClassroom(gradeID string, c tree.Classroom) []flat.Record {
	t1, t2 := utils.Unpack2(c.Teachers)

	students := c.Students
	if common.IsEmpty(students) {
		// keep classroom and teacher columns for a classroom nobody is enrolled in
		students = []tree.Student{{}}
	}

	records := make([]flat.Record, 0, len(students))
	for _, s := range students {
		records = append(records, flat.Record{
			ClassroomID:       c.ID,
			ClassroomName:     c.Name,
			Teacher1ID:        t1.ID,
			Teacher1LastName:  t1.LastName,
			Teacher1FirstName: t1.FirstName,
			Teacher2ID:        t2.ID,
			Teacher2LastName:  t2.LastName,
			Teacher2FirstName: t2.FirstName,
			StudentID:         s.ID,
			StudentLastName:   s.LastName,
			StudentFirstName:  s.FirstName,
			StudentGrade:      gradeID,
		})
	}

	return records
}
