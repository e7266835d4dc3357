package transform

import (
	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

// row builds a record from "id/last/first" style triples.
func row(grade, roomID, roomName string, t1, t2 tree.Teacher, s tree.Student) flat.Record {
	return flat.Record{
		ClassroomID:       roomID,
		ClassroomName:     roomName,
		Teacher1ID:        t1.ID,
		Teacher1LastName:  t1.LastName,
		Teacher1FirstName: t1.FirstName,
		Teacher2ID:        t2.ID,
		Teacher2LastName:  t2.LastName,
		Teacher2FirstName: t2.FirstName,
		StudentID:         s.ID,
		StudentLastName:   s.LastName,
		StudentFirstName:  s.FirstName,
		StudentGrade:      grade,
	}
}

var (
	smith = tree.Teacher{ID: "T1", LastName: "Smith", FirstName: "Jo"}
	brown = tree.Teacher{ID: "T2", LastName: "Brown", FirstName: "Al"}
	ray   = tree.Teacher{ID: "T3", LastName: "Ray", FirstName: "Kim"}
	noT   = tree.Teacher{}

	lee = tree.Student{ID: "S1", LastName: "Lee", FirstName: "Ann"}
	ng  = tree.Student{ID: "S2", LastName: "Ng", FirstName: "Bo"}
	fox = tree.Student{ID: "S3", LastName: "Fox", FirstName: "Lu"}
	noS = tree.Student{}
)

func base() tree.School {
	return tree.New(tree.DefaultName, tree.DefaultID)
}
