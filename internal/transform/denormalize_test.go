package transform

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

func TestDenormalize_SingleTeacher(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{{
		ID: "1",
		Classrooms: []tree.Classroom{{
			ID: "A", Name: "Room A",
			Teachers: []tree.Teacher{smith},
			Students: []tree.Student{lee},
		}},
	}}

	records := Denormalize(school)
	require.Len(t, records, 1)
	assert.Equal(t, row("1", "A", "Room A", smith, noT, lee), records[0])
	assert.Empty(t, records[0].Teacher2ID)
	assert.Empty(t, records[0].Teacher2LastName)
	assert.Empty(t, records[0].Teacher2FirstName)
}

func TestDenormalize_EmptyClassroom(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{{
		ID:         "3",
		Classrooms: []tree.Classroom{{ID: "C", Name: "Empty"}},
	}}

	records := Denormalize(school)
	require.Len(t, records, 1)
	assert.Equal(t, flat.Record{ClassroomID: "C", ClassroomName: "Empty", StudentGrade: "3"}, records[0])
}

func TestDenormalize_TeachersWithoutStudents(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{{
		ID: "1",
		Classrooms: []tree.Classroom{{
			ID: "A", Name: "Room A",
			Teachers: []tree.Teacher{smith, brown},
			Students: []tree.Student{},
		}},
	}}

	records := Denormalize(school)
	require.Len(t, records, 1)
	assert.Equal(t, row("1", "A", "Room A", smith, brown, noS), records[0])
}

func TestDenormalize_NoGrades(t *testing.T) {
	records := Denormalize(base())
	assert.NotNil(t, records)
	assert.Empty(t, records)

	assert.Empty(t, Denormalize(tree.School{}))
}

func TestDenormalize_GradeWithoutClassrooms(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{{ID: "1"}}

	assert.Empty(t, Denormalize(school))
}

func TestDenormalize_ExtraTeachersIgnored(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{{
		ID: "1",
		Classrooms: []tree.Classroom{{
			ID:       "A",
			Teachers: []tree.Teacher{smith, brown, ray},
			Students: []tree.Student{lee},
		}},
	}}

	records := Denormalize(school)
	require.Len(t, records, 1)
	assert.Equal(t, "T1", records[0].Teacher1ID)
	assert.Equal(t, "T2", records[0].Teacher2ID)
}

func TestDenormalize_Order(t *testing.T) {
	school := base()
	school.Grades = []tree.Grade{
		{
			ID: "2",
			Classrooms: []tree.Classroom{
				{ID: "B", Teachers: []tree.Teacher{ray}, Students: []tree.Student{fox, lee}},
				{ID: "C", Students: []tree.Student{ng}},
			},
		},
		{
			ID:         "1",
			Classrooms: []tree.Classroom{{ID: "A", Teachers: []tree.Teacher{smith}, Students: []tree.Student{ng}}},
		},
	}

	want := []flat.Record{
		row("2", "B", "", ray, noT, fox),
		row("2", "B", "", ray, noT, lee),
		row("2", "C", "", noT, noT, ng),
		row("1", "A", "", smith, noT, ng),
	}

	got := Denormalize(school)
	assert.Equal(t, want, got, spew.Sdump(got))
}
