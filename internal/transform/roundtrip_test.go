package transform

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

func TestRoundTrip_FlatTreeFlat(t *testing.T) {
	// already grouped by grade and classroom, so the output order matches exactly
	records := []flat.Record{
		row("1", "A", "Alg", smith, brown, lee),
		row("1", "A", "Alg", smith, brown, ng),
		row("1", "B", "Bio", ray, noT, fox),
		row("2", "C", "Chem", noT, noT, lee),
	}

	got := Denormalize(RollUp(records, base()))
	assert.Equal(t, records, got, spew.Sdump(got))
}

func TestRoundTrip_InterleavedRowsAreGrouped(t *testing.T) {
	records := []flat.Record{
		row("1", "A", "Alg", smith, noT, lee),
		row("1", "B", "Bio", ray, noT, fox),
		row("1", "A", "Alg", smith, noT, ng),
	}

	want := []flat.Record{records[0], records[2], records[1]}

	got := Denormalize(RollUp(records, base()))
	assert.Equal(t, want, got, spew.Sdump(got))
}

func TestRoundTrip_ClassroomWithOnlyBlankStudentSurvives(t *testing.T) {
	records := []flat.Record{row("1", "A", "Alg", smith, noT, noS)}

	got := Denormalize(RollUp(records, base()))
	assert.Equal(t, records, got)
}

func TestRoundTrip_TreeFlatTree(t *testing.T) {
	school := tree.New("Lincoln", "7")
	school.Grades = []tree.Grade{
		{
			ID: "1",
			Classrooms: []tree.Classroom{
				{ID: "A", Name: "Alg", Teachers: []tree.Teacher{smith, brown}, Students: []tree.Student{lee, ng}},
				{ID: "B", Name: "Bio", Teachers: []tree.Teacher{ray}, Students: []tree.Student{}},
			},
		},
	}

	got := RollUp(Denormalize(school), tree.New("Lincoln", "7"))
	assert.Equal(t, school, got, spew.Sdump(got))
}

func TestFilteringInvariant(t *testing.T) {
	records := []flat.Record{
		row("1", "A", "", noT, tree.Teacher{ID: " ", LastName: "x"}, noS),
		row("1", "A", "", smith, noT, tree.Student{ID: "", FirstName: "nameless"}),
		row("2", "B", "", tree.Teacher{FirstName: "y"}, brown, lee),
	}

	school := RollUp(records, base())
	for _, g := range school.Grades {
		for _, c := range g.Classrooms {
			for _, tc := range c.Teachers {
				require.True(t, hasID(tc.ID), spew.Sdump(c))
			}

			for _, s := range c.Students {
				require.True(t, hasID(s.ID), spew.Sdump(c))
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Run("A two rows one classroom", func(t *testing.T) {
		school := RollUp([]flat.Record{
			row("1", "A", "", smith, noT, lee),
			row("1", "A", "", smith, noT, ng),
		}, base())

		require.Len(t, school.Grades, 1)
		require.Len(t, school.Grades[0].Classrooms, 1)
		room := school.Grades[0].Classrooms[0]
		assert.Equal(t, []tree.Teacher{smith}, room.Teachers)
		assert.Equal(t, []tree.Student{lee, ng}, room.Students)
	})

	t.Run("B blank student id", func(t *testing.T) {
		room := RollUp([]flat.Record{row("1", "A", "", smith, noT, noS)}, base()).Grades[0].Classrooms[0]
		assert.Empty(t, room.Students)
	})

	t.Run("C one teacher", func(t *testing.T) {
		school := base()
		school.Grades = []tree.Grade{{ID: "1", Classrooms: []tree.Classroom{{
			ID: "A", Teachers: []tree.Teacher{smith}, Students: []tree.Student{lee},
		}}}}

		records := Denormalize(school)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Teacher2ID)
	})

	t.Run("D empty classroom", func(t *testing.T) {
		school := base()
		school.Grades = []tree.Grade{{ID: "", Classrooms: []tree.Classroom{{}}}}

		records := Denormalize(school)
		require.Len(t, records, 1)
		assert.Equal(t, flat.Record{}, records[0])
	})

	t.Run("E empty inputs", func(t *testing.T) {
		assert.Empty(t, RollUp(nil, base()).Grades)
		assert.Empty(t, Denormalize(base()))
	})
}
