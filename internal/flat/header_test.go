package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, NumFields)
	assert.Equal(t, "classroom id", cols[0])
	assert.Equal(t, "teacher_2_first_name", cols[7])
	assert.Equal(t, "student_grade", cols[11])
}

func TestCheckHeader(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		d := CheckHeader(Columns())
		assert.Zero(t, d.Len())
	})

	t.Run("normalised variants", func(t *testing.T) {
		row := []string{
			"ClassroomID", "classroom name", "Teacher1ID", "teacher_1_last_name", "teacher_1_first_name",
			"teacher-2-id", "teacher_2_last_name", "teacher_2_first_name", "STUDENT_ID",
			"studentLastName", "student_first_name", "student_grade",
		}
		d := CheckHeader(row)
		assert.Zero(t, d.Len())
	})

	t.Run("nil header", func(t *testing.T) {
		assert.Zero(t, CheckHeader(nil).Len())
	})

	t.Run("wrong column count", func(t *testing.T) {
		d := CheckHeader([]string{"a", "b"})
		require.Len(t, d.Warnings, 1)
		assert.Equal(t, "unexpected_header", d.Warnings[0].Code)
		assert.False(t, d.HasErrors())
	})

	t.Run("misspelt column gets suggestion", func(t *testing.T) {
		row := Columns()
		row[8] = "studnet_id"

		d := CheckHeader(row)
		require.Len(t, d.Warnings, 1)
		assert.Equal(t, "column 9", d.Warnings[0].Ref)
		assert.Empty(t, d.Warnings[0].Suggestions, "closest column is the expected one")
	})

	t.Run("swapped columns suggest the other name", func(t *testing.T) {
		row := Columns()
		row[9], row[10] = row[10], row[9]

		d := CheckHeader(row)
		require.Len(t, d.Warnings, 2)
		assert.Equal(t, []string{"student_first_name"}, d.Warnings[0].Suggestions)
		assert.Equal(t, []string{"student_last_name"}, d.Warnings[1].Suggestions)
	})
}
