package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassroomEnroll(t *testing.T) {
	c := NewClassroom("Math")

	assert.True(t, c.Enroll(Student{ID: "alice"}))
	assert.True(t, c.Enroll(Student{ID: "bob"}))
	assert.False(t, c.Enroll(Student{ID: "alice"}), "duplicate enrollment must be rejected")

	assert.True(t, c.HasStudent("alice"))
	assert.False(t, c.HasStudent("carol"))
	assert.Equal(t, []Student{{ID: "alice"}, {ID: "bob"}}, c.Students())
}

func TestClassroomEmptyListsAreNotNil(t *testing.T) {
	c := NewClassroom("Art")

	assert.NotNil(t, c.Students())
	assert.Empty(t, c.Students())
	assert.NotNil(t, c.Assignments())
	assert.Empty(t, c.Assignments())
}

func TestClassroomSchedule(t *testing.T) {
	c := NewClassroom("Math")

	assert.True(t, c.Schedule(NewAssignment("HW1")))
	assert.True(t, c.Schedule(NewAssignment("Essay on fractions")))
	assert.False(t, c.Schedule(NewAssignment("HW1")))

	got := c.Assignments()
	require.Len(t, got, 2)
	assert.Equal(t, "HW1", got[0].Details)
	assert.Equal(t, "Essay on fractions", got[1].Details)

	a, ok := c.FindAssignment("Essay on fractions")
	require.True(t, ok)
	assert.Same(t, got[1], a)

	_, ok = c.FindAssignment("HW2")
	assert.False(t, ok)
	assert.False(t, c.HasAssignment("HW2"))
}

func TestClassroomAssignmentsReturnsCopy(t *testing.T) {
	c := NewClassroom("Math")
	c.Schedule(NewAssignment("HW1"))

	list := c.Assignments()
	list[0] = NewAssignment("tampered")

	a, ok := c.FindAssignment("HW1")
	require.True(t, ok)
	assert.Equal(t, "HW1", a.Details)
}

func TestStudentString(t *testing.T) {
	assert.Equal(t, "Student{alice}", Student{ID: "alice"}.String())
}
