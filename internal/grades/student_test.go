package grades

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/grades/internal/container"
	"github.com/mesh-intelligence/grades/pkg/types"
)

func TestCloneCourse(t *testing.T) {
	src := &course{name: "Math", grade: 91}

	c, err := cloneCourse(src)
	require.NoError(t, err)
	assert.NotSame(t, src, c)
	assert.Equal(t, *src, *c)

	_, err = cloneCourse(nil)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestDestroyCourseNil(t *testing.T) {
	assert.NotPanics(t, func() { destroyCourse(nil) })
}

func studentWith(t *testing.T, courses ...*course) *student {
	t.Helper()
	st, err := newStudent("Alice", 1, 0)
	require.NoError(t, err)
	for _, c := range courses {
		require.NoError(t, st.courses.Append(c))
	}
	return st
}

func TestCloneStudentDeepCopiesCourses(t *testing.T) {
	src := studentWith(t, &course{name: "Math", grade: 90}, &course{name: "Physics", grade: 70})

	dst, err := cloneStudent(src)
	require.NoError(t, err)
	assert.Equal(t, src.record(), dst.record())
	assert.NotSame(t, src.courses, dst.courses)

	srcCourses := map[*course]bool{}
	for c := range src.courses.All() {
		srcCourses[c] = true
	}
	for c := range dst.courses.All() {
		assert.False(t, srcCourses[c], "cloned student must not share course records")
	}

	destroyStudent(src)
	assert.Equal(t, types.Student{
		ID:   1,
		Name: "Alice",
		Courses: []types.Course{
			{Name: "Math", Grade: 90},
			{Name: "Physics", Grade: 70},
		},
	}, dst.record())
	destroyStudent(dst)
}

func TestCloneStudentNil(t *testing.T) {
	_, err := cloneStudent(nil)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestCloneStudentUnwindsNestedFailure(t *testing.T) {
	errBoom := errors.New("boom")
	var destroyed []string
	courses, err := container.New(
		func(c *course) (*course, error) {
			if c.name == "Physics" {
				return nil, errBoom
			}
			return cloneCourse(c)
		},
		func(c *course) {
			destroyed = append(destroyed, c.name)
			destroyCourse(c)
		},
	)
	require.NoError(t, err)
	src := &student{name: "Alice", id: 1, courses: courses}
	require.NoError(t, src.courses.Append(&course{name: "Math", grade: 90}))
	require.NoError(t, src.courses.Append(&course{name: "Physics", grade: 70}))

	dst, err := cloneStudent(src)
	assert.Nil(t, dst)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"Math"}, destroyed, "the partial course clone must be released")
	assert.Equal(t, 2, src.courses.Len())
	assert.Equal(t, "Math", src.courses.Get(src.courses.Begin()).name)
}

func TestDestroyStudentCascades(t *testing.T) {
	math := &course{name: "Math", grade: 90}
	st := studentWith(t, math)

	destroyStudent(st)
	assert.Nil(t, st.courses)
	assert.Empty(t, math.name)
	assert.NotPanics(t, func() { destroyStudent(nil) })
}
