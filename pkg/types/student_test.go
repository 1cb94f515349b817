package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentAverage(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		want    float64
	}{
		{name: "no courses averages to zero", want: 0},
		{name: "single course", courses: []Course{{Name: "Math", Grade: 77}}, want: 77},
		{
			name:    "fractional mean",
			courses: []Course{{Name: "Math", Grade: 90}, {Name: "Physics", Grade: 85}},
			want:    87.5,
		},
		{
			name:    "bounds",
			courses: []Course{{Name: "A", Grade: 0}, {Name: "B", Grade: 100}, {Name: "C", Grade: 50}},
			want:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Student{ID: 1, Name: "Alice", Courses: tt.courses}
			assert.Equal(t, tt.want, s.Average())
		})
	}
}

func TestValidGrade(t *testing.T) {
	assert.True(t, ValidGrade(0))
	assert.True(t, ValidGrade(100))
	assert.False(t, ValidGrade(-1))
	assert.False(t, ValidGrade(101))
}

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		err   error
		class error
	}{
		{ErrStoreAbsent, ErrInvalidArgument},
		{ErrGradeOutOfRange, ErrInvalidArgument},
		{ErrInvalidRecord, ErrInvalidArgument},
		{ErrStudentNotFound, ErrNotFound},
		{ErrCourseNotFound, ErrNotFound},
		{ErrDuplicateStudent, ErrConflict},
		{ErrDuplicateCourse, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.class)
			assert.True(t, IsUserError(tt.err))
		})
	}

	assert.False(t, IsUserError(ErrExhausted))
	assert.False(t, IsUserError(errors.New("disk on fire")))
}
