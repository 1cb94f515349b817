package grades

import (
	"fmt"

	"github.com/mesh-intelligence/grades/internal/container"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// student is the owned record of one student. courses owns every course
// record; no other record refers to them.
type student struct {
	name    string
	id      int
	courses *container.List[*course]
}

// newStudent returns a student with an empty course list bounded by
// maxCourses (zero means unbounded).
func newStudent(name string, id, maxCourses int) (*student, error) {
	courses, err := container.New(cloneCourse, destroyCourse, container.WithCapacity(maxCourses))
	if err != nil {
		return nil, err
	}
	return &student{name: name, id: id, courses: courses}, nil
}

// cloneStudent returns a deep copy of s. The course list is cloned element
// by element, so the copy shares no course records with s.
func cloneStudent(s *student) (*student, error) {
	if s == nil {
		return nil, types.ErrInvalidRecord
	}
	courses, err := s.courses.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone courses of student %d: %w", s.id, err)
	}
	return &student{
		name:    s.name,
		id:      s.id,
		courses: courses,
	}, nil
}

// destroyStudent releases s and every course it owns. Nil is ignored.
func destroyStudent(s *student) {
	if s == nil {
		return
	}
	s.courses.Destroy()
	s.courses = nil
	s.name = ""
}

// findCourse returns the first course named name, or nil.
func (s *student) findCourse(name string) *course {
	for c := range s.courses.All() {
		if c.name == name {
			return c
		}
	}
	return nil
}

// average returns the mean of the student's grades, or 0 with no courses.
func (s *student) average() float64 {
	if s.courses.Len() == 0 {
		return 0
	}
	sum := 0
	for c := range s.courses.All() {
		sum += c.grade
	}
	return float64(sum) / float64(s.courses.Len())
}

// record returns an exported copy of s.
func (s *student) record() types.Student {
	rec := types.Student{
		ID:      s.id,
		Name:    s.name,
		Courses: make([]types.Course, 0, s.courses.Len()),
	}
	for c := range s.courses.All() {
		rec.Courses = append(rec.Courses, types.Course{Name: c.name, Grade: c.grade})
	}
	return rec
}
