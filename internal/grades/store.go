package grades

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/grades/internal/container"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// Store owns a roster of student records in insertion order. The zero
// value is not usable; call New. A nil or destroyed Store rejects every
// operation with types.ErrStoreAbsent.
type Store struct {
	students *container.List[*student]
	settings settings
}

var _ types.Gradebook = (*Store)(nil)

// New returns an empty Store.
func New(opts ...Option) (*Store, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	students, err := container.New(cloneStudent, destroyStudent, container.WithCapacity(cfg.maxStudents))
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return &Store{students: students, settings: cfg}, nil
}

// Destroy releases every student and course record. It is safe to call on
// a nil Store and to call more than once.
func (s *Store) Destroy() {
	if s == nil || s.students == nil {
		return
	}
	n := s.students.Len()
	s.students.Destroy()
	s.students = nil
	s.settings.logger.Debug("store destroyed", "students", n)
}

// Len returns the number of students, or 0 for an absent store.
func (s *Store) Len() int {
	if s.absent() {
		return 0
	}
	return s.students.Len()
}

// AddStudent registers a student with an empty course list.
func (s *Store) AddStudent(name string, id int) error {
	if s.absent() {
		return types.ErrStoreAbsent
	}
	log := s.settings.logger.With("student_id", id)
	if s.find(id) != nil {
		log.Warn("add student rejected", "reason", "duplicate id")
		return fmt.Errorf("add student %d: %w", id, types.ErrDuplicateStudent)
	}
	st, err := newStudent(name, id, s.settings.maxCourses)
	if err != nil {
		return fmt.Errorf("add student %d: %w", id, err)
	}
	if err := s.students.Append(st); err != nil {
		destroyStudent(st)
		log.Warn("add student rejected", "error", err)
		return fmt.Errorf("add student %d: %w", id, err)
	}
	log.Debug("student added", "name", name)
	return nil
}

// AddGrade records grade for courseName on the student with id. A student
// may hold each course name once.
func (s *Store) AddGrade(courseName string, id, grade int) error {
	if s.absent() {
		return types.ErrStoreAbsent
	}
	log := s.settings.logger.With("student_id", id, "course", courseName)
	if !types.ValidGrade(grade) {
		log.Warn("add grade rejected", "grade", grade, "reason", "out of range")
		return fmt.Errorf("add grade %d: %w", grade, types.ErrGradeOutOfRange)
	}
	st := s.find(id)
	if st == nil {
		log.Warn("add grade rejected", "reason", "unknown student")
		return fmt.Errorf("add grade: student %d: %w", id, types.ErrStudentNotFound)
	}
	if st.findCourse(courseName) != nil {
		log.Warn("add grade rejected", "reason", "duplicate course")
		return fmt.Errorf("add grade: course %q: %w", courseName, types.ErrDuplicateCourse)
	}
	c := &course{name: courseName, grade: grade}
	if err := st.courses.Append(c); err != nil {
		destroyCourse(c)
		log.Warn("add grade rejected", "error", err)
		return fmt.Errorf("add grade: course %q: %w", courseName, err)
	}
	log.Debug("grade added", "grade", grade)
	return nil
}

// Average returns the mean grade of the student with id and a copy of the
// student's name. A student with no courses averages 0. On failure it
// returns -1 and an empty name.
func (s *Store) Average(id int) (float64, string, error) {
	if s.absent() {
		return -1, "", types.ErrStoreAbsent
	}
	st := s.find(id)
	if st == nil {
		return -1, "", fmt.Errorf("average: student %d: %w", id, types.ErrStudentNotFound)
	}
	return st.average(), strings.Clone(st.name), nil
}

// Grade returns the grade recorded for courseName on the student with id.
func (s *Store) Grade(id int, courseName string) (int, error) {
	if s.absent() {
		return -1, types.ErrStoreAbsent
	}
	st := s.find(id)
	if st == nil {
		return -1, fmt.Errorf("grade: student %d: %w", id, types.ErrStudentNotFound)
	}
	c := st.findCourse(courseName)
	if c == nil {
		return -1, fmt.Errorf("grade: course %q of student %d: %w", courseName, id, types.ErrCourseNotFound)
	}
	return c.grade, nil
}

// PrintStudent writes the report line of the student with id:
//
//	<name> <id>: <course> <grade>, <course> <grade>
func (s *Store) PrintStudent(id int) error {
	if s.absent() {
		return types.ErrStoreAbsent
	}
	st := s.find(id)
	if st == nil {
		return fmt.Errorf("print: student %d: %w", id, types.ErrStudentNotFound)
	}
	return s.print(st)
}

// PrintAll writes one report line per student in insertion order. A
// failure on one line is logged and does not stop the rest.
func (s *Store) PrintAll() error {
	if s.absent() {
		return types.ErrStoreAbsent
	}
	for st := range s.students.All() {
		if err := s.PrintStudent(st.id); err != nil {
			s.settings.logger.Warn("print student failed", "student_id", st.id, "error", err)
		}
	}
	return nil
}

// Clone returns an independent deep copy of the store. The copy shares no
// records with s and keeps its limits, output, and logger. On failure
// nothing is left allocated and s is unchanged.
func (s *Store) Clone() (*Store, error) {
	if s.absent() {
		return nil, types.ErrStoreAbsent
	}
	students, err := s.students.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone store: %w", err)
	}
	return &Store{students: students, settings: s.settings}, nil
}

// Records returns an exported copy of every student in insertion order.
// The result shares no memory with the store.
func (s *Store) Records() []types.Student {
	if s.absent() {
		return nil
	}
	out := make([]types.Student, 0, s.students.Len())
	for st := range s.students.All() {
		out = append(out, st.record())
	}
	return out
}

// FromRecords builds a Store by replaying AddStudent and AddGrade for
// every record, so every invariant is checked again. On failure the
// partial store is destroyed.
func FromRecords(records []types.Student, opts ...Option) (*Store, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := s.AddStudent(rec.Name, rec.ID); err != nil {
			s.Destroy()
			return nil, err
		}
		for _, c := range rec.Courses {
			if err := s.AddGrade(c.Name, rec.ID, c.Grade); err != nil {
				s.Destroy()
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Store) absent() bool {
	return s == nil || s.students == nil
}

// find returns the first student with id, or nil.
func (s *Store) find(id int) *student {
	for st := range s.students.All() {
		if st.id == id {
			return st
		}
	}
	return nil
}

func (s *Store) print(st *student) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d:", st.name, st.id)
	first := true
	for c := range st.courses.All() {
		if !first {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %s %d", c.name, c.grade)
		first = false
	}
	b.WriteByte('\n')
	if _, err := fmt.Fprint(s.settings.out, b.String()); err != nil {
		return fmt.Errorf("print: student %d: %w", st.id, err)
	}
	return nil
}
