package types

// Gradebook is the set of domain operations offered by a grade store.
// Implementations are single-actor: callers that share one across goroutines
// must serialize access themselves.
type Gradebook interface {
	// AddStudent registers a student. Returns ErrDuplicateStudent if the id
	// is already present.
	AddStudent(name string, id int) error

	// AddGrade records grade for course on the student with id. Returns
	// ErrGradeOutOfRange, ErrStudentNotFound, or ErrDuplicateCourse.
	AddGrade(course string, id, grade int) error

	// Average returns the mean grade and a copy of the student's name.
	// On failure it returns -1 and an empty name.
	Average(id int) (float64, string, error)

	// PrintStudent writes one report line for the student with id.
	PrintStudent(id int) error

	// PrintAll writes one report line per student in insertion order.
	PrintAll() error

	// Destroy releases every record. Calling it again is a no-op.
	Destroy()
}
