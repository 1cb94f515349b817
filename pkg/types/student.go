package types

// Grade bounds, inclusive.
const (
	MinGrade = 0
	MaxGrade = 100
)

// Course is an exported copy of one course record.
type Course struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}

// Student is an exported copy of one student record and its courses,
// in insertion order. Values of this type never share memory with a store.
type Student struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

// Average returns the arithmetic mean of the student's grades, or 0 when the
// student has no courses.
func (s Student) Average() float64 {
	if len(s.Courses) == 0 {
		return 0
	}
	sum := 0
	for _, c := range s.Courses {
		sum += c.Grade
	}
	return float64(sum) / float64(len(s.Courses))
}

// ValidGrade reports whether g lies within [MinGrade, MaxGrade].
func ValidGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}
