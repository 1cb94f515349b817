package grades

import "github.com/mesh-intelligence/grades/pkg/types"

// course is the owned record of one grade.
type course struct {
	name  string
	grade int
}

// cloneCourse returns an independent copy of c.
func cloneCourse(c *course) (*course, error) {
	if c == nil {
		return nil, types.ErrInvalidRecord
	}
	return &course{
		name:  c.name,
		grade: c.grade,
	}, nil
}

// destroyCourse releases c. Nil is ignored.
func destroyCourse(c *course) {
	if c == nil {
		return
	}
	c.name = ""
	c.grade = 0
}
