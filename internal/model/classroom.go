package model

// Classroom owns its enrolled students and scheduled assignments.
// It only guarantees key uniqueness inside itself; existence checks
// belong to the registry.
type Classroom struct {
	Name string `json:"name"`

	students     map[string]Student
	studentOrder []string
	assignments  []*Assignment
}

// NewClassroom creates an empty classroom.
func NewClassroom(name string) *Classroom {
	return &Classroom{
		Name:     name,
		students: make(map[string]Student),
	}
}

// Enroll adds s to the roster. It returns false if a student with the same
// ID is already enrolled.
func (c *Classroom) Enroll(s Student) bool {
	if c.HasStudent(s.ID) {
		return false
	}
	c.students[s.ID] = s
	c.studentOrder = append(c.studentOrder, s.ID)
	return true
}

// HasStudent reports whether id is enrolled.
func (c *Classroom) HasStudent(id string) bool {
	_, ok := c.students[id]
	return ok
}

// Schedule appends a to the assignment list. It returns false if an
// assignment with the same details already exists.
func (c *Classroom) Schedule(a *Assignment) bool {
	if c.HasAssignment(a.Details) {
		return false
	}
	c.assignments = append(c.assignments, a)
	return true
}

// HasAssignment reports whether an assignment with details is scheduled.
func (c *Classroom) HasAssignment(details string) bool {
	_, ok := c.FindAssignment(details)
	return ok
}

// FindAssignment looks up an assignment by its details.
func (c *Classroom) FindAssignment(details string) (*Assignment, bool) {
	for _, a := range c.assignments {
		if a.Details == details {
			return a, true
		}
	}
	return nil, false
}

// Students returns the roster in enrollment order. The result is never nil.
func (c *Classroom) Students() []Student {
	out := make([]Student, 0, len(c.studentOrder))
	for _, id := range c.studentOrder {
		out = append(out, c.students[id])
	}
	return out
}

// Assignments returns the scheduled assignments in scheduling order.
// The result is never nil.
func (c *Classroom) Assignments() []*Assignment {
	out := make([]*Assignment, len(c.assignments))
	copy(out, c.assignments)
	return out
}
