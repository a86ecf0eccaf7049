package model

import "fmt"

// Student is the identity record of a learner enrolled in one classroom.
type Student struct {
	ID string `json:"id"`
}

// String renders the student the way roster listings print it.
func (s Student) String() string {
	return fmt.Sprintf("Student{%s}", s.ID)
}
