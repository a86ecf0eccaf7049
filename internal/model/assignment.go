package model

// Assignment is a task scheduled in a classroom together with the set of
// students who have submitted it.
type Assignment struct {
	Details string `json:"details"`

	submitted map[string]struct{}
	order     []string
}

// NewAssignment creates an assignment with no submissions.
func NewAssignment(details string) *Assignment {
	return &Assignment{
		Details:   details,
		submitted: make(map[string]struct{}),
	}
}

// Submit records a submission by studentID. It returns false when the
// student had already submitted, in which case nothing changes.
func (a *Assignment) Submit(studentID string) bool {
	if a.hasSubmitted(studentID) {
		return false
	}
	a.submitted[studentID] = struct{}{}
	a.order = append(a.order, studentID)
	return true
}

func (a *Assignment) hasSubmitted(studentID string) bool {
	_, ok := a.submitted[studentID]
	return ok
}

// Submitters returns the submitting student IDs in submission order.
func (a *Assignment) Submitters() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// AssignmentSummary is a read-only snapshot of an assignment.
type AssignmentSummary struct {
	Details     string   `json:"details"`
	SubmittedBy []string `json:"submitted_by"`
}

// Summary snapshots the assignment and its submitters.
func (a *Assignment) Summary() AssignmentSummary {
	return AssignmentSummary{Details: a.Details, SubmittedBy: a.Submitters()}
}
