package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stemsi/classroom-manager/internal/model"
	"github.com/stemsi/classroom-manager/internal/response"
)

// Domain Errors. Returned errors carry the offending identifier and match
// these sentinels with errors.Is.
var (
	ErrDuplicateClassroom  = &response.Error{Code: response.ErrDuplicateClassroom}
	ErrDuplicateStudent    = &response.Error{Code: response.ErrDuplicateStudent}
	ErrDuplicateAssignment = &response.Error{Code: response.ErrDuplicateAssignment}
	ErrClassroomNotFound   = &response.Error{Code: response.ErrClassroomNotFound}
	ErrStudentNotEnrolled  = &response.Error{Code: response.ErrStudentNotEnrolled}
	ErrAssignmentNotFound  = &response.Error{Code: response.ErrAssignmentNotFound}
)

// Registry owns every classroom and is the only authority on whether one
// exists. Every operation that needs a classroom looks it up first and
// fails with ErrClassroomNotFound instead of touching a missing entry.
type Registry struct {
	mu         sync.RWMutex
	classrooms map[string]*model.Classroom
	order      []string
	log        zerolog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		classrooms: make(map[string]*model.Classroom),
		log:        log.With().Str("component", "classroom_registry").Logger(),
	}
}

// AddClassroom creates an empty classroom. An existing classroom with the
// same name is never replaced.
func (s *Registry) AddClassroom(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classrooms[name]; ok {
		return errors.WithStack(response.NewError(response.ErrDuplicateClassroom, name))
	}

	s.classrooms[name] = model.NewClassroom(name)
	s.order = append(s.order, name)

	log := s.logFor(ctx)
	log.Info().Str("classroom", name).Msg("Classroom created")
	return nil
}

// AddStudent enrolls studentID in className.
func (s *Registry) AddStudent(ctx context.Context, studentID, className string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.lookup(className)
	if err != nil {
		return err
	}
	if !c.Enroll(model.Student{ID: studentID}) {
		return errors.WithStack(response.NewError(response.ErrDuplicateStudent, studentID))
	}

	log := s.logFor(ctx)
	log.Info().Str("classroom", className).Str("student_id", studentID).Msg("Student enrolled")
	return nil
}

// ScheduleAssignment appends a new assignment to className.
func (s *Registry) ScheduleAssignment(ctx context.Context, className, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.lookup(className)
	if err != nil {
		return err
	}
	if !c.Schedule(model.NewAssignment(details)) {
		return errors.WithStack(response.NewError(response.ErrDuplicateAssignment, details))
	}

	log := s.logFor(ctx)
	log.Info().Str("classroom", className).Str("details", details).Msg("Assignment scheduled")
	return nil
}

// SubmitAssignment records that studentID submitted the assignment matching
// details in className. It returns false, without error, when the student
// had already submitted it.
func (s *Registry) SubmitAssignment(ctx context.Context, studentID, className, details string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.lookup(className)
	if err != nil {
		return false, err
	}
	if !c.HasStudent(studentID) {
		return false, errors.WithStack(response.NewError(response.ErrStudentNotEnrolled, studentID))
	}
	a, ok := c.FindAssignment(details)
	if !ok {
		return false, errors.WithStack(response.NewError(response.ErrAssignmentNotFound, details))
	}

	added := a.Submit(studentID)

	log := s.logFor(ctx)
	log.Info().
		Str("classroom", className).
		Str("student_id", studentID).
		Str("details", details).
		Bool("repeat", !added).
		Msg("Assignment submitted")
	return added, nil
}

// ListClassrooms returns classroom names in creation order. The result is
// empty, never nil, when no classroom exists.
func (s *Registry) ListClassrooms(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// ListStudents returns the roster of className in enrollment order.
func (s *Registry) ListStudents(ctx context.Context, className string) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.lookup(className)
	if err != nil {
		return nil, err
	}
	return c.Students(), nil
}

// ListAssignments returns snapshots of the assignments of className in
// scheduling order.
func (s *Registry) ListAssignments(ctx context.Context, className string) ([]model.AssignmentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.lookup(className)
	if err != nil {
		return nil, err
	}
	assignments := c.Assignments()
	out := make([]model.AssignmentSummary, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.Summary())
	}
	return out, nil
}

// lookup must be called with s.mu held.
func (s *Registry) lookup(name string) (*model.Classroom, error) {
	c, ok := s.classrooms[name]
	if !ok {
		return nil, errors.WithStack(response.NewError(response.ErrClassroomNotFound, name))
	}
	return c, nil
}

func (s *Registry) logFor(ctx context.Context) zerolog.Logger {
	if id := response.SessionID(ctx); id != "" {
		return s.log.With().Str("session_id", id).Logger()
	}
	return s.log
}
