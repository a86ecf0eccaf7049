package handler

import (
	"fmt"
	"strings"

	"github.com/stemsi/classroom-manager/internal/model"
	"github.com/stemsi/classroom-manager/internal/response"
	"github.com/stemsi/classroom-manager/internal/service"
)

// AssignmentHandler handles assignment scheduling and submission commands.
type AssignmentHandler struct {
	registry *service.Registry
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(registry *service.Registry) *AssignmentHandler {
	return &AssignmentHandler{registry: registry}
}

// ScheduleAssignment godoc
// schedule_assignment <className> <details...>
func (h *AssignmentHandler) ScheduleAssignment(c *response.Context) {
	req := model.ScheduleAssignmentRequest{ClassName: c.Args[0], Details: c.Args[1]}
	if !bind(c, req) {
		return
	}

	if err := h.registry.ScheduleAssignment(c.Ctx, req.ClassName, req.Details); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, fmt.Sprintf("Scheduled assignment %s in %s", req.Details, req.ClassName))
}

// SubmitAssignment godoc
// submit_assignment <studentId> <className> <details...>
// Resubmitting is not an error; the reply says the submission already exists.
func (h *AssignmentHandler) SubmitAssignment(c *response.Context) {
	req := model.SubmitAssignmentRequest{StudentID: c.Args[0], ClassName: c.Args[1], Details: c.Args[2]}
	if !bind(c, req) {
		return
	}

	added, err := h.registry.SubmitAssignment(c.Ctx, req.StudentID, req.ClassName, req.Details)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !added {
		response.Success(c, fmt.Sprintf("Student %s already submitted %s", req.StudentID, req.Details))
		return
	}

	response.Success(c, fmt.Sprintf("Student %s submitted %s", req.StudentID, req.Details))
}

// ListAssignments godoc
// list_assignments <className>
func (h *AssignmentHandler) ListAssignments(c *response.Context) {
	req := model.ClassroomRequest{ClassName: c.Args[0]}
	if !bind(c, req) {
		return
	}

	assignments, err := h.registry.ListAssignments(c.Ctx, req.ClassName)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if len(assignments) == 0 {
		response.Success(c, fmt.Sprintf("No assignments scheduled in %s", req.ClassName))
		return
	}

	lines := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if len(a.SubmittedBy) == 0 {
			lines = append(lines, fmt.Sprintf("%s (no submissions)", a.Details))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (submitted by: %s)", a.Details, strings.Join(a.SubmittedBy, ", ")))
	}
	response.Success(c, lines...)
}
