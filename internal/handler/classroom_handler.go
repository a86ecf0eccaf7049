package handler

import (
	"fmt"

	"github.com/stemsi/classroom-manager/internal/model"
	"github.com/stemsi/classroom-manager/internal/response"
	"github.com/stemsi/classroom-manager/internal/service"
	"github.com/stemsi/classroom-manager/internal/validator"
)

// ClassroomHandler handles classroom and roster commands.
type ClassroomHandler struct {
	registry *service.Registry
}

// NewClassroomHandler creates a new ClassroomHandler.
func NewClassroomHandler(registry *service.Registry) *ClassroomHandler {
	return &ClassroomHandler{registry: registry}
}

// AddClassroom godoc
// add_classroom <name>
// Creates an empty classroom. Fails if the name is taken.
func (h *ClassroomHandler) AddClassroom(c *response.Context) {
	req := model.AddClassroomRequest{Name: c.Args[0]}
	if !bind(c, req) {
		return
	}

	if err := h.registry.AddClassroom(c.Ctx, req.Name); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, fmt.Sprintf("Created classroom %s", req.Name))
}

// ListClassrooms godoc
// list_classrooms
// Lists classroom names in creation order.
func (h *ClassroomHandler) ListClassrooms(c *response.Context) {
	names := h.registry.ListClassrooms(c.Ctx)
	if len(names) == 0 {
		response.Success(c, "No classrooms available")
		return
	}

	response.Success(c, names...)
}

// AddStudent godoc
// add_student <id> <className>
func (h *ClassroomHandler) AddStudent(c *response.Context) {
	req := model.AddStudentRequest{StudentID: c.Args[0], ClassName: c.Args[1]}
	if !bind(c, req) {
		return
	}

	if err := h.registry.AddStudent(c.Ctx, req.StudentID, req.ClassName); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, fmt.Sprintf("Added student %s to %s", req.StudentID, req.ClassName))
}

// ListStudents godoc
// list_students <className>
// An empty roster is reported explicitly rather than printing nothing.
func (h *ClassroomHandler) ListStudents(c *response.Context) {
	req := model.ClassroomRequest{ClassName: c.Args[0]}
	if !bind(c, req) {
		return
	}

	students, err := h.registry.ListStudents(c.Ctx, req.ClassName)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if len(students) == 0 {
		response.Success(c, fmt.Sprintf("No students enrolled in %s", req.ClassName))
		return
	}

	lines := make([]string, 0, len(students))
	for _, s := range students {
		lines = append(lines, s.String())
	}
	response.Success(c, lines...)
}

// bind validates a command payload and reports violations as a malformed
// command. It returns false if the handler must stop.
func bind(c *response.Context, req interface{}) bool {
	if fields := validator.Struct(req); fields != nil {
		response.FailWithFields(c, response.NewError(response.ErrMalformedCommand, c.Command), fields)
		return false
	}
	return true
}
