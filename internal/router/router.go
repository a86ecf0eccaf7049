package router

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/classroom-manager/internal/handler"
	"github.com/stemsi/classroom-manager/internal/middleware"
	"github.com/stemsi/classroom-manager/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Classroom  *handler.ClassroomHandler
	Assignment *handler.AssignmentHandler
}

// SetupRouter registers every command with the logging and recovery middleware.
func SetupRouter(handlers *Handlers, log zerolog.Logger) *Router {
	r := New()
	r.Use(middleware.CommandLogger(log), middleware.Recovery)

	// ─── Classrooms ────────────────────────────────────────────────────
	r.Handle(Route{
		Name:    "add_classroom",
		Params:  []string{"name"},
		Summary: "create a classroom",
		Handler: handlers.Classroom.AddClassroom,
	})
	r.Handle(Route{
		Name:    "add_student",
		Params:  []string{"student_id", "class_name"},
		Summary: "enroll a student in a classroom",
		Handler: handlers.Classroom.AddStudent,
	})
	r.Handle(Route{
		Name:    "list_classrooms",
		Summary: "list classroom names",
		Handler: handlers.Classroom.ListClassrooms,
	})
	r.Handle(Route{
		Name:    "list_students",
		Params:  []string{"class_name"},
		Summary: "list students enrolled in a classroom",
		Handler: handlers.Classroom.ListStudents,
	})

	// ─── Assignments ───────────────────────────────────────────────────
	r.Handle(Route{
		Name:    "schedule_assignment",
		Params:  []string{"class_name", "details"},
		Greedy:  true,
		Summary: "schedule an assignment in a classroom",
		Handler: handlers.Assignment.ScheduleAssignment,
	})
	r.Handle(Route{
		Name:    "submit_assignment",
		Params:  []string{"student_id", "class_name", "details"},
		Greedy:  true,
		Summary: "record a student's submission",
		Handler: handlers.Assignment.SubmitAssignment,
	})
	r.Handle(Route{
		Name:    "list_assignments",
		Params:  []string{"class_name"},
		Summary: "list assignments and who submitted them",
		Handler: handlers.Assignment.ListAssignments,
	})

	// ─── Session ───────────────────────────────────────────────────────
	r.Handle(Route{
		Name:    "help",
		Summary: "show this help",
		Handler: func(c *response.Context) {
			routes := r.Routes()
			lines := make([]string, 0, len(routes)+2)
			lines = append(lines, "Commands:")
			for _, rt := range routes {
				lines = append(lines, fmt.Sprintf("  %-58s %s", rt.Usage(), rt.Summary))
			}
			lines = append(lines, fmt.Sprintf("  %-58s %s", "exit", "end the session"))
			response.Success(c, lines...)
		},
	})

	return r
}
