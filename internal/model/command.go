package model

// Command argument payloads. Field names in validation messages come from
// the `arg` tag.

// AddClassroomRequest is the payload for add_classroom.
type AddClassroomRequest struct {
	Name string `arg:"name" validate:"required,max=64"`
}

// AddStudentRequest is the payload for add_student.
type AddStudentRequest struct {
	StudentID string `arg:"student_id" validate:"required,max=64"`
	ClassName string `arg:"class_name" validate:"required,max=64"`
}

// ScheduleAssignmentRequest is the payload for schedule_assignment.
type ScheduleAssignmentRequest struct {
	ClassName string `arg:"class_name" validate:"required,max=64"`
	Details   string `arg:"details" validate:"required,max=256"`
}

// SubmitAssignmentRequest is the payload for submit_assignment.
type SubmitAssignmentRequest struct {
	StudentID string `arg:"student_id" validate:"required,max=64"`
	ClassName string `arg:"class_name" validate:"required,max=64"`
	Details   string `arg:"details" validate:"required,max=256"`
}

// ClassroomRequest is the payload for commands that only name a classroom.
type ClassroomRequest struct {
	ClassName string `arg:"class_name" validate:"required,max=64"`
}
