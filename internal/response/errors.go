package response

import (
	"github.com/pkg/errors"
)

// ErrCode is a typed error code enum for consistent failure identification.
type ErrCode string

const (
	// ─── Registry ──────────────────────────────────────────────────────
	ErrDuplicateClassroom  ErrCode = "DUPLICATE_CLASSROOM"
	ErrDuplicateStudent    ErrCode = "DUPLICATE_STUDENT"
	ErrDuplicateAssignment ErrCode = "DUPLICATE_ASSIGNMENT"
	ErrClassroomNotFound   ErrCode = "CLASSROOM_NOT_FOUND"
	ErrStudentNotEnrolled  ErrCode = "STUDENT_NOT_ENROLLED"
	ErrAssignmentNotFound  ErrCode = "ASSIGNMENT_NOT_FOUND"

	// ─── Interpreter ───────────────────────────────────────────────────
	ErrMalformedCommand ErrCode = "MALFORMED_COMMAND"
	ErrUnknownCommand   ErrCode = "UNKNOWN_COMMAND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrDuplicateClassroom:
		return "classroom already exists"
	case ErrDuplicateStudent:
		return "student already enrolled"
	case ErrDuplicateAssignment:
		return "assignment already scheduled"
	case ErrClassroomNotFound:
		return "classroom not found"
	case ErrStudentNotEnrolled:
		return "student not enrolled"
	case ErrAssignmentNotFound:
		return "assignment not found"
	case ErrMalformedCommand:
		return "malformed command"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInternal:
		return "internal error"
	default:
		return "unexpected error"
	}
}

// Error is a typed failure: an error code plus the identifier it concerns.
type Error struct {
	Code    ErrCode
	Subject string
}

// NewError creates a typed failure for subject.
func NewError(code ErrCode, subject string) *Error {
	return &Error{Code: code, Subject: subject}
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return GetMessage(e.Code)
	}
	return GetMessage(e.Code) + ": " + e.Subject
}

// Is matches another *Error with the same code. A target without a subject
// matches any subject, so package-level sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Subject == "" || t.Subject == e.Subject)
}

// Classify extracts the typed failure from err. Untyped errors are reported
// as ErrInternal with the error text as subject.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: ErrInternal, Subject: err.Error()}
}
