package interpreter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/classroom-manager/internal/handler"
	"github.com/stemsi/classroom-manager/internal/response"
	"github.com/stemsi/classroom-manager/internal/router"
	"github.com/stemsi/classroom-manager/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts Options) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	registry := service.NewRegistry(zerolog.Nop())
	r := router.SetupRouter(&router.Handlers{
		Classroom:  handler.NewClassroomHandler(registry),
		Assignment: handler.NewAssignmentHandler(registry),
	}, zerolog.Nop())

	var out bytes.Buffer
	return New(r, &out, zerolog.Nop(), opts), &out
}

func run(t *testing.T, script ...string) string {
	t.Helper()
	it, out := setup(t, Options{})
	err := it.Run(context.Background(), strings.NewReader(strings.Join(script, "\n")+"\n"))
	require.NoError(t, err)
	return out.String()
}

func TestRunRosterScenario(t *testing.T) {
	out := run(t,
		"add_classroom Math",
		"add_student alice Math",
		"schedule_assignment Math HW1",
		"submit_assignment alice Math HW1",
		"list_students Math",
		"submit_assignment alice Math HW1",
		"list_assignments Math",
		"exit",
	)

	want := strings.Join([]string{
		"Created classroom Math",
		"Added student alice to Math",
		"Scheduled assignment HW1 in Math",
		"Student alice submitted HW1",
		"Student{alice}",
		"Student alice already submitted HW1",
		"HW1 (submitted by: alice)",
		"Bye!",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 1, strings.Count(out, "Student{alice}"))
}

func TestRunContinuesAfterErrors(t *testing.T) {
	out := run(t,
		"add_student bob Science",
		"add_classroom Science",
		"add_classroom Science",
		"bogus",
		"add_student bob",
		"add_student bob Science",
		"list_students Science",
		"EXIT",
		"list_classrooms",
	)

	want := strings.Join([]string{
		"error [CLASSROOM_NOT_FOUND]: classroom not found: Science",
		"Created classroom Science",
		"error [DUPLICATE_CLASSROOM]: classroom already exists: Science",
		"error [UNKNOWN_COMMAND]: unknown command: bogus",
		"error [MALFORMED_COMMAND]: malformed command: add_student",
		"  usage: add_student <student_id> <class_name>",
		"Added student bob to Science",
		"Student{bob}",
		"Bye!",
	}, "\n") + "\n"
	assert.Equal(t, want, out, "commands after exit must not run")
}

func TestRunEmptyListings(t *testing.T) {
	out := run(t,
		"list_classrooms",
		"add_classroom Art",
		"list_students Art",
		"list_assignments Art",
	)

	assert.Equal(t,
		"No classrooms available\nCreated classroom Art\nNo students enrolled in Art\nNo assignments scheduled in Art\nBye!\n",
		out)
}

func TestExecuteStateMachine(t *testing.T) {
	it, out := setup(t, Options{})
	ctx := context.Background()
	assert.Equal(t, StateRunning, it.State())

	assert.NoError(t, it.Execute(ctx, "   "))
	assert.Empty(t, out.String(), "blank lines are ignored")

	err := it.Execute(ctx, "list_students Math")
	assert.True(t, errors.Is(err, service.ErrClassroomNotFound))
	assert.Equal(t, StateRunning, it.State())

	assert.NoError(t, it.Execute(ctx, "  Exit  "))
	assert.Equal(t, StateTerminated, it.State())

	assert.ErrorIs(t, it.Execute(ctx, "list_classrooms"), ErrTerminated)
}

func TestExecuteTypedFailures(t *testing.T) {
	it, _ := setup(t, Options{})
	ctx := context.Background()

	require.NoError(t, it.Execute(ctx, "add_classroom Math"))
	require.NoError(t, it.Execute(ctx, "add_student alice Math"))
	require.NoError(t, it.Execute(ctx, "schedule_assignment Math HW1"))

	tests := []struct {
		line string
		code response.ErrCode
	}{
		{"add_classroom Math", response.ErrDuplicateClassroom},
		{"add_student alice Math", response.ErrDuplicateStudent},
		{"schedule_assignment Math HW1", response.ErrDuplicateAssignment},
		{"list_students Science", response.ErrClassroomNotFound},
		{"submit_assignment bob Math HW1", response.ErrStudentNotEnrolled},
		{"submit_assignment alice Math HW9", response.ErrAssignmentNotFound},
		{"submit_assignment alice Math", response.ErrMalformedCommand},
		{"drop_classroom Math", response.ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := it.Execute(ctx, tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.code, response.Classify(err).Code)
			assert.Equal(t, StateRunning, it.State())
		})
	}
}

func TestRunInteractive(t *testing.T) {
	it, out := setup(t, Options{Interactive: true, Prompt: "> "})

	err := it.Run(context.Background(), strings.NewReader("list_classrooms\nexit\n"))
	require.NoError(t, err)

	assert.Equal(t,
		"Welcome to Virtual Classroom Manager. Type 'help' for commands, 'exit' to quit.\n"+
			"> No classrooms available\n> Bye!\n",
		out.String())
}

func TestRunEndOfInput(t *testing.T) {
	it, out := setup(t, Options{Interactive: true, Prompt: "> "})

	require.NoError(t, it.Run(context.Background(), strings.NewReader("")))
	assert.Equal(t, StateTerminated, it.State())
	assert.Equal(t, banner+"\n> \nBye!\n", out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestRunReadError(t *testing.T) {
	it, _ := setup(t, Options{})

	err := it.Run(context.Background(), failingReader{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, StateTerminated, it.State())
}

func TestRunContextDone(t *testing.T) {
	it, _ := setup(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := it.Run(ctx, strings.NewReader("list_classrooms\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateTerminated, it.State())
}

func TestSessionIDIsAttached(t *testing.T) {
	it, _ := setup(t, Options{})
	assert.Len(t, it.SessionID(), 36)
	assert.Equal(t, "running", it.State().String())
}

func TestRunOversizedLineKeepsSession(t *testing.T) {
	it, out := setup(t, Options{})

	input := "add_classroom Math\n" +
		"schedule_assignment Math " + strings.Repeat("x", 70*1024) + "\n" +
		"list_classrooms\n" +
		"exit\n"
	require.NoError(t, it.Run(context.Background(), strings.NewReader(input)))

	assert.Equal(t, strings.Join([]string{
		"Created classroom Math",
		"error [MALFORMED_COMMAND]: malformed command: line exceeds 65536 bytes",
		"Math",
		"Bye!",
	}, "\n")+"\n", out.String())
	assert.Equal(t, StateTerminated, it.State())
}

func TestRunFinalLineWithoutNewline(t *testing.T) {
	it, out := setup(t, Options{})

	require.NoError(t, it.Run(context.Background(), strings.NewReader("add_classroom Math\r\nlist_classrooms")))
	assert.Equal(t, "Created classroom Math\nMath\nBye!\n", out.String())
}

func TestRunStopsWhenContextIsCancelledWhileReading(t *testing.T) {
	it, _ := setup(t, Options{})
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- it.Run(ctx, pr) }()

	_, err := pw.Write([]byte("add_classroom Math\n"))
	require.NoError(t, err)
	cancel()

	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, StateTerminated, it.State())
}
