package interpreter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stemsi/classroom-manager/internal/response"
	"github.com/stemsi/classroom-manager/internal/router"
)

// State is the session state of an Interpreter.
type State int

const (
	// StateRunning accepts commands. It is the initial state.
	StateRunning State = iota
	// StateTerminated is terminal; no further command is processed.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const (
	exitCommand = "exit"
	banner      = "Welcome to Virtual Classroom Manager. Type 'help' for commands, 'exit' to quit."
	farewell    = "Bye!"
)

// ErrTerminated is returned by Execute once the session has ended.
var ErrTerminated = errors.New("session terminated")

// Options controls session texture.
type Options struct {
	// Interactive prints the banner and a prompt before every read.
	Interactive bool
	Prompt      string
}

// Interpreter reads command lines and dispatches them to the router until
// exit is entered or the input ends. Command failures are rendered and
// never end the session.
type Interpreter struct {
	router    *router.Router
	out       io.Writer
	log       zerolog.Logger
	opts      Options
	state     State
	sessionID string
}

// New creates an Interpreter in StateRunning that writes replies to out.
func New(r *router.Router, out io.Writer, log zerolog.Logger, opts Options) *Interpreter {
	id := response.NewSessionID()
	return &Interpreter{
		router:    r,
		out:       out,
		log:       log.With().Str("component", "interpreter").Str("session_id", id).Logger(),
		opts:      opts,
		state:     StateRunning,
		sessionID: id,
	}
}

// State returns the current session state.
func (it *Interpreter) State() State { return it.state }

// SessionID returns the identifier attached to every command of the session.
func (it *Interpreter) SessionID() string { return it.sessionID }

// Execute processes one input line. A line equal to exit, in any case,
// terminates the session. It returns the failure reported for the command,
// which has already been written to the output.
func (it *Interpreter) Execute(ctx context.Context, line string) error {
	if it.state == StateTerminated {
		return ErrTerminated
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.EqualFold(line, exitCommand) {
		it.terminate("exit")
		return nil
	}

	return it.router.Dispatch(response.WithSessionID(ctx, it.sessionID), line, it.out)
}

// Run reads lines from in until the session terminates. It returns nil
// when the session ends through exit or end of input, the read error if
// reading fails, or ctx.Err() if ctx is done while waiting for a line.
// Commands are still executed one at a time on the calling goroutine.
func (it *Interpreter) Run(ctx context.Context, in io.Reader) error {
	it.log.Info().Bool("interactive", it.opts.Interactive).Msg("Session started")
	if it.opts.Interactive {
		fmt.Fprintln(it.out, banner)
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for it.state == StateRunning {
		if err := ctx.Err(); err != nil {
			it.terminate("context done")
			return err
		}
		if it.opts.Interactive {
			fmt.Fprint(it.out, it.opts.Prompt)
		}

		var res readResult
		select {
		case <-ctx.Done():
			it.terminate("context done")
			return ctx.Err()
		case res = <-lines:
		}

		switch {
		case res.err == io.EOF:
			if it.opts.Interactive {
				fmt.Fprintln(it.out)
			}
			it.terminate("end of input")
		case res.err != nil:
			it.terminate("read error")
			return errors.Wrap(res.err, "read command")
		case res.tooLong:
			it.rejectLongLine(ctx)
		default:
			_ = it.Execute(ctx, res.line)
		}
	}
	return nil
}

// rejectLongLine reports a discarded oversized line as a malformed command.
func (it *Interpreter) rejectLongLine(ctx context.Context) {
	c := &response.Context{
		Ctx:       response.WithSessionID(ctx, it.sessionID),
		SessionID: it.sessionID,
		Out:       it.out,
	}
	response.Fail(c, response.NewError(response.ErrMalformedCommand, fmt.Sprintf("line exceeds %d bytes", MaxLineBytes)))
	it.log.Debug().Int("max_bytes", MaxLineBytes).Msg("Oversized line rejected")
}

func (it *Interpreter) terminate(reason string) {
	if it.state == StateTerminated {
		return
	}
	it.state = StateTerminated
	if reason == "exit" || reason == "end of input" {
		fmt.Fprintln(it.out, farewell)
	}
	it.log.Info().Str("reason", reason).Msg("Session ended")
}
