package response

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Context carries one command invocation and the writer its reply goes to.
type Context struct {
	Ctx       context.Context
	SessionID string
	Command   string
	Args      []string
	Out       io.Writer

	err error
}

// HandlerFunc handles one command invocation.
type HandlerFunc func(c *Context)

// Err returns the failure reported for this invocation, if any.
func (c *Context) Err() error {
	return c.err
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success writes each line of a successful reply.
func Success(c *Context, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}

// Fail records err on the context and writes a one-line reply naming the
// error code and the offending identifier.
func Fail(c *Context, err error) {
	c.err = err
	fmt.Fprintln(c.Out, Render(Classify(err)))
}

// FailWithFields writes a failure line followed by one indented line per
// argument problem, sorted by argument name.
func FailWithFields(c *Context, err *Error, fields map[string]string) {
	Fail(c, err)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.Out, "  %s: %s\n", name, fields[name])
	}
}

// Render formats a typed failure as a single line.
func Render(e *Error) string {
	return fmt.Sprintf("error [%s]: %s", e.Code, e.Error())
}
