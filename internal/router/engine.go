package router

import (
	"context"
	"io"
	"strings"

	"github.com/stemsi/classroom-manager/internal/response"
)

// Middleware wraps a command handler.
type Middleware func(response.HandlerFunc) response.HandlerFunc

// Route describes one command: its positional parameters and handler.
// When Greedy is set the last parameter takes the rest of the line,
// spaces included.
type Route struct {
	Name    string
	Params  []string
	Greedy  bool
	Summary string
	Handler response.HandlerFunc
}

// Usage renders the command synopsis, e.g. "add_student <student_id> <class_name>".
func (rt *Route) Usage() string {
	var b strings.Builder
	b.WriteString(rt.Name)
	for i, p := range rt.Params {
		b.WriteString(" <")
		b.WriteString(p)
		if rt.Greedy && i == len(rt.Params)-1 {
			b.WriteString("...")
		}
		b.WriteString(">")
	}
	return b.String()
}

// split breaks the text after the command name into exactly len(Params)
// non-empty arguments separated by single spaces.
func (rt *Route) split(rest string, hasRest bool) ([]string, bool) {
	n := len(rt.Params)
	if n == 0 {
		return nil, !hasRest
	}
	if !hasRest {
		return nil, false
	}

	var args []string
	if rt.Greedy {
		args = strings.SplitN(rest, " ", n)
	} else {
		args = strings.Split(rest, " ")
	}
	if len(args) != n {
		return nil, false
	}
	for _, a := range args {
		if a == "" {
			return nil, false
		}
	}
	// A greedy argument starting with a space means two separators in a row.
	if rt.Greedy && strings.HasPrefix(args[n-1], " ") {
		return nil, false
	}
	return args, true
}

// Router maps command names to handlers.
type Router struct {
	routes     map[string]*Route
	order      []string
	middleware []Middleware
}

// New creates an empty Router.
func New() *Router {
	return &Router{routes: make(map[string]*Route)}
}

// Use appends middleware applied to every dispatched command, including
// rejected ones. The first registered middleware is the outermost.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// Handle registers a route. Registering a name twice replaces the route.
func (r *Router) Handle(rt Route) {
	if _, ok := r.routes[rt.Name]; !ok {
		r.order = append(r.order, rt.Name)
	}
	r.routes[rt.Name] = &rt
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.routes[name])
	}
	return out
}

// Dispatch parses line, runs the matching handler and writes the reply to
// out. It returns the failure reported for the command, if any; failures
// are already rendered and never end the session.
func (r *Router) Dispatch(ctx context.Context, line string, out io.Writer) error {
	name, rest, hasRest := strings.Cut(line, " ")

	c := &response.Context{
		Ctx:       ctx,
		SessionID: response.SessionID(ctx),
		Command:   name,
		Out:       out,
	}

	var h response.HandlerFunc
	rt, ok := r.routes[name]
	switch {
	case !ok:
		h = unknownCommand
	default:
		args, ok := rt.split(rest, hasRest)
		if !ok {
			h = malformedCommand(rt)
			if hasRest {
				c.Args = []string{rest}
			}
			break
		}
		c.Args = args
		h = rt.Handler
	}

	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	h(c)
	return c.Err()
}

func unknownCommand(c *response.Context) {
	response.Fail(c, response.NewError(response.ErrUnknownCommand, c.Command))
}

func malformedCommand(rt *Route) response.HandlerFunc {
	return func(c *response.Context) {
		response.FailWithFields(c, response.NewError(response.ErrMalformedCommand, rt.Name), map[string]string{
			"usage": rt.Usage(),
		})
	}
}
