package middleware

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stemsi/classroom-manager/internal/response"
)

// Recovery turns a panicking handler into an INTERNAL_ERROR reply so the
// session keeps running.
func Recovery(next response.HandlerFunc) response.HandlerFunc {
	return func(c *response.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errors.WithStack(response.NewError(response.ErrInternal, fmt.Sprint(r)))
				response.Fail(c, err)
			}
		}()
		next(c)
	}
}
