package middleware

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/classroom-manager/internal/response"
)

// CommandLogger logs every command with its outcome and latency.
// Typed failures are expected user errors and are logged at debug level
// with their stack; only internal errors are logged as errors.
func CommandLogger(log zerolog.Logger) func(response.HandlerFunc) response.HandlerFunc {
	log = log.With().Str("component", "command").Logger()

	return func(next response.HandlerFunc) response.HandlerFunc {
		return func(c *response.Context) {
			start := time.Now()
			next(c)

			l := log.With().
				Str("session_id", c.SessionID).
				Str("command", c.Command).
				Strs("args", c.Args).
				Dur("latency", time.Since(start)).
				Logger()

			err := c.Err()
			if err == nil {
				l.Debug().Msg("Command handled")
				return
			}

			e := response.Classify(err)
			if e.Code == response.ErrInternal {
				l.Error().Stack().Err(err).Msg("Command failed")
				return
			}
			l.Debug().Stack().Err(err).Str("code", string(e.Code)).Msg("Command rejected")
		}
	}
}
