package interpreter

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// MaxLineBytes bounds one command line. Longer lines are discarded and
// reported as malformed; the session continues.
const MaxLineBytes = 64 * 1024

type readResult struct {
	line    string
	tooLong bool
	err     error
}

// readLine returns the next line without its terminator. A line longer than
// the reader's buffer is consumed up to its newline and reported as tooLong.
// A final line without a newline is returned before io.EOF.
func readLine(r *bufio.Reader) readResult {
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			tooLong = true
			continue
		}
		if err != nil && !(err == io.EOF && (len(chunk) > 0 || tooLong)) {
			return readResult{err: err}
		}
		if tooLong {
			return readResult{tooLong: true}
		}
		return readResult{line: strings.TrimRight(string(chunk), "\r\n")}
	}
}

// readLines feeds lines from in to the returned channel until a read error
// or until done is closed. The channel is closed after the final result.
func readLines(in io.Reader, done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		defer close(lines)
		r := bufio.NewReaderSize(in, MaxLineBytes)
		for {
			res := readLine(r)
			select {
			case lines <- res:
			case <-done:
				return
			}
			if res.err != nil {
				return
			}
		}
	}()
	return lines
}
