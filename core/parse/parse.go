// Package parse turns a line of user input into a command vector.
//
// The shell's grammar is deliberately small: a command is a sequence of
// words separated by runs of whitespace. There is no quoting, escaping
// or globbing; those belong to the programs the shell launches, not to
// the shell itself.
package parse

import (
	"errors"
	"strings"
)

// ErrEmpty is returned when a line holds no tokens at all. Callers must
// treat it as "nothing to run" and never hand the (nil) vector to the
// dispatcher or the launcher.
var ErrEmpty = errors.New("empty command")

// Fields splits line on runs of whitespace into a command vector. The
// first element is the program name; the rest are its arguments in
// order. The vector carries its own length; a NUL-terminated view only
// exists inside the exec boundary.
func Fields(line string) ([]string, error) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil, ErrEmpty
	}
	return argv, nil
}
