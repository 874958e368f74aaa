package core

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"

	"github.com/zekepinkerton/gosh/core/parse"
)

// historyBase is the recall number of the first recorded line.
const historyBase = 1

// Shell ties the line reader, the terminal session and command
// dispatch together.
type Shell struct {
	Session  *Session
	Readline *readline.Instance

	history []string

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
}

// NewShell builds a shell around an initialized session.
func NewShell(sess *Session) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sess.Prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Session:  sess,
		Readline: rl,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		exit:     os.Exit,
	}, nil
}

// History returns the accepted lines in input order. The first entry's
// recall number is HistoryBase.
func (s *Shell) History() []string {
	return s.history
}

// HistoryBase returns the recall number of the first history entry.
func (s *Shell) HistoryBase() int {
	return historyBase
}

// record stores an accepted line: in the line reader for arrow-key
// recall, and in the session history for the history builtin.
func (s *Shell) record(line string) {
	if s.Readline != nil {
		_ = s.Readline.SaveHistory(line)
	}
	s.history = append(s.history, line)
}

// Run reads and executes commands until the input is closed or the
// exit builtin fires.
func (s *Shell) Run() {
	for {
		s.Readline.SetPrompt(s.Session.Prompt)
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return // input closed, quit

		case err == readline.ErrInterrupt:
			continue // ^C at the prompt, nothing to run

		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue // blank lines are neither recorded nor run
		}
		s.record(line)

		argv, err := parse.Fields(line)
		if errors.Is(err, parse.ErrEmpty) {
			continue
		}

		if s.runBuiltin(argv) {
			continue
		}

		s.execute(argv)
	}
}

// Close tears down the line reader and the session.
func (s *Shell) Close() error {
	var err error
	if s.Readline != nil {
		err = s.Readline.Close()
	}
	if cerr := s.Session.Close(); err == nil {
		err = cerr
	}
	return err
}
