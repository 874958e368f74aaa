package core

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/zekepinkerton/gosh/core/tty"
)

const (
	// EnvPrompt names the environment variable consulted for the
	// prompt string.
	EnvPrompt = "MY_PROMPT"
	// EnvHome names the environment variable consulted by cd when it
	// is called with no argument.
	EnvHome = "HOME"

	DefaultPrompt = "shell> "
)

// jobSignals are the terminal-generated job-control signals. The shell
// traps them for its own lifetime so a stray Ctrl-C at the prompt does
// not kill it. They are caught rather than set to SIG_IGN on purpose:
// a caught disposition reverts to the default across exec, so every
// child starts out interruptible. An ignored disposition would be
// inherited by the child's new image and the user could never stop it.
var jobSignals = []os.Signal{
	unix.SIGINT,
	unix.SIGQUIT,
	unix.SIGTSTP,
	unix.SIGTTIN,
	unix.SIGTTOU,
}

// Session holds the long-lived terminal and process-group state the
// rest of the shell reads: the controlling terminal descriptor, the
// shell's own process group, and the terminal modes captured at
// startup. It is created once at startup and closed at shell exit.
type Session struct {
	Terminal    int // controlling terminal descriptor
	PGID        int // the shell's own process group
	Interactive bool
	Prompt      string

	savedMode *term.State
	signals   chan os.Signal
	done      chan struct{}
}

// NewSession prepares the calling process to act as a job-control
// shell: it waits until the shell is in the foreground, moves it into
// its own process group, takes ownership of the terminal and snapshots
// the terminal modes. The foreground wait blocks until the shell's
// group owns the terminal; a debugger holding the terminal keeps it
// from ever finishing.
func NewSession() (*Session, error) {
	s := &Session{
		Terminal: int(os.Stdin.Fd()),
		Prompt:   GetPrompt(EnvPrompt),
	}
	s.Interactive = tty.IsTerminal(s.Terminal)

	if s.Interactive {
		// Loop until the terminal is ours. If another group owns it,
		// SIGTTIN stops us until that job puts us back in the
		// foreground.
		for {
			pgrp := unix.Getpgrp()
			fg, err := tty.Foreground(s.Terminal)
			if err != nil {
				return nil, err
			}
			if fg == pgrp {
				break
			}
			_ = unix.Kill(-pgrp, unix.SIGTTIN)
		}
	}

	s.trapJobSignals()

	if s.Interactive {
		// Our own group, then the terminal. EPERM means we are a
		// session leader and already lead our own group.
		if err := unix.Setpgid(0, 0); err != nil && err != unix.EPERM {
			return nil, err
		}
		s.PGID = unix.Getpgrp()
		if err := s.takeTerminal(s.PGID); err != nil {
			return nil, err
		}

		mode, err := tty.SaveMode(s.Terminal)
		if err != nil {
			return nil, err
		}
		s.savedMode = mode
	} else {
		s.PGID = unix.Getpgrp()
	}

	return s, nil
}

// trapJobSignals swallows the job-control signals for the shell's
// lifetime. The foreground child owns the terminal while it runs, so
// anything arriving here is not meant for a job.
func (s *Session) trapJobSignals() {
	s.signals = make(chan os.Signal, 1)
	s.done = make(chan struct{})
	signal.Notify(s.signals, jobSignals...)

	go func() {
		for {
			select {
			case <-s.signals:
			case <-s.done:
				return
			}
		}
	}()
}

// takeTerminal assigns the terminal's foreground group while SIGTTOU
// is ignored. The shell can be in the background at the instant this
// runs: reclaiming after a child, or a fresh shell that Setpgid just
// moved out of the group the terminal belongs to. Writing the
// terminal's process group from the background draws SIGTTOU, and a
// merely trapped SIGTTOU would restart the ioctl and re-fire forever,
// so the signal is ignored for the call and trapped again after.
func (s *Session) takeTerminal(pgid int) error {
	signal.Ignore(unix.SIGTTOU)
	err := tty.SetForeground(s.Terminal, pgid)
	signal.Notify(s.signals, unix.SIGTTOU)
	return err
}

// reclaimTerminal puts the shell's own group back in the foreground
// and puts the terminal modes back the way the shell saved them at
// startup; the child may have left the terminal raw.
func (s *Session) reclaimTerminal() {
	if !s.Interactive {
		return
	}
	_ = s.takeTerminal(s.PGID)
	if s.savedMode != nil {
		_ = tty.RestoreMode(s.Terminal, s.savedMode)
	}
}

// Close releases the signal trap. The terminal itself is left exactly
// as the last foreground job left it; this is the shell's own
// termination, not a child's.
func (s *Session) Close() error {
	if s.signals != nil {
		signal.Stop(s.signals)
	}
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	return nil
}

// SavedMode returns the terminal modes captured when the session was
// initialized, or nil for a non-interactive session.
func (s *Session) SavedMode() *term.State {
	return s.savedMode
}

// GetPrompt returns the prompt named by the env variable, falling back
// to DefaultPrompt when it is unset or empty.
func GetPrompt(env string) string {
	if p := os.Getenv(env); p != "" {
		return p
	}
	return DefaultPrompt
}
