package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/zekepinkerton/gosh/core/tty"
)

// execute runs argv as an external foreground job: resolve the
// program, fork it into its own process group, hand it the terminal,
// wait, and take the terminal back.
func (s *Shell) execute(argv []string) {
	cmd, err := s.launch(argv)
	if err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.Is(err, exec.ErrNotFound):
			fmt.Fprintf(s.stderr, "%s: command not found\n", argv[0])
		case errors.As(err, &pathErr):
			fmt.Fprintf(s.stderr, "%s: %v\n", argv[0], pathErr.Err)
		default:
			fmt.Fprintf(s.stderr, "%s: %v\n", argv[0], err)
		}
		return
	}
	s.waitForeground(cmd)
}

// launch resolves argv[0] on the search path and starts it. A failed
// resolution is the caller's problem (the user mistyped), and so is a
// failed exec in the child (unreadable binary, bad format, dangling
// interpreter): the child is gone, the shell carries on. Only a failed
// fork is fatal, because the shell must not limp on with job-control
// state tied to a pid that does not exist.
func (s *Shell) launch(argv []string) (*exec.Cmd, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, err
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv, // argv[0] stays the name the user typed
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		// The child enters a process group equal to its own pid
		// between fork and exec. Its job-control signals revert to
		// their defaults at exec because the shell traps them rather
		// than ignoring them.
		SysProcAttr: &unix.SysProcAttr{Setpgid: true},
	}

	if err := cmd.Start(); err != nil {
		// Start surfaces both fork and child-side exec failures.
		// ENOEXEC, EACCES and friends mean the program could not be
		// run; the shell continues. EAGAIN and ENOMEM mean the OS
		// could not create the process at all.
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM) {
			log.Fatalf("process creation failed: %v", err)
		}
		return nil, err
	}
	return cmd, nil
}

// waitForeground hands the terminal to cmd's process group, blocks
// until that specific child changes state, and reclaims the terminal.
// The reclaim runs immediately after the wait returns no matter how
// the wait came back; skipping it would leave the shell unable to
// receive terminal signals ever again.
func (s *Shell) waitForeground(cmd *exec.Cmd) {
	sess := s.Session
	pid := cmd.Process.Pid

	// Redundant with Setpgid in the child: whichever side runs first
	// creates the group, so the terminal handoff below can never name
	// a group that does not exist yet. An error here means the child
	// already won the race (or is gone), both fine.
	_ = unix.Setpgid(pid, pid)

	if sess.Interactive {
		if err := tty.SetForeground(sess.Terminal, pid); err != nil {
			fmt.Fprintf(s.stderr, "tcsetpgrp: %v\n", err)
		}
	}

	err := cmd.Wait()
	sess.reclaimTerminal()

	if err == nil {
		return
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child ran to completion. Its exit status is its own
		// business; the shell stays quiet.
		return
	}

	// The wait itself failed. Report it along with whatever status
	// information is available.
	reportf(s.stderr, "wait: %v\n", err)
	if ps := cmd.ProcessState; ps != nil {
		if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
			explainWaitStatus(s.stderr, ws)
		}
	}
}
