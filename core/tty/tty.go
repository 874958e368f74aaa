//go:build !windows

// Package tty wraps the terminal-ownership primitives job control is
// built from: querying and assigning the foreground process group of a
// terminal, detecting whether a descriptor is a terminal at all, and
// snapshotting terminal modes.
package tty

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	return isatty.IsTerminal(uintptr(fd))
}

// Foreground returns the process group that currently owns the
// terminal open on fd.
func Foreground(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCGPGRP)
}

// SetForeground makes pgid the foreground process group of the
// terminal open on fd. Only the foreground group may then read from
// the terminal or receive its keyboard-generated signals.
func SetForeground(fd, pgid int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid)
}

// SaveMode captures the terminal modes of fd so they can be restored
// later with RestoreMode.
func SaveMode(fd int) (*term.State, error) {
	return term.GetState(fd)
}

// RestoreMode puts the terminal open on fd back into a previously
// captured state.
func RestoreMode(fd int, state *term.State) error {
	return term.Restore(fd, state)
}
