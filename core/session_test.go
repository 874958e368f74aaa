package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/zekepinkerton/gosh/core/tty"
)

// swapStdin points os.Stdin at the read end of a pipe for the duration
// of the test.
func swapStdin(t *testing.T) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
		w.Close()
	})
}

func TestNewSessionNonInteractive(t *testing.T) {
	swapStdin(t)

	sess, err := NewSession()
	require.NoError(t, err)
	defer sess.Close()

	assert.False(t, sess.Interactive)
	assert.Equal(t, unix.Getpgrp(), sess.PGID)
	assert.Nil(t, sess.SavedMode())
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	swapStdin(t)

	sess, err := NewSession()
	require.NoError(t, err)

	assert.NoError(t, sess.Close())
	assert.NoError(t, sess.Close())
}

func TestTakeTerminalFailsCleanlyOffTerminal(t *testing.T) {
	swapStdin(t)

	sess, err := NewSession()
	require.NoError(t, err)
	defer sess.Close()

	// A pipe has no foreground group to assign; the call must return
	// with an error instead of stopping or spinning on SIGTTOU.
	assert.Error(t, sess.takeTerminal(sess.PGID))
}

func TestReclaimRestoresTerminalModes(t *testing.T) {
	fd := int(os.Stdin.Fd())
	if !tty.IsTerminal(fd) {
		t.Skip("stdin is not a terminal")
	}

	sess, err := NewSession()
	require.NoError(t, err)
	defer sess.Close()

	_, err = term.MakeRaw(fd)
	require.NoError(t, err)

	sess.reclaimTerminal()

	current, err := tty.SaveMode(fd)
	require.NoError(t, err)
	assert.Equal(t, sess.SavedMode(), current)
}

func TestGetPrompt(t *testing.T) {
	t.Setenv(EnvPrompt, "")
	assert.Equal(t, DefaultPrompt, GetPrompt(EnvPrompt))

	t.Setenv(EnvPrompt, "lab> ")
	assert.Equal(t, "lab> ", GetPrompt(EnvPrompt))
}

func TestNewSessionReadsPromptFromEnv(t *testing.T) {
	swapStdin(t)
	t.Setenv(EnvPrompt, "p> ")

	sess, err := NewSession()
	require.NoError(t, err)
	defer sess.Close()

	assert.Equal(t, "p> ", sess.Prompt)
}
