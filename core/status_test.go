//go:build linux

package core

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// Raw wait(2) status words, as the kernel encodes them.
const (
	statusExited3   = syscall.WaitStatus(3 << 8)
	statusKilled    = syscall.WaitStatus(9)            // SIGKILL
	statusStopped   = syscall.WaitStatus(20<<8 | 0x7f) // SIGTSTP
	statusContinued = syscall.WaitStatus(0xffff)
	statusExitedOK  = syscall.WaitStatus(0)
)

func TestExplainWaitStatusFields(t *testing.T) {
	cases := []struct {
		name     string
		status   syscall.WaitStatus
		expected string
	}{
		{"clean exit", statusExitedOK, "child exited with status 0\n"},
		{"nonzero exit", statusExited3, "child exited with status 3\n"},
		{"killed", statusKilled, "child terminated by signal 9\n"},
		{"stopped", statusStopped, "child stopped by signal 20\n"},
		{"continued", statusContinued, "child continued by SIGCONT\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			explainWaitStatus(&buf, tc.status)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestExplainWaitStatusReport(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithTestNameForDir(true),
	)

	var buf bytes.Buffer
	for _, ws := range []syscall.WaitStatus{
		statusExited3,
		statusKilled,
		statusStopped,
		statusContinued,
	} {
		explainWaitStatus(&buf, ws)
	}

	g.Assert(t, "report", buf.Bytes())
}

func TestReportfPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	reportf(&buf, "wait: %v\n", syscall.ECHILD)
	assert.Equal(t, "wait: no child processes\n", buf.String())
}
