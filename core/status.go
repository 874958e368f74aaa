package core

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var diagnosticColor = color.New(color.FgRed, color.Bold)

// reportf writes a shell diagnostic, colorized when the destination is
// the terminal's stderr.
func reportf(w io.Writer, format string, args ...interface{}) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		diagnosticColor.Fprintf(w, format, args...)
		return
	}
	fmt.Fprintf(w, format, args...)
}

// explainWaitStatus writes a line for every piece of information the
// wait status carries. The fields are decoded independently of each
// other; more than one can be relevant when diagnosing a failed wait.
func explainWaitStatus(w io.Writer, ws syscall.WaitStatus) {
	if ws.Exited() {
		fmt.Fprintf(w, "child exited with status %d\n", ws.ExitStatus())
	}
	if ws.Signaled() {
		fmt.Fprintf(w, "child terminated by signal %d\n", ws.Signal())
	}
	if ws.Stopped() {
		fmt.Fprintf(w, "child stopped by signal %d\n", ws.StopSignal())
	}
	if ws.Continued() {
		fmt.Fprintln(w, "child continued by SIGCONT")
	}
}
