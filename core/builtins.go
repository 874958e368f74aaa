package core

import (
	"fmt"
	"os"
	"os/user"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds every command the shell handles without forking.
var AllBuiltins = make(map[string]Builtin)

// Builtin is a command implemented inside the shell process.
type Builtin interface {
	Main(s *Shell, args []string) int
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// runBuiltin dispatches args to a builtin if args[0] names one. The
// return value says whether the command was handled in-process, not
// whether it succeeded; builtins report their own failures.
func (s *Shell) runBuiltin(args []string) bool {
	if len(args) == 0 {
		return false
	}
	builtin, ok := AllBuiltins[args[0]]
	if !ok {
		return false
	}
	builtin.Main(s, args)
	return true
}

// Exit quits the shell with status 0. The terminal is handed over
// as-is: this is the shell's own termination, and at this point the
// shell's group still owns the terminal.
func Exit(s *Shell, args []string) int {
	_ = s.Close()
	s.exit(0)
	return 0
}

// Cd changes the working directory. With no argument it changes to the
// user's home directory, taken from the environment first and the user
// database second.
func Cd(s *Shell, args []string) int {
	var dir string
	switch len(args) {
	case 1:
		home, err := homeDir()
		if err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			return 1
		}
		dir = home
	case 2:
		dir = args[1]
	default:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		return 1
	}

	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 1
	}
	return 0
}

// homeDir resolves the current user's home directory, preferring the
// environment and falling back to the user database.
func homeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 1
	}
	fmt.Fprintln(s.stdout, wd)
	return 0
}

// History lists the recorded input lines, oldest first, each prefixed
// with its recall number.
func History(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display or clear the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return 1
	}

	if *clear {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.stdout, "% 5d  %s\n", i+s.HistoryBase(), line)
	}
	return 0
}

// Help lists the commands the shell defines internally.
func Help(s *Shell, args []string) int {
	names := make([]string, 0, len(AllBuiltins))
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(s.stdout, "These commands are defined internally; anything else is run as an external program.")
	fmt.Fprintln(s.stdout)
	fmt.Fprintln(s.stdout, strings.Join(names, "\n"))
	return 0
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["history"] = BuiltinFunc(History)
	AllBuiltins["help"] = BuiltinFunc(Help)
}
