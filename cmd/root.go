package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zekepinkerton/gosh/core"
)

// Shell version reported by -v.
const (
	VersionMajor = 1
	VersionMinor = 0
)

// rootCmd is the shell itself; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "An interactive shell with job control",
	Long: `An interactive command-line shell. External programs run as foreground
jobs in their own process groups with ownership of the terminal, so
keyboard-generated signals reach the job and not the shell.`,
	Version: fmt.Sprintf("%d.%d", VersionMajor, VersionMinor),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := core.NewSession()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(sess)
		if err != nil {
			_ = sess.Close()
			return err
		}
		defer shell.Close()

		shell.Run()
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.SetVersionTemplate("Shell Version: {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "print the shell version and exit")
}
