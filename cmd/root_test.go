package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--version"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Shell Version: 1.0\n", out.String())
}

func TestUnknownFlagFails(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--no-such-flag"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, out.String(), "unknown flag")
	assert.Contains(t, out.String(), "Usage:")
}
