package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCommand(t *testing.T) {
	statusFile, configFile := testDB(t)

	cmd := newTreeCmd()
	cmd.SetArgs([]string{"app", "--status-file", statusFile, "--config", configFile})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	for _, want := range []string{"app", "libb", "libc", "libd"} {
		assert.Contains(t, out.String(), want)
	}

	// Children are indented below their parent.
	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 1)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
}

func TestTreeCommandDepthLimit(t *testing.T) {
	statusFile, configFile := testDB(t)

	cmd := newTreeCmd()
	cmd.SetArgs([]string{"app", "--status-file", statusFile, "--config", configFile, "--depth", "1"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "libb")
	assert.NotContains(t, out.String(), "libd", "grandchildren beyond --depth must be hidden")
}

func TestTreeCommandUnknownPackage(t *testing.T) {
	statusFile, configFile := testDB(t)

	cmd := newTreeCmd()
	cmd.SetArgs([]string{"no-such-pkg", "--status-file", statusFile, "--config", configFile})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}
