package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello/internal/greeting"
	"hello/staticlib"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHelloWorld_NoArgs(t *testing.T) {
	if greeting.BuildChannel != greeting.ChannelConsole {
		t.Skip("dialog build; not automatable")
	}
	out, errOut, err := run(t, NewHelloWorldCmd())
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!\n", out)
	assert.Empty(t, errOut)
}

func TestHelloWorld_ConsoleChannel(t *testing.T) {
	out, _, err := run(t, NewHelloWorldCmd(), "--channel", "console")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!\n", out)
}

func TestStaticLib_NoArgs(t *testing.T) {
	if staticlib.Channel() != greeting.ChannelConsole {
		t.Skip("dialog build; not automatable")
	}
	out, _, err := run(t, NewStaticLibCmd())
	require.NoError(t, err)
	assert.Equal(t, "Hello from StaticLibrary module!\n", out)
}

func TestStaticLib_ConsoleChannel(t *testing.T) {
	out, _, err := run(t, NewStaticLibCmd(), "--channel=console")
	require.NoError(t, err)
	assert.Equal(t, "Hello from StaticLibrary module!\n", out)
}

func TestUnknownChannel(t *testing.T) {
	out, errOut, err := run(t, NewHelloWorldCmd(), "--channel", "fax")
	require.Error(t, err)
	assert.ErrorIs(t, err, greeting.ErrUnknownChannel)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown output channel")
}

func TestRejectsPositionalArgs(t *testing.T) {
	out, _, err := run(t, NewHelloWorldCmd(), "extra")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestDebugLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, NewHelloWorldCmd(), "--channel", "console", "--debug")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!\n", out)
	assert.Contains(t, errOut, "greet.start")
	assert.Contains(t, errOut, "greeting.emitted")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, NewStaticLibCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hellostaticlib ")
	assert.Contains(t, out, "commit=")
}
