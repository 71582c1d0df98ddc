package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/config"
)

// CommandResult holds the result of running a CLI command in-process
type CommandResult struct {
	Err    error
	Stdout string
}

// newTestHome points FRESHCART_HOME at a fresh directory
func newTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FRESHCART_HOME", home)
	return home
}

// runCLI parses args the way main does and runs the selected command,
// capturing what it prints to stdout
func runCLI(t *testing.T, args ...string) CommandResult {
	t.Helper()

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("freshcart"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	stdout := captureStdout(t)
	ctx, err := parser.Parse(args)
	if err == nil {
		err = ctx.Run()
	}
	if closeErr := cli.Close(); err == nil {
		err = closeErr
	}

	return CommandResult{Err: err, Stdout: stdout()}
}

// captureStdout redirects os.Stdout until the returned function is called
func captureStdout(t *testing.T) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, r)
		close(done)
	}()

	return func() string {
		os.Stdout = orig
		_ = w.Close()
		<-done
		_ = r.Close()
		return buf.String()
	}
}
