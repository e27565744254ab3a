// Package process owns the byte channel to a gnuplot engine process.
//
// The engine is driven fire-and-forget: the session writes script text to the
// engine's stdin and never reads anything back. The channel is therefore a
// pure write-side capability, modeled as the Channel interface so the session
// core can run against an in-memory stream in tests without spawning a
// process.
//
// # Spawning
//
// StartPipe accepts a full command line ("gnuplot", "gnuplot -persist",
// "/opt/gnuplot/bin/gnuplot") and splits it with shell quoting rules before
// exec'ing it directly, without an intermediate shell. The engine's stdout and
// stderr are inherited from the parent so terminal output and engine warnings
// remain visible.
//
// # Lifecycle
//
// Closing the channel closes the engine's stdin, which is the conventional
// way to tell gnuplot to finish; the child is reaped in the background and
// close never blocks on engine exit.
package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// DefaultCommand is the engine command used when the caller does not name
// one, resolved through the process search path.
const DefaultCommand = "gnuplot"

// ErrEmptyCommand is returned when the command line contains no words.
var ErrEmptyCommand = errors.New("empty engine command")

// Channel is the session's capability on the engine process: an append-only
// byte stream plus release. Writes block until the engine has accepted the
// bytes; nothing is ever read back.
type Channel interface {
	io.Writer
	io.Closer
}

// Pipe is a Channel backed by a spawned engine process's stdin.
type Pipe struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartPipe splits the command line into words with shell quoting rules,
// starts the engine process, and returns a Pipe wired to its stdin.
func StartPipe(command string) (*Pipe, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("split command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	return &Pipe{cmd: cmd, stdin: stdin}, nil
}

// Write streams script bytes to the engine's stdin.
func (p *Pipe) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close closes the engine's stdin and reaps the child in the background.
// It does not wait for the engine to exit, so interactive plot windows stay
// up until the user dismisses them.
func (p *Pipe) Close() error {
	err := p.stdin.Close()
	go func() { _ = p.cmd.Wait() }()
	return err
}
