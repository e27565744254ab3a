package gnuplot

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionClosed is returned by every session operation after Close.
	ErrSessionClosed = errors.New("gnuplot session is closed")

	// ErrEmptySeriesList is returned by PlotMany when there is nothing to
	// plot. An empty plot directive is not valid engine input, so the call
	// is rejected before anything is written.
	ErrEmptySeriesList = errors.New("empty series list")
)

// LaunchError reports that the engine process could not be started. It wraps
// the underlying spawn failure and records the command line that was tried.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %s", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// WriteError reports that the engine channel rejected a script write, most
// commonly because the engine process died underneath the session.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to engine: %s", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
