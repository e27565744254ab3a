package gnuplot

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plotforge/go-gnuplot/plot"
	"github.com/plotforge/go-gnuplot/process"
)

// State tracks the session lifecycle.
type State int

const (
	// StateOpen means the engine channel is live and accepts scripts.
	StateOpen State = iota

	// StateClosed means the channel has been released. Every operation on
	// a closed session fails with ErrSessionClosed; the state is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SessionOption configures NewSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	command string
	verbose bool
	logger  *log.Logger
	channel process.Channel
}

// WithCommand overrides the engine command line, for example
// "gnuplot -persist" or an absolute binary path. The line is split with
// shell quoting rules and exec'd directly; no shell is involved.
func WithCommand(command string) SessionOption {
	return func(c *sessionConfig) { c.command = command }
}

// WithVerbose echoes every rendered script line on the session logger
// before it is written to the engine.
func WithVerbose() SessionOption {
	return func(c *sessionConfig) { c.verbose = true }
}

// WithLogger replaces the session logger. The default logger is silent
// unless WithVerbose is given, in which case it prints to stderr at debug
// level.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithChannel attaches the session to an existing engine channel instead of
// spawning a process. Callers that manage the engine themselves, and tests
// that drive the session against an in-memory channel, use this.
func WithChannel(ch process.Channel) SessionOption {
	return func(c *sessionConfig) { c.channel = ch }
}

// Session drives one engine process over its stdin. The protocol is
// fire-and-forget: every operation renders a script and hands it to the
// channel in a single write; nothing is ever read back from the engine.
//
// A session is safe for concurrent use. The session lock spans the state
// check and the channel write, so scripts from concurrent goroutines
// serialize and never interleave on the wire.
type Session struct {
	mu      sync.Mutex
	id      uuid.UUID
	state   State
	channel process.Channel
	logger  *log.Logger
	verbose bool
}

// NewSession spawns the engine process, or adopts the channel given by
// WithChannel, and returns an open session. Spawn failures are reported as
// *LaunchError.
func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := sessionConfig{command: process.DefaultCommand}
	for _, opt := range opts {
		opt(&cfg)
	}

	channel := cfg.channel
	if channel == nil {
		pipe, err := process.StartPipe(cfg.command)
		if err != nil {
			return nil, &LaunchError{Command: cfg.command, Err: err}
		}
		channel = pipe
	}

	logger := cfg.logger
	if logger == nil {
		if cfg.verbose {
			logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gnuplot"})
			logger.SetLevel(log.DebugLevel)
		} else {
			logger = log.New(io.Discard)
		}
	}

	s := &Session{
		id:      uuid.New(),
		state:   StateOpen,
		channel: channel,
		logger:  logger,
		verbose: cfg.verbose,
	}
	s.logger.Debug("session opened", "session", s.id)
	return s, nil
}

// ID returns the unique session identifier carried on log lines.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// send flattens rendered lines into one script and writes it to the channel
// in a single call, serialized under the session lock.
func (s *Session) send(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return ErrSessionClosed
	}
	if len(lines) == 0 {
		return nil
	}
	if s.verbose {
		for _, line := range lines {
			s.logger.Debug(line)
		}
	}
	if _, err := s.channel.Write([]byte(joinScript(lines))); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Set applies figure options to the engine. Settings stay in force for
// subsequent plots until reset by Unset.
func (s *Session) Set(opts ...Option) error {
	return s.send(newConfig(opts).setLines())
}

// Unset resets the figure options named by opts to engine defaults. Only
// the shape of each value matters: unsetting a range returns the axes it
// names to autoscaling regardless of its bounds.
func (s *Session) Unset(opts ...Option) error {
	return s.send(newConfig(opts).unsetLines())
}

// Plot draws a single series.
func (s *Session) Plot(series plot.Series, opts ...Option) error {
	return s.send(plotLines(newConfig(opts), []plot.Series{series}))
}

// PlotMany draws several series in one figure. An empty list fails with
// ErrEmptySeriesList before anything is written.
func (s *Session) PlotMany(series []plot.Series, opts ...Option) error {
	if len(series) == 0 {
		return ErrEmptySeriesList
	}
	return s.send(plotLines(newConfig(opts), series))
}

// PlotFunc draws a function expression evaluated by the engine, such as
// "sin(x)". It is shorthand for Plot(plot.LinesFunc(expr), opts...).
func (s *Session) PlotFunc(expr string, opts ...Option) error {
	return s.Plot(plot.LinesFunc(expr), opts...)
}

// Exec writes a raw engine command for directives the typed surface does
// not cover. The command is sent verbatim with a trailing newline.
func (s *Session) Exec(cmd string) error {
	return s.send([]string{cmd})
}

// Close releases the engine channel. Closing an already-closed session is a
// no-op. Close does not wait for the engine to exit, so plots on
// interactive terminals stay visible until the user dismisses them.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	s.logger.Debug("session closed", "session", s.id)
	if err := s.channel.Close(); err != nil {
		return fmt.Errorf("close engine channel: %w", err)
	}
	return nil
}
