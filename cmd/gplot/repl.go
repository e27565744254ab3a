package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	gnuplot "github.com/plotforge/go-gnuplot"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive engine prompt",
	Long: `Open a session and forward every input line to the engine verbatim.
The engine window stays live between commands, so settings accumulate and
replot works as usual. Type exit to quit.`,
	RunE: runRepl,
}

func runRepl(_ *cobra.Command, _ []string) error {
	gp, err := newEngineSession()
	if err != nil {
		return err
	}
	defer gp.Close()

	cfg := &readline.Config{Prompt: promptStyle.Render("gplot> ")}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".gplot_history")
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(bannerStyle.Render(fmt.Sprintf("gplot v%s (engine: %s)", version, engine())))
	fmt.Println(bannerStyle.Render("Lines are sent to the engine verbatim. Type exit to quit."))

	for {
		line, err := rl.Readline()
		if err != nil { // ctrl-c, ctrl-d
			return nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := gp.Exec(line); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))

			// The engine is gone; keeping the prompt open would only
			// collect more failures.
			var writeErr *gnuplot.WriteError
			if errors.As(err, &writeErr) || errors.Is(err, gnuplot.ErrSessionClosed) {
				return err
			}
		}
	}
}
