// Package main implements gplot, a command line front end for driving a
// gnuplot engine from YAML plot documents, spreadsheet columns and raw
// function expressions.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gnuplot "github.com/plotforge/go-gnuplot"
	"github.com/plotforge/go-gnuplot/process"
)

var (
	engineCommand string
	logLevel      string
	version       = "0.1.0"
)

// rootCmd represents the base command; without a subcommand it starts the
// interactive prompt.
var rootCmd = &cobra.Command{
	Use:   "gplot",
	Short: "gplot - drive a gnuplot engine from the command line",
	Long: `gplot plots YAML plot documents, spreadsheet columns and raw function
expressions on a gnuplot engine, or renders the scripts it would send.`,
	RunE: runRepl,
}

// versionCmd reports the gplot version and probes the engine release.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show gplot and engine versions",
	Long:  `Display the gplot version and the release of the configured engine.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("gplot v%s\n", version)

		v, err := process.Version(engine())
		if err != nil {
			fmt.Printf("engine: unavailable (%v)\n", err)
			return
		}
		note := ""
		if !process.Supported(v) {
			note = fmt.Sprintf(" (unsupported, want %s or newer)", process.MinSupported)
		}
		fmt.Printf("engine: gnuplot %s%s\n", v, note)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engineCommand, "engine", "gnuplot -persist", "Engine command line (GPLOT_ENGINE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")

	if err := viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding engine flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(funcCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(xlsxCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env values become defaults for the GPLOT_* environment lookup.
	_ = godotenv.Load()

	viper.SetEnvPrefix("GPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	switch viper.GetString("log-level") {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "", "info":
		log.SetLevel(log.InfoLevel)
	default:
		log.Warn("unknown log level, using info", "log-level", viper.GetString("log-level"))
	}
}

// engine returns the configured engine command line, honoring the --engine
// flag and the GPLOT_ENGINE environment variable.
func engine() string {
	return viper.GetString("engine")
}

// newEngineSession opens a session on the configured engine. At debug level
// every rendered script line is echoed before it is sent.
func newEngineSession() (*gnuplot.Session, error) {
	opts := []gnuplot.SessionOption{gnuplot.WithCommand(engine())}
	if log.GetLevel() <= log.DebugLevel {
		opts = append(opts, gnuplot.WithVerbose(), gnuplot.WithLogger(log.Default()))
	}
	return gnuplot.NewSession(opts...)
}
