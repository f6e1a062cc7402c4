package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/toast/internal/config"
	"github.com/spf13/cobra"
)

var (
	version    string
	configPath string
	logFile    string
	debug      bool

	logCloser io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "toast",
	Short: "Transient overlay notifications for the terminal",
	Long: `toast - Show dismissible, animated notifications on top of a terminal UI.

Toasts hide on a timer, on a tap, on a backdrop click or when dragged away.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
}

// initLogging installs the default slog logger. A TUI owns the terminal,
// so logs are discarded unless --log-file is given.
func initLogging() error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logCloser = f
		w = f
	}
	slog.SetDefault(newLogger(w, debug))
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the layered configuration for the current invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", configPath, "transition", cfg.Transition, "alignment", cfg.Alignment)
	return cfg, nil
}
