// Package cli provides the command-line interface for tagsfn.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kyusu/tagsfn/internal/config"
	"github.com/kyusu/tagsfn/internal/logging"
	"github.com/kyusu/tagsfn/internal/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	verbose  bool
	debug    bool

	// Global logger
	logger *logging.Logger

	// Configuration loaded before every command runs
	cfg *config.Config

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagsfn",
		Short: "Manage tags stored in file names",
		Long: `tagsfn ` + version.Version + `
Stores tags directly in file names using a bracketed suffix:

  report.pdf  ->  report.[draft q3].pdf

File paths are read from standard input, one per line, so tagsfn composes
with find, ls and friends:

  find . -name '*.pdf' | tagsfn add draft,q3
  ls | tagsfn remove draft
  ls | tagsfn filter q3`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")
	rootCmd.PersistentFlags().StringSlice("junk", nil, "Extra glob patterns of file names to ignore")
	rootCmd.PersistentFlags().Bool("skip-hidden", false, "Ignore every dot file")

	rootCmd.Version = version.String()

	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// skipConfigLoad marks commands that must run even when the config file is
// broken, such as rewriting or locating it.
const skipConfigLoad = "tagsfn/skip-config-load"

// initialize loads the configuration and sets up logging for cmd.
func initialize(cmd *cobra.Command) error {
	logger = logging.NewLogger(cmd.ErrOrStderr())

	if cmd.Annotations[skipConfigLoad] == "true" {
		cfg = config.GetDefaultConfig()
		cfg.LogLevel = logLevel
	} else {
		loaded, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose || debug {
		level = zerolog.DebugLevel
	}
	logging.SetGlobalLevel(level)

	logger.Debug().Str("config", cfgFile).Str("level", level.String()).Bool("dry_run", cfg.DryRun).Msg("Configuration loaded")
	return nil
}

// Execute runs the CLI.
func Execute() error {
	// Create a context that can be cancelled by signals
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			// the loop also ends when the channel is closed below
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, stopping after the current path...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.ExecuteContext(rootContext)

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// GetContext returns the context of cmd, falling back to the global one.
// It is cancelled when the user presses Ctrl+C.
func GetContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}
