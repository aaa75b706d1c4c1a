package main

import (
	"fmt"
	"os"
	"time"

	"patternbook/internal/config"
	"patternbook/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	docsDir string
	timeout time.Duration

	// Logger
	logger *zap.Logger

	// Loaded configuration
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "patternbook",
	Short: "patternbook - a design pattern corpus you can read, run and verify",
	Long: `patternbook is a terminal reader for a corpus of classic design pattern
write-ups. Each document pairs prose with a runnable Go example and the
console transcript that example must produce.

Beyond reading (list, show, browse, search), patternbook keeps the corpus
honest: demo interprets an example on the spot, and verify checks that every
document still prints exactly the transcript it promises.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(config.Path())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if docsDir != "" {
			cfg.Docs.Dir = docsDir
		}

		// Categorized file logging is opt-in via the config file.
		if err := logging.Initialize(config.StateDir()); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive browser.
		return runBrowse(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&docsDir, "docs", "d", "", "Corpus directory (default: embedded corpus)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	// Index subcommands
	indexCmd.AddCommand(indexRebuildCmd)

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
