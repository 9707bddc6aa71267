package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// CLI encapsulates the flscapectl command-line interface.
type CLI struct {
	version string
	verbose bool
	rootCmd *cobra.Command
}

// NewCLI creates a new CLI instance with the given version string.
func NewCLI(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()
	return c
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:     "flscapectl",
		Short:   "Characterize optimiser traces and generate synthetic ones",
		Version: c.version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initLogging()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	c.rootCmd.AddCommand(c.newCharacterizeCommand())
	c.rootCmd.AddCommand(c.newGenerateCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

func (c *CLI) initLogging() {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
