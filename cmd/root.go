package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/config"
	"github.com/bnema/sdlbind/internal/logger"
)

var (
	// Version info set by main package
	Version = "0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"

	configPath  string
	libraryPath string
	logLevel    string

	rootCmd = &cobra.Command{
		Use:   "sdlbind",
		Short: "sdlbind - inspect SDL2 from the command line",
		Long: `sdlbind loads the SDL2 shared library at runtime, without cgo, and exposes
its platform, device and configuration queries as commands.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the root command
func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sdlbind/sdlbind.toml)")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "path to the SDL2 shared library")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// setup loads configuration before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	level := config.Get().Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.SetLevel(level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
