package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/config"
	"github.com/bnema/sdlbind/internal/logger"
	"github.com/bnema/sdlbind/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sdlbind configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.FormatKeyValue("Config file", config.GetConfigPath(), 0))
		fmt.Fprintln(out)
		for _, s := range configSections(config.Get()) {
			fmt.Fprintln(out, ui.RenderSection(s))
		}
		return nil
	},
}

func configSections(cfg *config.Config) []ui.Section {
	library := cfg.Library.Path
	if library == "" {
		library = "(platform default)"
	}

	hints := make([]ui.Row, 0, len(cfg.Hints))
	for _, name := range cfg.HintNames() {
		hints = append(hints, ui.Row{Key: name, Value: cfg.Hints[name]})
	}

	level := cfg.Logging.Level
	if level == "" {
		level = "(LOG_LEVEL or info)"
	}

	return []ui.Section{
		{Title: "Library", Rows: []ui.Row{{Key: "Path", Value: library}}},
		{Title: "Init", Rows: []ui.Row{{Key: "Subsystems", Value: orNone(cfg.Init.Subsystems)}}},
		{Title: "Hints", Rows: hints},
		{
			Title: "Logging",
			Rows: []ui.Row{
				{Key: "Level", Value: level},
				{Key: "SDL priority", Value: cfg.Logging.SDLPriority},
				{Key: "Forward SDL", Value: fmt.Sprint(cfg.Logging.ForwardSDL)},
			},
		},
	}
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		library := cfg.Library.Path
		subsystems := append([]string(nil), cfg.Init.Subsystems...)
		priority := cfg.Logging.SDLPriority
		forward := cfg.Logging.ForwardSDL

		subsystemOptions := make([]huh.Option[string], 0, len(subsystemNames))
		for _, name := range subsystemNames {
			subsystemOptions = append(subsystemOptions, huh.NewOption(name, name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("SDL2 library").
					Description("Leave empty to search the usual locations").
					Value(&library),
				huh.NewMultiSelect[string]().
					Title("Subsystems").
					Description("Initialized by every command").
					Options(subsystemOptions...).
					Value(&subsystems),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Forward SDL log messages?").
					Value(&forward),
				huh.NewSelect[string]().
					Title("Minimum SDL log priority").
					Options(huh.NewOptions("verbose", "debug", "info", "warn", "error", "critical")...).
					Value(&priority),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("configuration cancelled: %w", err)
		}

		cfg.Library.Path = strings.TrimSpace(library)
		cfg.Init.Subsystems = subsystems
		cfg.Logging.ForwardSDL = forward
		cfg.Logging.SDLPriority = priority
		config.Set(cfg)

		if err := config.Save(); err != nil {
			return err
		}
		logger.Infof("Configuration saved to: %s", config.GetConfigPath())
		return nil
	},
}

// subsystemNames are offered by config init.
var subsystemNames = []string{"timer", "audio", "video", "joystick", "haptic", "gamecontroller", "events", "sensor"}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current configuration to file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(); err != nil {
			return err
		}
		logger.Infof("Configuration saved to: %s", config.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
