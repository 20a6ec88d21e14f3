package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/config"
	"github.com/bnema/sdlbind/internal/logger"
	"github.com/bnema/sdlbind/internal/ui"
	"github.com/bnema/sdlbind/sdl"
)

var (
	hintPriority string
	hintSave     bool
)

var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Read and change SDL hints",
	Long: `Read and change SDL hints. Without a subcommand, lists the hints stored in
the configuration file, which are applied before SDL is initialized.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := cmd.OutOrStdout()
		rows := make([]ui.Row, 0, len(cfg.Hints))
		for _, name := range cfg.HintNames() {
			rows = append(rows, ui.Row{Key: name, Value: cfg.Hints[name]})
		}
		fmt.Fprint(out, ui.RenderSection(ui.Section{Title: "Configured hints", Rows: rows}))
		return nil
	},
}

var hintsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the current value of a hint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(0)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Fprintln(cmd.OutOrStdout(), sdl.GetHint(hintName(args[0])))
		return nil
	},
}

var hintsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a hint, optionally storing it in the configuration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, value := hintName(args[0]), args[1]
		priority, err := parseHintPriority(hintPriority)
		if err != nil {
			return err
		}

		s, err := openSession(0)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := sdl.SetHintWithPriority(name, value, priority); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStatus(true, fmt.Sprintf("%s=%s", name, sdl.GetHint(name))))

		if hintSave {
			if err := config.SetHint(name, value); err != nil {
				return err
			}
			logger.Infof("Hint saved to: %s", config.GetConfigPath())
		}
		return nil
	},
}

var hintsUnsetCmd = &cobra.Command{
	Use:   "unset <name>",
	Short: "Remove a hint from the configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RemoveHint(hintName(args[0])); err != nil {
			return err
		}
		logger.Infof("Hint removed from: %s", config.GetConfigPath())
		return nil
	},
}

// hintName accepts names with or without the SDL_ prefix.
func hintName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(name, "SDL_") {
		name = "SDL_" + name
	}
	return name
}

func parseHintPriority(name string) (sdl.HintPriority, error) {
	switch strings.ToLower(name) {
	case "default":
		return sdl.HintDefault, nil
	case "", "normal":
		return sdl.HintNormal, nil
	case "override":
		return sdl.HintOverride, nil
	}
	return 0, fmt.Errorf("invalid priority %q (must be default, normal or override)", name)
}

func init() {
	hintsSetCmd.Flags().StringVar(&hintPriority, "priority", "normal", "hint priority (default, normal, override)")
	hintsSetCmd.Flags().BoolVar(&hintSave, "save", false, "also store the hint in the configuration file")

	hintsCmd.AddCommand(hintsGetCmd)
	hintsCmd.AddCommand(hintsSetCmd)
	hintsCmd.AddCommand(hintsUnsetCmd)
	rootCmd.AddCommand(hintsCmd)
}
